package analysis

import (
	"encoding/binary"
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/zeebo/xxh3"
)

// Checksum hashes the IEEE-754 bits of every time and state component, so
// two trajectories match only if they are bit-identical.
func Checksum(tr *dynamo.Trajectory) uint64 {
	h := xxh3.New()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for i := range tr.Len() {
		put(tr.Times[i])
		for _, v := range tr.States[i] {
			put(v)
		}
	}
	return h.Sum64()
}
