package export

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/lorenz/internal/dynamo"
)

// Record is one CSV row.
type Record struct {
	T float64 `csv:"t" json:"t"`
	X float64 `csv:"x" json:"x"`
	Y float64 `csv:"y" json:"y"`
	Z float64 `csv:"z" json:"z"`
}

func Records(tr *dynamo.Trajectory) []Record {
	out := make([]Record, tr.Len())
	for i := range out {
		s := tr.States[i]
		out[i] = Record{T: tr.Times[i], X: s[0], Y: s[1], Z: s[2]}
	}
	return out
}

// WriteCSV writes a t,x,y,z header followed by one row per sample.
func WriteCSV(w io.Writer, tr *dynamo.Trajectory) error {
	records := Records(tr)
	if len(records) == 0 {
		_, err := io.WriteString(w, "t,x,y,z\n")
		return err
	}
	return gocsv.Marshal(records, w)
}
