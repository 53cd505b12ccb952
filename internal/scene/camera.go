package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/lorenz/internal/dynamo"
)

const (
	CameraDistance  = 50.0
	ProjectionScale = 200.0
	// NearPlane is the smallest depth (z + CameraDistance) that is projected.
	// Anything at or behind it is skipped instead of dividing by ~0.
	NearPlane = 0.01
	// DragSensitivity converts pointer pixels to radians.
	DragSensitivity = 0.01
)

// Camera holds the view rotation and zoom. Pitch rotates about the horizontal
// axis, yaw about the vertical one.
type Camera struct {
	Pitch, Yaw float64
	Zoom       float64
}

func NewCamera(zoom float64) Camera { return Camera{Zoom: zoom} }

// Rotate3D applies pitch then yaw. Yaw only mixes x and z, so the pitched y
// passes through unchanged.
func Rotate3D(p dynamo.State, pitch, yaw float64) dynamo.State {
	pitched := mgl64.Rotate3DX(pitch).Mul3x1(p)
	return mgl64.Rotate3DY(yaw).Mul3x1(pitched)
}

// Project maps a rotated point to integer screen coordinates (truncated
// toward zero). ok is false when the point lies at or behind the near plane.
func Project(p dynamo.State, width, height int, zoom float64) (x, y int, ok bool) {
	depth := p[2] + CameraDistance
	if depth <= NearPlane {
		return 0, 0, false
	}
	sx := p[0]/depth*ProjectionScale*zoom + float64(width)/2
	sy := p[1]/depth*ProjectionScale*zoom + float64(height)/2
	return int(sx), int(sy), true
}

// ToScreen rotates p by the camera and projects it.
func (c Camera) ToScreen(p dynamo.State, width, height int) (int, int, bool) {
	return Project(Rotate3D(p, c.Pitch, c.Yaw), width, height, c.Zoom)
}
