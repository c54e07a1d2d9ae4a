package cubewire

import "fmt"

// Vector3 is a 3D point or direction. It is a plain value type: the zero
// value is the origin and assignment copies all three components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Copy() Vector3 {
	return Vector3{
		X: v.X,
		Y: v.Y,
		Z: v.Z,
	}
}

// Add returns a new vector offset by the given amounts.
func (v Vector3) Add(x, y, z float32) Vector3 {
	return Vector3{
		X: v.X + x,
		Y: v.Y + y,
		Z: v.Z + z,
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("X: %g Y: %g Z: %g", v.X, v.Y, v.Z)
}
