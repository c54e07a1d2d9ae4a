package cubewire

// NewCubeMesh returns the canonical unit cube: corners at (0,0,0)-(1,1,1),
// six faces, two triangles per face sharing the face diagonal. The cube is
// defined at unit size since scaling and projection happen separately.
func NewCubeMesh() *Mesh {
	triangles := []Triangle{
		// SOUTH
		NewTriangle(NewVector3(0, 0, 0), NewVector3(0, 1, 0), NewVector3(1, 1, 0)),
		NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 1, 0), NewVector3(1, 0, 0)),

		// EAST
		NewTriangle(NewVector3(1, 0, 0), NewVector3(1, 1, 0), NewVector3(1, 1, 1)),
		NewTriangle(NewVector3(1, 0, 0), NewVector3(1, 1, 1), NewVector3(1, 0, 1)),

		// NORTH
		NewTriangle(NewVector3(1, 0, 1), NewVector3(1, 1, 1), NewVector3(0, 1, 1)),
		NewTriangle(NewVector3(1, 0, 1), NewVector3(0, 1, 1), NewVector3(0, 0, 1)),

		// WEST
		NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 1, 1), NewVector3(0, 1, 0)),
		NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 1, 0), NewVector3(0, 0, 0)),

		// TOP
		NewTriangle(NewVector3(0, 1, 0), NewVector3(0, 1, 1), NewVector3(1, 1, 1)),
		NewTriangle(NewVector3(0, 1, 0), NewVector3(1, 1, 1), NewVector3(1, 1, 0)),

		// BOTTOM
		NewTriangle(NewVector3(1, 0, 1), NewVector3(0, 0, 1), NewVector3(0, 0, 0)),
		NewTriangle(NewVector3(1, 0, 1), NewVector3(0, 0, 0), NewVector3(1, 0, 0)),
	}

	return NewMesh(triangles)
}
