package cubewire

import "testing"

func TestNewCubeMeshTriangleCount(t *testing.T) {
	cube := NewCubeMesh()
	if got := cube.TriangleCount(); got != 12 {
		t.Fatalf("TriangleCount() = %d, want 12", got)
	}
}

func TestNewCubeMeshCorners(t *testing.T) {
	cube := NewCubeMesh()

	// The 36 vertices across the 12 triangles must cover exactly the 8 unit
	// cube corners, nothing else.
	seen := make(map[Vector3]int)
	for _, tri := range cube.Triangles {
		seen[tri.A]++
		seen[tri.B]++
		seen[tri.C]++
	}

	total := 0
	for _, n := range seen {
		total += n
	}
	if total != 36 {
		t.Errorf("counted %d vertices, want 36", total)
	}

	if len(seen) != 8 {
		t.Fatalf("found %d distinct vertices, want 8 corners: %v", len(seen), seen)
	}

	for _, x := range []float32{0, 1} {
		for _, y := range []float32{0, 1} {
			for _, z := range []float32{0, 1} {
				corner := NewVector3(x, y, z)
				if seen[corner] == 0 {
					t.Errorf("corner %v missing from cube", corner)
				}
			}
		}
	}
}

func TestNewCubeMeshFaceOrder(t *testing.T) {
	cube := NewCubeMesh()

	// Face order is south, east, north, west, top, bottom; spot-check the
	// first triangle of each face by its shared winding.
	firstOfFace := []Triangle{
		NewTriangle(NewVector3(0, 0, 0), NewVector3(0, 1, 0), NewVector3(1, 1, 0)), // south
		NewTriangle(NewVector3(1, 0, 0), NewVector3(1, 1, 0), NewVector3(1, 1, 1)), // east
		NewTriangle(NewVector3(1, 0, 1), NewVector3(1, 1, 1), NewVector3(0, 1, 1)), // north
		NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 1, 1), NewVector3(0, 1, 0)), // west
		NewTriangle(NewVector3(0, 1, 0), NewVector3(0, 1, 1), NewVector3(1, 1, 1)), // top
		NewTriangle(NewVector3(1, 0, 1), NewVector3(0, 0, 1), NewVector3(0, 0, 0)), // bottom
	}

	for face, want := range firstOfFace {
		got := cube.Triangles[face*2]
		if got != want {
			t.Errorf("face %d first triangle = %v, want %v", face, got, want)
		}
	}
}
