package cubewire

import (
	"fmt"
	"log"
)

// DefaultTriangleLimit is the number of triangles a single mesh can hold
// before it becomes worth splitting up. Crossing it is advisory only.
const DefaultTriangleLimit = 50

// Warning is a human-readable diagnostic. It never blocks anything.
type Warning string

// CheckSize reports whether count exceeds the soft limit. The returned
// warning is purely informational; callers must not reject or truncate
// data because of it.
func CheckSize(count, limit int) (Warning, bool) {
	if count > limit {
		return Warning(fmt.Sprintf("mesh has %d triangles (limit %d), consider splitting it up", count, limit)), true
	}
	return "", false
}

// Mesh is an ordered collection of triangles. Insertion order is the draw
// order. The base triangles are never mutated after construction; each
// frame works on copies.
type Mesh struct {
	Triangles []Triangle
}

// NewMesh builds a mesh, running the size check against the default limit.
func NewMesh(triangles []Triangle) *Mesh {
	return NewMeshWithLimit(triangles, DefaultTriangleLimit)
}

// NewMeshWithLimit builds a mesh with a caller-chosen soft limit. An
// oversized mesh is logged and kept whole.
func NewMeshWithLimit(triangles []Triangle, limit int) *Mesh {
	if w, ok := CheckSize(len(triangles), limit); ok {
		log.Printf("%s", w)
	}
	return &Mesh{Triangles: triangles}
}

func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

func (m *Mesh) Copy() *Mesh {
	triangles := make([]Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		triangles[i] = t.Copy()
	}
	return &Mesh{Triangles: triangles}
}
