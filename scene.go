package cubewire

import "log"

// Scene holds meshes together with their world positions. Meshes are
// painted in the order they were added.
type Scene struct {
	limit  int
	meshes []*Mesh
	xpos   []float32
	ypos   []float32
	zpos   []float32
}

func NewScene() *Scene {
	return NewSceneWithLimit(DefaultTriangleLimit)
}

// NewSceneWithLimit sets the soft size limit meshes are checked against as
// they are added.
func NewSceneWithLimit(limit int) *Scene {
	return &Scene{limit: limit}
}

func (s *Scene) AddMesh(m *Mesh, x, y, z float32) {
	if w, ok := CheckSize(m.TriangleCount(), s.limit); ok {
		log.Printf("%s", w)
	}
	s.meshes = append(s.meshes, m)
	s.xpos = append(s.xpos, x)
	s.ypos = append(s.ypos, y)
	s.zpos = append(s.zpos, z)
}

func (s *Scene) MeshCount() int {
	return len(s.meshes)
}

// PaintMeshes renders every mesh through r in insertion order.
func (s *Scene) PaintMeshes(c Canvas, r *FrameRenderer) {
	for i, m := range s.meshes {
		r.RenderMeshAt(c, m, NewVector3(s.xpos[i], s.ypos[i], s.zpos[i]))
	}
}
