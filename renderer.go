package cubewire

// depthOffset is the fixed camera distance: every vertex is pushed this
// far down +z before projection. There is no movable camera.
const depthOffset = 3.0

// FrameRenderer is the per-frame pipeline. It holds the projection matrix
// and display size as read-only state; RenderMesh works entirely on copies
// of the mesh triangles, so the same renderer and mesh can be reused every
// frame without anything accumulating between frames.
type FrameRenderer struct {
	projection Matrix
	model      Matrix
	width      float32
	height     float32
	depth      float32
}

func NewFrameRenderer(cfg Config) *FrameRenderer {
	return &FrameRenderer{
		projection: NewProjectionMatrix(cfg.FieldOfView, cfg.NearPlane, cfg.FarPlane, cfg.DisplayWidth, cfg.DisplayHeight),
		model:      IdentMatrix(),
		width:      cfg.DisplayWidth,
		height:     cfg.DisplayHeight,
		depth:      depthOffset,
	}
}

// SetModelMatrix replaces the model transform applied before translation.
// It defaults to identity, which leaves the mesh static.
func (r *FrameRenderer) SetModelMatrix(m Matrix) {
	r.model = m
}

func (r *FrameRenderer) ModelMatrix() Matrix {
	return r.model
}

func (r *FrameRenderer) ProjectionMatrix() Matrix {
	return r.projection
}

// RenderMesh draws the mesh as a wireframe at the origin.
func (r *FrameRenderer) RenderMesh(c Canvas, mesh *Mesh) {
	r.RenderMeshAt(c, mesh, Vector3{})
}

// RenderMeshAt draws the mesh as a wireframe, offset by pos. Per triangle:
// model transform, translate into view, project each vertex, remap from
// [-1,1] to pixel space, then emit the three edges. Every triangle is
// drawn; there is no culling, depth test or fill.
func (r *FrameRenderer) RenderMeshAt(c Canvas, mesh *Mesh, pos Vector3) {
	for _, tri := range mesh.Triangles {
		translated := Triangle{
			A: r.model.TransformVector(tri.A).Add(pos.X, pos.Y, pos.Z+r.depth),
			B: r.model.TransformVector(tri.B).Add(pos.X, pos.Y, pos.Z+r.depth),
			C: r.model.TransformVector(tri.C).Add(pos.X, pos.Y, pos.Z+r.depth),
		}

		projected := Triangle{
			A: ProjectVector(translated.A, r.projection),
			B: ProjectVector(translated.B, r.projection),
			C: ProjectVector(translated.C, r.projection),
		}

		// Scale into view: x and y land in [-1,1] after the divide, z stays
		// as the normalized depth and is not used for screen placement.
		projected.A = r.toScreen(projected.A)
		projected.B = r.toScreen(projected.B)
		projected.C = r.toScreen(projected.C)

		projected.Draw(c)
	}
}

func (r *FrameRenderer) toScreen(v Vector3) Vector3 {
	v.X += 1.0
	v.Y += 1.0
	v.X *= 0.5 * r.width
	v.Y *= 0.5 * r.height
	return v
}
