package cubewire

// Canvas is the 2D drawing surface the renderer emits to. Coordinates are
// integer pixels; ScreenCanvas adapts an ebiten image, tests record calls.
type Canvas interface {
	Line(x0, y0, x1, y1 int)
}

// Triangle is an ordered triple of vertices. The type carries no notion of
// which coordinate space it is in; the renderer tracks that by convention
// as it moves triangles from model space through to screen space.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) Copy() Triangle {
	return Triangle{
		A: t.A.Copy(),
		B: t.B.Copy(),
		C: t.C.Copy(),
	}
}

// Draw emits the triangle's edges in the order a->b, b->c, c->a. The
// vertices are expected to already be in screen space; each coordinate is
// truncated to an integer pixel position.
func (t Triangle) Draw(c Canvas) {
	c.Line(int(t.A.X), int(t.A.Y), int(t.B.X), int(t.B.Y))
	c.Line(int(t.B.X), int(t.B.Y), int(t.C.X), int(t.C.Y))
	c.Line(int(t.C.X), int(t.C.Y), int(t.A.X), int(t.A.Y))
}
