package cubewire

// recordCanvas captures line draw calls for assertions.
type recordCanvas struct {
	lines [][4]int
}

func (r *recordCanvas) Line(x0, y0, x1, y1 int) {
	r.lines = append(r.lines, [4]int{x0, y0, x1, y1})
}
