package pixelfilter

// Filter computes one output color per coordinate of a source buffer.
// ColorAt must be a pure function of the source and the coordinate: it never
// sees the buffer being built, so coordinates can be processed in any order.
type Filter interface {
	ColorAt(src *Buffer, x, y int) RGB
}

// Preparer is implemented by filters that need a measurement over the whole
// source before any pixel can be computed. Prepare reads every pixel of src and
// returns a filter bound to the measured coefficients; that filter is then used
// for the apply phase of the same invocation only.
type Preparer interface {
	Prepare(src *Buffer) (Filter, error)
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(src *Buffer, x, y int) RGB

// ColorAt calls f(src, x, y).
func (f FilterFunc) ColorAt(src *Buffer, x, y int) RGB {
	return f(src, x, y)
}

// prepare runs the measurement phase of f, if any, and returns the filter to
// use for the apply phase.
func prepare(f Filter, src *Buffer) (Filter, error) {
	if p, ok := f.(Preparer); ok {
		return p.Prepare(src)
	}
	return f, nil
}

// filterName returns a printable name for logging.
func filterName(f Filter) string {
	if n, ok := f.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}
