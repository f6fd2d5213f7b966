package pixelfilter

import "fmt"

// Kernel is a rectangular matrix of convolution weights with odd dimensions.
// The outer index runs along x: the weight applied to the neighbor at offset
// (dx, dy) is weights[dx+RadiusX()][dy+RadiusY()].
type Kernel struct {
	width   int
	height  int
	weights []float64
}

// NewKernel validates the weight matrix and returns a kernel holding a copy of it.
func NewKernel(weights [][]float64) (*Kernel, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, fmt.Errorf("%w: empty weight matrix", ErrInvalidKernel)
	}
	w, h := len(weights), len(weights[0])
	if w%2 == 0 || h%2 == 0 {
		return nil, fmt.Errorf("%w: %dx%d has an even dimension", ErrInvalidKernel, w, h)
	}
	k := &Kernel{
		width:   w,
		height:  h,
		weights: make([]float64, 0, w*h),
	}
	for i, col := range weights {
		if len(col) != h {
			return nil, fmt.Errorf("%w: column %d has %d weights, want %d", ErrInvalidKernel, i, len(col), h)
		}
		k.weights = append(k.weights, col...)
	}
	return k, nil
}

// mustKernel is used for the fixed kernels of the catalog.
func mustKernel(weights [][]float64) *Kernel {
	k, err := NewKernel(weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Width returns the horizontal size of the kernel.
func (k *Kernel) Width() int { return k.width }

// Height returns the vertical size of the kernel.
func (k *Kernel) Height() int { return k.height }

// RadiusX returns the horizontal distance from the center to the edge.
func (k *Kernel) RadiusX() int { return k.width / 2 }

// RadiusY returns the vertical distance from the center to the edge.
func (k *Kernel) RadiusY() int { return k.height / 2 }

// Weight returns the weight at matrix position (i, j).
func (k *Kernel) Weight(i, j int) float64 {
	return k.weights[i*k.height+j]
}

// apply convolves the kernel with the neighborhood of (x, y), clamping at the
// buffer edges, and returns the unsaturated per channel sums.
func (k *Kernel) apply(src *Buffer, x, y int) (r, g, b float64) {
	rx, ry := k.RadiusX(), k.RadiusY()
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			w := k.weights[(dx+rx)*k.height+dy+ry]
			if w == 0 {
				continue
			}
			c := src.At(x+dx, y+dy)
			r += float64(c.R) * w
			g += float64(c.G) * w
			b += float64(c.B) * w
		}
	}
	return r, g, b
}

// BoxKernel returns a size x size kernel where every weight is 1/(size*size).
func BoxKernel(size int) (*Kernel, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidKernel, size)
	}
	weights := make([][]float64, size)
	v := 1 / float64(size*size)
	for i := range weights {
		weights[i] = make([]float64, size)
		for j := range weights[i] {
			weights[i][j] = v
		}
	}
	return NewKernel(weights)
}

// DiagonalKernel returns a size x size kernel with 1/size on the main diagonal
// and zero elsewhere.
func DiagonalKernel(size int) (*Kernel, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidKernel, size)
	}
	weights := make([][]float64, size)
	for i := range weights {
		weights[i] = make([]float64, size)
		weights[i][i] = 1 / float64(size)
	}
	return NewKernel(weights)
}
