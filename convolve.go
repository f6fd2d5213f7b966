package pixelfilter

// embossBias is added to every channel of the embossing convolution.
const embossBias = 100

var (
	boxKernel    = must(BoxKernel(3))
	motionKernel = must(DiagonalKernel(9))
	embossKernel = mustKernel([][]float64{
		{0, 1, 0},
		{-1, 0, 1},
		{0, -1, 0},
	})
)

func must(k *Kernel, err error) *Kernel {
	if err != nil {
		panic(err)
	}
	return k
}

// Convolution applies an arbitrary kernel to every channel independently,
// replicating the edge pixels where the kernel reaches outside the image.
type Convolution struct {
	Kernel *Kernel
	name   string
}

// NewConvolution returns a convolution filter for the given kernel.
func NewConvolution(k *Kernel) *Convolution {
	return &Convolution{Kernel: k, name: "convolution"}
}

// BoxBlur returns a 3x3 uniform blur.
func BoxBlur() *Convolution {
	return &Convolution{Kernel: boxKernel, name: "blur"}
}

// MotionBlur returns a 9x9 blur along the main diagonal.
func MotionBlur() *Convolution {
	return &Convolution{Kernel: motionKernel, name: "motion-blur"}
}

func (f *Convolution) Name() string { return f.name }

func (f *Convolution) ColorAt(src *Buffer, x, y int) RGB {
	r, g, b := f.Kernel.apply(src, x, y)
	return RGB{ClampChannel(r), ClampChannel(g), ClampChannel(b)}
}

// Emboss produces a grayscale relief: the embossing kernel is applied, a bias
// of 100 is added to each channel and the luma of the result is replicated.
type Emboss struct{}

func (Emboss) Name() string { return "emboss" }

func (Emboss) ColorAt(src *Buffer, x, y int) RGB {
	r, g, b := embossKernel.apply(src, x, y)
	biased := RGB{
		ClampChannel(int(ClampChannel(r)) + embossBias),
		ClampChannel(int(ClampChannel(g)) + embossBias),
		ClampChannel(int(ClampChannel(b)) + embossBias),
	}
	return gray(Luma(biased))
}
