package pixelfilter

// Default parameters of the point filters.
const (
	DefaultBrightness = 20
	DefaultShift      = 50
	DefaultSepiaDepth = 10
)

// Invert replaces every channel c with 255-c.
type Invert struct{}

func (Invert) Name() string { return "invert" }

func (Invert) ColorAt(src *Buffer, x, y int) RGB {
	c := src.At(x, y)
	return RGB{255 - c.R, 255 - c.G, 255 - c.B}
}

// Brightness adds K to every channel.
type Brightness struct {
	K int
}

func (Brightness) Name() string { return "brightness" }

func (f Brightness) ColorAt(src *Buffer, x, y int) RGB {
	c := src.At(x, y)
	return RGB{
		ClampChannel(int(c.R) + f.K),
		ClampChannel(int(c.G) + f.K),
		ClampChannel(int(c.B) + f.K),
	}
}

// RightShift translates the image K pixels to the right. The K leftmost
// columns become black and the content shifted past the right edge is lost.
type RightShift struct {
	K int
}

func (RightShift) Name() string { return "right-shift" }

func (f RightShift) ColorAt(src *Buffer, x, y int) RGB {
	if x < f.K {
		return Black
	}
	// x-K is never right of x, so no sample past the right edge is read.
	c, ok := src.Lookup(x-f.K, y)
	if !ok {
		return Black
	}
	return c
}

// Grayscale replaces every pixel with its luma intensity.
type Grayscale struct{}

func (Grayscale) Name() string { return "grayscale" }

func (Grayscale) ColorAt(src *Buffer, x, y int) RGB {
	return gray(Luma(src.At(x, y)))
}

// Sepia tints the luma intensity towards warm tones by K.
type Sepia struct {
	K int
}

func (Sepia) Name() string { return "sepia" }

func (f Sepia) ColorAt(src *Buffer, x, y int) RGB {
	l := int(Luma(src.At(x, y)))
	return RGB{
		ClampChannel(l + 2*f.K),
		ClampChannel(l + f.K/2),
		ClampChannel(l - f.K),
	}
}
