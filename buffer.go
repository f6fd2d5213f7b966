package pixelfilter

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is a three channel, 8 bit per channel color sample.
type RGB struct {
	R, G, B uint8
}

// Black is the zero color.
var Black = RGB{}

// Buffer is a rectangular grid of RGB samples stored in row-major order.
// A buffer handed to a filter is never modified; filters always produce a new one.
type Buffer struct {
	width  int
	height int
	pix    []RGB
}

// NewBuffer creates a buffer of the given size, copying the provided samples.
// When pix is nil the buffer is filled with black.
func NewBuffer(width, height int, pix []RGB) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b := newBuffer(width, height)
	if pix == nil {
		return b, nil
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("pixelfilter: %d samples given for a %dx%d buffer", len(pix), width, height)
	}
	copy(b.pix, pix)
	return b, nil
}

// NewUniform creates a buffer filled with a single color.
func NewUniform(width, height int, c RGB) (*Buffer, error) {
	b, err := NewBuffer(width, height, nil)
	if err != nil {
		return nil, err
	}
	for i := range b.pix {
		b.pix[i] = c
	}
	return b, nil
}

func newBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Empty reports whether the buffer has no samples.
func (b *Buffer) Empty() bool { return b.width == 0 || b.height == 0 }

// At returns the sample at (x, y), replicating the edge pixels for coordinates
// outside the buffer. It must not be called on an empty buffer.
func (b *Buffer) At(x, y int) RGB {
	x = clamp(x, 0, b.width-1)
	y = clamp(y, 0, b.height-1)
	return b.pix[y*b.width+x]
}

// Lookup returns the sample at (x, y) and true, or false when the coordinate
// lies outside the buffer. No edge replication takes place.
func (b *Buffer) Lookup(x, y int) (RGB, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return RGB{}, false
	}
	return b.pix[y*b.width+x], true
}

// Pixels returns a copy of the samples in row-major order.
func (b *Buffer) Pixels() []RGB {
	pix := make([]RGB, len(b.pix))
	copy(pix, b.pix)
	return pix
}

// Equal reports whether both buffers have the same size and samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i, c := range b.pix {
		if o.pix[i] != c {
			return false
		}
	}
	return true
}

func (b *Buffer) set(x, y int, c RGB) {
	b.pix[y*b.width+x] = c
}

// Image converts the buffer to an opaque *image.NRGBA with min-point at (0, 0).
func (b *Buffer) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		di := dst.PixOffset(0, y)
		for _, c := range b.pix[y*b.width : (y+1)*b.width] {
			dst.Pix[di+0] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			dst.Pix[di+3] = 0xff
			di += 4
		}
	}
	return dst
}

// FromImage converts any image type to a Buffer. The alpha channel is dropped.
func FromImage(img image.Image) *Buffer {
	srcBounds := img.Bounds()
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y
	dstW := srcBounds.Dx()
	dstH := srcBounds.Dy()
	dst := newBuffer(dstW, dstH)

	switch src := img.(type) {
	case *image.NRGBA:
		for dstY := 0; dstY < dstH; dstY++ {
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			row := dst.pix[dstY*dstW : (dstY+1)*dstW]
			for i := range row {
				row[i] = RGB{src.Pix[si+0], src.Pix[si+1], src.Pix[si+2]}
				si += 4
			}
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			row := dst.pix[dstY*dstW : (dstY+1)*dstW]
			for dstX := range row {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				row[dstX] = RGB{r, g, b}
			}
		}
	case *image.Gray:
		for dstY := 0; dstY < dstH; dstY++ {
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			row := dst.pix[dstY*dstW : (dstY+1)*dstW]
			for i := range row {
				c := src.Pix[si]
				row[i] = RGB{c, c, c}
				si++
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			row := dst.pix[dstY*dstW : (dstY+1)*dstW]
			for dstX := range row {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				row[dstX] = RGB{c.R, c.G, c.B}
			}
		}
	}
	return dst
}
