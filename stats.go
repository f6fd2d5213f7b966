package pixelfilter

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Coefficients is a per channel affine transform, v' = (v - Offset) * Scale,
// measured once over a whole source buffer by one of the statistics filters.
type Coefficients struct {
	Scale  [3]float64
	Offset [3]float64
}

// identityCoefficients leaves every channel unchanged.
func identityCoefficients() *Coefficients {
	return &Coefficients{Scale: [3]float64{1, 1, 1}}
}

func (c *Coefficients) Name() string { return "coefficients" }

// ColorAt applies the transform to the source pixel at (x, y).
func (c *Coefficients) ColorAt(src *Buffer, x, y int) RGB {
	p := src.At(x, y)
	return RGB{
		ClampChannel((float64(p.R) - c.Offset[0]) * c.Scale[0]),
		ClampChannel((float64(p.G) - c.Offset[1]) * c.Scale[1]),
		ClampChannel((float64(p.B) - c.Offset[2]) * c.Scale[2]),
	}
}

// channelSamples holds every sample of the source split by channel.
type channelSamples [3]stats.Float64Data

func sampleChannels(src *Buffer) (channelSamples, error) {
	var s channelSamples
	if src == nil || src.Empty() {
		return s, ErrInvalidDimensions
	}
	n := src.Width() * src.Height()
	for i := range s {
		s[i] = make(stats.Float64Data, 0, n)
	}
	for _, p := range src.pix {
		s[0] = append(s[0], float64(p.R))
		s[1] = append(s[1], float64(p.G))
		s[2] = append(s[2], float64(p.B))
	}
	return s, nil
}

// MeasureGrayWorld computes the gray-world coefficients of src: each channel
// is scaled by the mean of the three channel averages over its own average.
// A channel whose average is zero keeps a scale of 1.
func MeasureGrayWorld(src *Buffer) (*Coefficients, error) {
	samples, err := sampleChannels(src)
	if err != nil {
		return nil, err
	}
	var avg [3]float64
	for i, data := range samples {
		if avg[i], err = data.Mean(); err != nil {
			return nil, fmt.Errorf("channel %d mean: %w", i, err)
		}
	}
	avgGray := (avg[0] + avg[1] + avg[2]) / 3

	c := identityCoefficients()
	for i, a := range avg {
		if a > 0 {
			c.Scale[i] = avgGray / a
		}
	}
	return c, nil
}

// MeasureLinearStretch computes the coefficients mapping the observed range
// [min, max] of each channel onto [0, 255]. A channel with min == max is left unchanged.
func MeasureLinearStretch(src *Buffer) (*Coefficients, error) {
	samples, err := sampleChannels(src)
	if err != nil {
		return nil, err
	}
	c := identityCoefficients()
	for i, data := range samples {
		lo, err := data.Min()
		if err != nil {
			return nil, fmt.Errorf("channel %d min: %w", i, err)
		}
		hi, err := data.Max()
		if err != nil {
			return nil, fmt.Errorf("channel %d max: %w", i, err)
		}
		if hi > lo {
			c.Offset[i] = lo
			c.Scale[i] = 255 / (hi - lo)
		}
	}
	return c, nil
}

// MeasurePerfectReflector computes the coefficients scaling the brightest
// value of each channel to 255. A channel whose maximum is zero keeps a scale of 1.
func MeasurePerfectReflector(src *Buffer) (*Coefficients, error) {
	samples, err := sampleChannels(src)
	if err != nil {
		return nil, err
	}
	c := identityCoefficients()
	for i, data := range samples {
		hi, err := data.Max()
		if err != nil {
			return nil, fmt.Errorf("channel %d max: %w", i, err)
		}
		if hi > 0 {
			c.Scale[i] = 255 / hi
		}
	}
	return c, nil
}

// statisticsFilter binds a measurement to the Filter and Preparer interfaces.
type statisticsFilter struct {
	name    string
	measure func(*Buffer) (*Coefficients, error)
}

// GrayWorld returns the gray-world color correction filter.
func GrayWorld() Filter {
	return &statisticsFilter{name: "gray-world", measure: MeasureGrayWorld}
}

// LinearStretch returns the per channel contrast stretching filter.
func LinearStretch() Filter {
	return &statisticsFilter{name: "linear-stretch", measure: MeasureLinearStretch}
}

// PerfectReflector returns the perfect reflector white balance filter.
func PerfectReflector() Filter {
	return &statisticsFilter{name: "perfect-reflector", measure: MeasurePerfectReflector}
}

func (f *statisticsFilter) Name() string { return f.name }

// Prepare measures src and returns the coefficients for the apply phase.
func (f *statisticsFilter) Prepare(src *Buffer) (Filter, error) {
	c, err := f.measure(src)
	if err != nil {
		return nil, err
	}
	Logger().WithField("filter", f.name).WithField("scale", c.Scale).Debug("coefficients measured")
	return c, nil
}

// ColorAt measures the whole of src on every call. It keeps the filter usable
// on its own; the pipeline measures once through Prepare instead.
func (f *statisticsFilter) ColorAt(src *Buffer, x, y int) RGB {
	c, err := f.measure(src)
	if err != nil {
		return Black
	}
	return c.ColorAt(src, x, y)
}
