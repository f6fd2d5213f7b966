package pixelfilter

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Luma weights used by every filter that reduces a color to a single intensity.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// channelValue is the set of numeric types a computed channel can be held in.
type channelValue interface {
	constraints.Float | ~int | ~int32 | ~int64
}

// ClampChannel saturates v to the [0, 255] range of an 8 bit channel.
// Floating point values are rounded to the nearest integer first.
func ClampChannel[T channelValue](v T) uint8 {
	f := math.Round(float64(v))
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

// Luma returns the weighted intensity round(0.299R + 0.587G + 0.114B).
func Luma(c RGB) uint8 {
	return ClampChannel(lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B))
}

// gray replicates a single intensity over the three channels.
func gray(v uint8) RGB {
	return RGB{v, v, v}
}

// clamp restricts v to the closed interval [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// minOf returns the smallest of the given values.
func minOf[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// maxOf returns the biggest of the given values.
func maxOf[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}
