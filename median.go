package pixelfilter

import "sort"

// Median replaces each pixel with the median intensity of its 3x3
// neighborhood, replicating the edge pixels at the border.
// The intensity of a sample is floor((R+G+B)/3).
type Median struct{}

func (Median) Name() string { return "median" }

func (Median) ColorAt(src *Buffer, x, y int) RGB {
	window := make([]int, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := src.At(x+dx, y+dy)
			window = append(window, (int(c.R)+int(c.G)+int(c.B))/3)
		}
	}
	sort.Ints(window)
	return gray(ClampChannel(window[4]))
}
