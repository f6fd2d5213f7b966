package pixelfilter

// structuringElement is the 3x3 plus shape used by the morphological filters,
// indexed as [dy+1][dx+1].
var structuringElement = [3][3]bool{
	{false, true, false},
	{true, true, true},
	{false, true, false},
}

// Neighbors outside the image are skipped, not replicated, so edge and corner
// pixels see fewer samples.

// Dilation outputs, replicated over the channels, the largest R+G+B sum found
// under the structuring element.
type Dilation struct{}

func (Dilation) Name() string { return "dilation" }

func (Dilation) ColorAt(src *Buffer, x, y int) RGB {
	best := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !structuringElement[dy+1][dx+1] {
				continue
			}
			c, ok := src.Lookup(x+dx, y+dy)
			if !ok {
				continue
			}
			best = maxOf(best, int(c.R)+int(c.G)+int(c.B))
		}
	}
	return gray(ClampChannel(best))
}

// Erosion outputs the per channel minimum over the neighbors lying outside the
// structuring element, i.e. the four diagonal neighbors. When none of them is
// inside the image the source pixel is kept.
type Erosion struct{}

func (Erosion) Name() string { return "erosion" }

func (Erosion) ColorAt(src *Buffer, x, y int) RGB {
	r, g, b := 255, 255, 255
	found := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if structuringElement[dy+1][dx+1] {
				continue
			}
			c, ok := src.Lookup(x+dx, y+dy)
			if !ok {
				continue
			}
			found = true
			r = minOf(r, int(c.R))
			g = minOf(g, int(c.G))
			b = minOf(b, int(c.B))
		}
	}
	if !found {
		return src.At(x, y)
	}
	return RGB{ClampChannel(r), ClampChannel(g), ClampChannel(b)}
}
