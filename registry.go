package pixelfilter

import (
	"fmt"
	"sort"
)

// Category groups the catalog filters by the kind of computation they perform.
type Category string

const (
	CategoryPoint       Category = "point"
	CategoryConvolution Category = "convolution"
	CategoryStatistics  Category = "statistics"
	CategoryMorphology  Category = "morphology"
	CategoryOrder       Category = "order"
	CategoryEdge        Category = "edge"
)

// Params holds the tunable parameters of the catalog filters.
type Params struct {
	Brightness int // offset added by "brightness"
	Shift      int // columns moved by "right-shift"
	SepiaDepth int // tint strength of "sepia"
}

// DefaultParams returns the default filter parameters.
func DefaultParams() Params {
	return Params{
		Brightness: DefaultBrightness,
		Shift:      DefaultShift,
		SepiaDepth: DefaultSepiaDepth,
	}
}

type entry struct {
	category    Category
	description string
	build       func(Params) Filter
}

var catalog = map[string]entry{
	"invert": {CategoryPoint, "Invert every channel",
		func(Params) Filter { return Invert{} }},
	"brightness": {CategoryPoint, "Increase brightness by a fixed offset",
		func(p Params) Filter { return Brightness{K: p.Brightness} }},
	"right-shift": {CategoryPoint, "Shift the image right, filling the gap with black",
		func(p Params) Filter { return RightShift{K: p.Shift} }},
	"grayscale": {CategoryPoint, "Replace every pixel with its luma intensity",
		func(Params) Filter { return Grayscale{} }},
	"sepia": {CategoryPoint, "Warm tone tint derived from luma",
		func(p Params) Filter { return Sepia{K: p.SepiaDepth} }},
	"blur": {CategoryConvolution, "3x3 box blur",
		func(Params) Filter { return BoxBlur() }},
	"motion-blur": {CategoryConvolution, "9x9 diagonal motion blur",
		func(Params) Filter { return MotionBlur() }},
	"emboss": {CategoryConvolution, "Grayscale embossing",
		func(Params) Filter { return Emboss{} }},
	"gray-world": {CategoryStatistics, "Gray world white balance",
		func(Params) Filter { return GrayWorld() }},
	"linear-stretch": {CategoryStatistics, "Per channel contrast stretching",
		func(Params) Filter { return LinearStretch() }},
	"perfect-reflector": {CategoryStatistics, "Perfect reflector white balance",
		func(Params) Filter { return PerfectReflector() }},
	"dilation": {CategoryMorphology, "Morphological dilation with a plus shaped element",
		func(Params) Filter { return Dilation{} }},
	"erosion": {CategoryMorphology, "Morphological erosion over the diagonal neighbors",
		func(Params) Filter { return Erosion{} }},
	"median": {CategoryOrder, "3x3 median of the channel average",
		func(Params) Filter { return Median{} }},
	"sobel": {CategoryEdge, "Sobel gradient magnitude",
		func(Params) Filter { return Sobel() }},
	"scharr": {CategoryEdge, "Scharr gradient magnitude",
		func(Params) Filter { return Scharr() }},
}

// New builds the catalog filter registered under name.
func New(name string, p Params) (Filter, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return e.build(p), nil
}

// Names returns the catalog filter names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the category and a short description of a catalog filter.
func Describe(name string) (Category, string, bool) {
	e, ok := catalog[name]
	return e.category, e.description, ok
}

// ByCategory groups the catalog filter names by category.
func ByCategory() map[Category][]string {
	groups := make(map[Category][]string)
	for _, name := range Names() {
		c := catalog[name].category
		groups[c] = append(groups[c], name)
	}
	return groups
}
