package pixelfilter

import (
	"context"
	"image"
	_ "image/png"
	"os"
	"testing"
)

func BenchmarkApply(b *testing.B) {
	f, err := os.Open("./testdata/sample.png")
	if err != nil {
		b.Skipf("Failed opening test file: %v", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		b.Skipf("Failed decoding image: %v", err)
	}
	src := FromImage(img)

	for _, name := range []string{"blur", "median", "sobel", "gray-world"} {
		flt, err := New(name, DefaultParams())
		if err != nil {
			b.Fatalf("New(%q) error = %v", name, err)
		}
		b.Run(name, func(b *testing.B) {
			p := &Pipeline{}
			for i := 0; i < b.N; i++ {
				if _, err := p.Apply(context.Background(), flt, src); err != nil {
					b.Fatalf("Failed applying %s: %v", name, err)
				}
			}
		})
	}
}

func BenchmarkApplySynthetic(b *testing.B) {
	src := randomBuffer(1, 256, 256)
	p := &Pipeline{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Apply(context.Background(), MotionBlur(), src); err != nil {
			b.Fatalf("Failed applying motion blur: %v", err)
		}
	}
}
