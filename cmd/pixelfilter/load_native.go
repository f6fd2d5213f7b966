//go:build gocv

package main

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/esimov/pixelfilter"
)

func loadImage(path string) (*pixelfilter.Buffer, error) {
	src := gocv.IMRead(path, gocv.IMReadColor)
	if src.Empty() {
		return nil, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	img, err := src.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting image: %w", err)
	}
	return pixelfilter.FromImage(img), nil
}
