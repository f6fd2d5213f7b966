/*
Package pixelfilter is a pixel level image transform engine. It provides a catalog
of filters (point filters, convolutions, statistics based color correction,
morphology, median and gradient edge detection) and a pipeline which applies them
over every pixel of an RGB buffer, producing a new buffer.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ pixelfilter --help

Example applying a single catalog filter:

	package main

	import (
		"context"
		"fmt"

		"github.com/esimov/pixelfilter"
	)

	func main() {
		src := pixelfilter.FromImage(img)

		f, err := pixelfilter.New("sobel", pixelfilter.DefaultParams())
		if err != nil {
			fmt.Printf("Error creating filter: %s", err.Error())
		}
		p := &pixelfilter.Pipeline{
			Progress: func(percent int) { fmt.Println(percent) },
		}
		dst, err := p.Apply(context.Background(), f, src)
		if err != nil {
			fmt.Printf("Error applying filter: %s", err.Error())
		}
		_ = dst.Image()
	}

Example chaining filters, each one reading the output of the previous:

	dst, err := p.Chain(ctx, src, pixelfilter.BoxBlur(), pixelfilter.Grayscale{}, pixelfilter.Sobel())

Filters sample their neighbors through Buffer.At, which replicates the edge pixels,
except the morphological filters, which use Buffer.Lookup and skip neighbors
outside the image.
*/
package pixelfilter
