package utils

import (
	"image"

	"github.com/fogleman/gg"
)

// Layout of the comparison sheet.
const (
	SheetMargin = 10
	SheetHeader = 24
)

// CompareSheet places the before and after images side by side on a white
// background, each one captioned with its label.
func CompareSheet(before, after image.Image, beforeLabel, afterLabel string) image.Image {
	bw, bh := before.Bounds().Dx(), before.Bounds().Dy()
	aw, ah := after.Bounds().Dx(), after.Bounds().Dy()

	width := bw + aw + SheetMargin*3
	height := SheetHeader + SheetMargin*2 + max(bh, ah)

	ctx := gg.NewContext(width, height)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	top := SheetMargin + SheetHeader
	ctx.DrawImage(before, SheetMargin, top)
	ctx.DrawImage(after, SheetMargin*2+bw, top)

	ctx.SetRGB(0, 0, 0)
	ctx.DrawStringAnchored(beforeLabel, float64(SheetMargin+bw/2), float64(SheetMargin+SheetHeader/2), 0.5, 0.5)
	ctx.DrawStringAnchored(afterLabel, float64(SheetMargin*2+bw+aw/2), float64(SheetMargin+SheetHeader/2), 0.5, 0.5)

	return ctx.Image()
}
