package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

type opaquer interface {
	Opaque() bool
}

// HasAlpha reports whether img has any pixel that is not fully opaque.
// Palette images count only when a used palette entry is transparent.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	return true
}

// Flatten composites img over an opaque white canvas of the same size
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// DropAlpha forces every pixel of img to full opacity in place
func DropAlpha(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
	return img
}
