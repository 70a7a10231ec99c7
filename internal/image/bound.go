package imagepkg

// Bound is the largest width and height an image may have
type Bound struct {
	Width  int
	Height int
}

var DefaultBound = Bound{Width: 512, Height: 300}

// FitWithin returns the size a w x h image must be scaled to so that it fits
// inside b with its aspect ratio kept, or resize=false when it already fits.
//
// The scale is min(b.Width/w, b.Height/h) and each axis is floored. The
// binding axis lands exactly on the bound; the other is computed in
// integers so float rounding can never lose a pixel there.
func FitWithin(w, h int, b Bound) (nw, nh int, resize bool) {
	if w <= b.Width && h <= b.Height {
		return w, h, false
	}
	if b.Width*h <= b.Height*w {
		return b.Width, h * b.Width / w, true
	}
	return w * b.Height / h, b.Height, true
}
