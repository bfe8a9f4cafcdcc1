package render

import "image"

// CenteredRegion returns a w x h rectangle centred at (cx, cy), shifted and
// clipped to stay within bounds. The result is at least 1x1 when bounds is
// non-empty.
func CenteredRegion(bounds image.Rectangle, cx, cy, w, h int) image.Rectangle {
	if bounds.Empty() {
		return image.Rectangle{}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x0 := cx - w/2
	y0 := cy - h/2
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x0+w > bounds.Max.X {
		w = bounds.Max.X - x0
	}
	if y0+h > bounds.Max.Y {
		h = bounds.Max.Y - y0
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Rect(x0, y0, x0+w, y0+h).Intersect(bounds)
}

// FaceRegion returns hint when it overlaps bounds, otherwise a centred guess
// covering the middle third of the frame.
func FaceRegion(bounds, hint image.Rectangle) image.Rectangle {
	if r := hint.Intersect(bounds); !r.Empty() {
		return r
	}
	c := image.Pt((bounds.Min.X+bounds.Max.X)/2, (bounds.Min.Y+bounds.Max.Y)/2)
	return CenteredRegion(bounds, c.X, c.Y, bounds.Dx()/3, bounds.Dy()/2)
}
