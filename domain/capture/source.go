package capture

import (
	"image"
	"image/color"
	"math"
)

// Source produces frames for the preview. seq increases by one per call.
type Source interface {
	Name() string
	Grab(seq uint64) (Frame, error)
}

// Source names accepted in configuration.
const (
	SourceTestCard = "testcard"
	SourceScreen   = "screen"
)

// Sources returns every source with primary first. Unknown names fall back
// to the test card. region may be nil.
func Sources(primary string, region func() *image.Rectangle) []Source {
	card := NewTestCard(640, 480)
	screen := &ScreenSource{Region: region}
	if primary == SourceScreen {
		return []Source{screen, card}
	}
	return []Source{card, screen}
}

// TestCard draws a synthetic portrait: a gradient backdrop with a drifting
// face so effects have something to act on without a camera.
type TestCard struct {
	w, h int
}

func NewTestCard(w, h int) *TestCard {
	if w < 64 {
		w = 64
	}
	if h < 48 {
		h = 48
	}
	return &TestCard{w: w, h: h}
}

func (c *TestCard) Name() string { return SourceTestCard }

var (
	skinTone  = color.RGBA{224, 172, 140, 255}
	eyeColor  = color.RGBA{40, 30, 30, 255}
	mouthTone = color.RGBA{170, 70, 80, 255}
)

func (c *TestCard) Grab(seq uint64) (Frame, error) {
	img := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	phase := float64(seq%360) * math.Pi / 180

	for y := 0; y < c.h; y++ {
		t := float64(y) / float64(c.h)
		for x := 0; x < c.w; x++ {
			s := float64(x) / float64(c.w)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(60 + 80*t)
			img.Pix[i+1] = uint8(90 + 60*s)
			img.Pix[i+2] = uint8(140 + 60*(1-t))
			img.Pix[i+3] = 0xFF
		}
	}

	rx, ry := c.w/6, c.h/4
	cx := c.w/2 + int(float64(c.w/20)*math.Sin(phase))
	cy := c.h / 2
	face := image.Rect(cx-rx, cy-ry, cx+rx, cy+ry)
	fillEllipse(img, cx, cy, rx, ry, skinTone)
	fillEllipse(img, cx-rx/3, cy-ry/4, rx/8, ry/10, eyeColor)
	fillEllipse(img, cx+rx/3, cy-ry/4, rx/8, ry/10, eyeColor)
	fillEllipse(img, cx, cy+ry/2, rx/3, ry/12, mouthTone)
	return Frame{Image: img, Face: face.Intersect(img.Bounds())}, nil
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	b := img.Bounds()
	for y := cy - ry; y <= cy+ry; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		dy := float64(y-cy) / float64(ry)
		half := int(float64(rx) * math.Sqrt(math.Max(0, 1-dy*dy)))
		for x := cx - half; x <= cx+half; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
}

// ScreenSource captures the desktop, or the rectangle Region returns when it
// is non-nil. Region is called from the capture goroutine.
type ScreenSource struct {
	Region func() *image.Rectangle
}

func (s *ScreenSource) Name() string { return SourceScreen }

func (s *ScreenSource) Grab(uint64) (Frame, error) {
	var (
		img *image.RGBA
		err error
	)
	var r *image.Rectangle
	if s.Region != nil {
		r = s.Region()
	}
	if r == nil || r.Empty() {
		img, err = grabScreen()
	} else {
		img, err = grabRect(*r)
	}
	if err != nil {
		return Frame{}, err
	}
	return Frame{Image: img}, nil
}
