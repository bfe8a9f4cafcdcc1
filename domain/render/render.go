// Package render draws an approximation of the engine's effects onto preview
// frames so parameter changes are visible without the native pipeline.
package render

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
)

// Apply returns frame with the effects described by p. Face-local effects are
// limited to face, or a centred guess when face is empty. frame is not
// modified.
func Apply(frame image.Image, face image.Rectangle, p effects.Params) *image.NRGBA {
	if frame == nil {
		return nil
	}
	out := imaging.Clone(frame)
	face = FaceRegion(out.Bounds(), face)

	if p.Loaded(beauty.ModuleBeauty) {
		if p.Bools[effects.Key(beauty.OptionBeauty, beauty.KeyEnable)] {
			out = skin(out, face, p)
			out = quality(out, p)
		}
		if p.Bools[effects.Key(beauty.OptionFaceShape, beauty.KeyEnable)] {
			out = reshape(out, face, p)
		}
	}
	if p.Loaded(beauty.ModuleStyleMakeup) {
		out = makeup(out, face, p.Float(beauty.OptionMakeup, beauty.KeyStyleIntensity))
	}
	if template, ok := p.Nodes[beauty.ModuleFilter]; ok {
		out = Tint(out, TintFor(template), p.Float(beauty.OptionFilter, beauty.KeyStrength)*0.35)
	}
	if template, ok := p.Nodes[beauty.ModuleSticker]; ok {
		out = sticker(out, face, template, p.Float(beauty.OptionSticker, beauty.KeyStrength))
	}
	return out
}

func skin(img *image.NRGBA, face image.Rectangle, p effects.Params) *image.NRGBA {
	smooth := p.Float(beauty.OptionBeauty, "smoothness")
	light := p.Float(beauty.OptionBeauty, "lightness")
	red := p.Float(beauty.OptionBeauty, "redness")
	if smooth > 0 || light > 0 || red > 0 {
		roi := imaging.Crop(img, face)
		if smooth > 0 {
			roi = imaging.Blur(roi, smooth*2.5)
		}
		if light > 0 {
			roi = imaging.AdjustBrightness(roi, light*12)
		}
		if red > 0 {
			boost := red * 25
			roi = imaging.AdjustFunc(roi, func(c color.NRGBA) color.NRGBA {
				c.R = clamp8(float64(c.R) + boost)
				return c
			})
		}
		img = imaging.Paste(img, roi, face.Min)
	}
	if v := p.Float(beauty.OptionBeauty, "sharpness"); v > 0 {
		img = imaging.Sharpen(img, v*1.5)
	}
	if v := p.Float(beauty.OptionBeauty, "contrast_strength"); v != 0 {
		img = imaging.AdjustContrast(img, v*30)
	}
	return img
}

func quality(img *image.NRGBA, p effects.Params) *image.NRGBA {
	if v := p.Float(beauty.OptionBeauty, "brightness"); v != 0 {
		img = imaging.AdjustBrightness(img, v*40)
	}
	if v := p.Float(beauty.OptionBeauty, "saturation"); v != 0 {
		img = imaging.AdjustSaturation(img, v*100)
	}
	temp := p.Float(beauty.OptionBeauty, "temperature")
	hue := p.Float(beauty.OptionBeauty, "hue")
	if temp != 0 || hue != 0 {
		m := hueMatrix(hue * 60)
		img = imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
			r, g, b := float64(c.R), float64(c.G), float64(c.B)
			if hue != 0 {
				r, g, b = m[0]*r+m[1]*g+m[2]*b, m[3]*r+m[4]*g+m[5]*b, m[6]*r+m[7]*g+m[8]*b
			}
			r += temp * 30
			b -= temp * 30
			return color.NRGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: c.A}
		})
	}
	return img
}

// reshape narrows the face region by the slimming areas. Other areas have no
// preview rendition.
func reshape(img *image.NRGBA, face image.Rectangle, p effects.Params) *image.NRGBA {
	slim := float64(p.Areas[beauty.AreaFaceContour]+p.Areas[beauty.AreaFaceWidth]) / 200
	if slim <= 0 || face.Dx() < 4 {
		return img
	}
	w := int(float64(face.Dx()) * (1 - slim*0.15))
	if w < 1 || w >= face.Dx() {
		return img
	}
	roi := imaging.Resize(imaging.Crop(img, face), w, face.Dy(), imaging.Lanczos)
	at := image.Pt(face.Min.X+(face.Dx()-w)/2, face.Min.Y)
	return imaging.Paste(img, roi, at)
}

var rose = color.NRGBA{R: 214, G: 96, B: 120, A: 255}

func makeup(img *image.NRGBA, face image.Rectangle, intensity float64) *image.NRGBA {
	if intensity <= 0 {
		return img
	}
	roi := Tint(imaging.Crop(img, face), rose, intensity*0.25)
	return imaging.Paste(img, roi, face.Min)
}

func sticker(img *image.NRGBA, face image.Rectangle, template string, strength float64) *image.NRGBA {
	opacity := math.Max(0, math.Min(1, strength))
	if opacity == 0 {
		return img
	}
	w, h := face.Dx()/2, face.Dy()/6
	if w < 2 || h < 2 {
		return img
	}
	badge := imaging.New(w, h, TintFor(template))
	at := image.Pt(face.Min.X+(face.Dx()-w)/2, face.Min.Y-h/2)
	return imaging.Overlay(img, badge, at, opacity)
}

// Tint blends every pixel towards c by amount in [0,1].
func Tint(img image.Image, c color.NRGBA, amount float64) *image.NRGBA {
	amount = math.Max(0, math.Min(1, amount))
	if amount == 0 {
		return imaging.Clone(img)
	}
	return imaging.AdjustFunc(img, func(px color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(float64(px.R) + (float64(c.R)-float64(px.R))*amount),
			G: clamp8(float64(px.G) + (float64(c.G)-float64(px.G))*amount),
			B: clamp8(float64(px.B) + (float64(c.B)-float64(px.B))*amount),
			A: px.A,
		}
	})
}

// TintFor derives a stable colour from a template name.
func TintFor(template string) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(template))
	sum := h.Sum32()
	hue := float64(sum%360) / 360
	r, g, b := hslToRGB(hue, 0.55, 0.6)
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	q := l * (1 + s)
	if l >= 0.5 {
		q = l + s - l*s
	}
	p := 2*l - q
	conv := func(t float64) uint8 {
		t = t - math.Floor(t)
		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 0.5:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*(2.0/3-t)*6
		default:
			v = p
		}
		return clamp8(v * 255)
	}
	return conv(h + 1.0/3), conv(h), conv(h - 1.0/3)
}

// hueMatrix rotates colours by deg around the luminance axis.
func hueMatrix(deg float64) [9]float64 {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return [9]float64{
		0.213 + c*0.787 - s*0.213, 0.715 - c*0.715 - s*0.715, 0.072 - c*0.072 + s*0.928,
		0.213 - c*0.213 + s*0.143, 0.715 + c*0.285 + s*0.140, 0.072 - c*0.072 - s*0.283,
		0.213 - c*0.213 - s*0.787, 0.715 - c*0.715 + s*0.715, 0.072 + c*0.928 + s*0.072,
	}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
