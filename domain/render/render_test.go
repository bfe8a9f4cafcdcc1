package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/effects"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(40)
			if (x+y)%2 == 0 {
				v = 220
			}
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func params() effects.Params {
	return effects.Params{
		Floats: map[string]float64{},
		Bools:  map[string]bool{},
		Areas:  map[beauty.FaceArea]int{},
		Nodes:  map[beauty.Module]string{},
	}
}

func samePixel(a *image.NRGBA, b *image.RGBA, x, y int) bool {
	pa := a.NRGBAAt(x, y)
	pb := b.RGBAAt(x, y)
	return pa.R == pb.R && pa.G == pb.G && pa.B == pb.B
}

func TestApply_NothingLoaded(t *testing.T) {
	src := checker(20, 20)
	out := Apply(src, image.Rectangle{}, params())
	require.NotNil(t, out)
	for _, pt := range []image.Point{{0, 0}, {10, 10}, {19, 3}} {
		assert.True(t, samePixel(out, src, pt.X, pt.Y), "%v", pt)
	}
	assert.Nil(t, Apply(nil, image.Rectangle{}, params()))
}

func TestApply_SmoothingStaysInsideFace(t *testing.T) {
	src := checker(40, 40)
	face := image.Rect(10, 10, 30, 30)
	p := params()
	p.Nodes[beauty.ModuleBeauty] = ""
	p.Bools[effects.Key(beauty.OptionBeauty, beauty.KeyEnable)] = true
	p.Floats[effects.Key(beauty.OptionBeauty, "smoothness")] = 1

	out := Apply(src, face, p)
	assert.True(t, samePixel(out, src, 2, 2), "outside face untouched")
	assert.False(t, samePixel(out, src, 20, 20), "inside face blurred")

	p.Bools[effects.Key(beauty.OptionBeauty, beauty.KeyEnable)] = false
	out = Apply(src, face, p)
	assert.True(t, samePixel(out, src, 20, 20), "switch off disables skin effects")
}

func TestApply_FilterTintsWholeFrame(t *testing.T) {
	src := checker(16, 16)
	p := params()
	p.Nodes[beauty.ModuleFilter] = beauty.FilterSerene
	p.Floats[effects.Key(beauty.OptionFilter, beauty.KeyStrength)] = 1

	out := Apply(src, image.Rectangle{}, p)
	assert.False(t, samePixel(out, src, 0, 0))
	assert.False(t, samePixel(out, src, 15, 15))

	p.Floats[effects.Key(beauty.OptionFilter, beauty.KeyStrength)] = 0
	out = Apply(src, image.Rectangle{}, p)
	assert.True(t, samePixel(out, src, 0, 0))
}

func TestApply_StickerOverlay(t *testing.T) {
	src := checker(60, 60)
	face := image.Rect(15, 20, 45, 50)
	p := params()
	p.Nodes[beauty.ModuleSticker] = beauty.StickerPiggy
	p.Floats[effects.Key(beauty.OptionSticker, beauty.KeyStrength)] = 1

	out := Apply(src, face, p)
	want := TintFor(beauty.StickerPiggy)
	got := out.NRGBAAt(30, face.Min.Y)
	assert.Equal(t, want.R, got.R)
	assert.Equal(t, want.G, got.G)
	assert.True(t, samePixel(out, src, 1, 58))
}

func TestApply_ReshapeNeedsSwitch(t *testing.T) {
	src := checker(40, 40)
	face := image.Rect(10, 10, 30, 30)
	p := params()
	p.Nodes[beauty.ModuleBeauty] = ""
	p.Areas[beauty.AreaFaceWidth] = 100
	p.Areas[beauty.AreaFaceContour] = 100

	assert.True(t, samePixel(Apply(src, face, p), src, 12, 20))
	p.Bools[effects.Key(beauty.OptionFaceShape, beauty.KeyEnable)] = true
	assert.Equal(t, src.Bounds(), Apply(src, face, p).Bounds())
}

func TestTintFor_Stable(t *testing.T) {
	assert.Equal(t, TintFor(beauty.FilterUrban), TintFor(beauty.FilterUrban))
	assert.NotEqual(t, TintFor(beauty.FilterUrban), TintFor(beauty.FilterSerene))
	assert.EqualValues(t, 255, TintFor("x").A)
}

func TestTint_Bounds(t *testing.T) {
	src := checker(2, 2)
	full := Tint(src, color.NRGBA{R: 255, A: 255}, 5)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, full.NRGBAAt(0, 0))
}
