package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenteredRegion_Centers(t *testing.T) {
	r := CenteredRegion(image.Rect(0, 0, 100, 100), 50, 50, 40, 40)
	assert.Equal(t, image.Rect(30, 30, 70, 70), r)
}

func TestCenteredRegion_ClampsNearEdge(t *testing.T) {
	r := CenteredRegion(image.Rect(0, 0, 20, 20), 2, 2, 10, 10)
	assert.Equal(t, image.Point{}, r.Min)
	assert.True(t, r.In(image.Rect(0, 0, 20, 20)))
}

func TestCenteredRegion_TooLarge(t *testing.T) {
	r := CenteredRegion(image.Rect(0, 0, 30, 30), 5, 5, 50, 50)
	assert.True(t, r.In(image.Rect(0, 0, 30, 30)))
}

func TestCenteredRegion_MinSize(t *testing.T) {
	r := CenteredRegion(image.Rect(0, 0, 10, 10), 0, 0, 0, 0)
	assert.Equal(t, 1, r.Dx())
	assert.Equal(t, 1, r.Dy())
	assert.True(t, CenteredRegion(image.Rectangle{}, 0, 0, 5, 5).Empty())
}

func TestFaceRegion(t *testing.T) {
	b := image.Rect(0, 0, 90, 60)
	assert.Equal(t, image.Rect(10, 10, 20, 20), FaceRegion(b, image.Rect(10, 10, 20, 20)))
	guess := FaceRegion(b, image.Rectangle{})
	assert.Equal(t, image.Rect(30, 15, 60, 45), guess)
	assert.Equal(t, guess, FaceRegion(b, image.Rect(200, 200, 210, 210)))
}
