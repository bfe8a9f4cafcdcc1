package capture

import (
	"image"

	"github.com/vova616/screenshot"
)

func grabScreen() (*image.RGBA, error) {
	return screenshot.CaptureScreen()
}

func grabRect(r image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(r)
}
