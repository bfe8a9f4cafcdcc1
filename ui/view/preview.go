package view

import (
	"image"

	"github.com/Shengwang-Community/ShengwangBeautyView/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Preview shows the rendered camera frame.
type Preview interface {
	UpdatePreview(png []byte)
	Reset()
}

type preview struct {
	label *LabelWidget
	photo *Img // replaced on every frame so stale pixel data is released
	blank []byte
}

// NewPreview creates the preview label at row spanning columns 0-3.
func NewPreview(row, w, h int) Preview {
	blank := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))
	photo := NewPhoto(Data(blank))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(4), Sticky("nwe"), Padx("0.4m"), Pady("0.4m"))
	return &preview{label: label, photo: photo, blank: blank}
}

func (v *preview) show(png []byte) {
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(png))
	v.label.Configure(Image(v.photo))
}

func (v *preview) UpdatePreview(png []byte) {
	if v == nil || v.label == nil || len(png) == 0 {
		return
	}
	v.show(png)
}

func (v *preview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.show(v.blank)
}
