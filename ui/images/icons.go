package images

import (
	"hash/fnv"
	"image"
	"image/color"
	"log/slog"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/render"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

// DefaultIconSize is the edge length of generated item icons in pixels.
const DefaultIconSize = 36

var (
	iconBorder   = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	iconSelected = color.NRGBA{R: 245, G: 166, B: 35, A: 255}
	iconOn       = color.NRGBA{R: 72, G: 187, B: 120, A: 255}
	iconOff      = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	iconReset    = color.NRGBA{R: 110, G: 130, B: 160, A: 255}
	iconNone     = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
)

// IconCache produces PNG swatches for items and keeps the most recent ones.
// Template items are coloured after their template; scalar items get a stable
// colour from their icon name.
type IconCache struct {
	size  int
	cache *lru.Cache[string, []byte]
	log   *slog.Logger
}

// NewIconCache returns a cache holding up to capacity icons.
func NewIconCache(size, capacity int, logger *slog.Logger) (*IconCache, error) {
	if size < 8 {
		size = DefaultIconSize
	}
	c, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, err
	}
	return &IconCache{size: size, cache: c, log: logger}, nil
}

func iconKey(item *model.ItemInfo) string {
	key := item.Icon
	if item.Kind == model.KindToggle && item.Toggled {
		key += ":on"
	}
	if item.Selected {
		key += ":sel"
	}
	return key
}

// Icon returns the PNG for item.
func (c *IconCache) Icon(item *model.ItemInfo) []byte {
	if c == nil || item == nil {
		return nil
	}
	key := iconKey(item)
	if b, ok := c.cache.Get(key); ok {
		return b
	}
	b := EncodePNG(c.draw(item))
	c.cache.Add(key, b)
	if c.log != nil {
		c.log.Debug("icon generated", "key", key, "cached", c.cache.Len())
	}
	return b
}

// Len returns the number of cached icons.
func (c *IconCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}

func (c *IconCache) draw(item *model.ItemInfo) *image.NRGBA {
	border := iconBorder
	if item.Selected {
		border = iconSelected
	}
	img := imaging.New(c.size, c.size, border)
	inner := imaging.New(c.size-6, c.size-6, fillFor(item))
	return imaging.Paste(img, inner, image.Pt(3, 3))
}

func fillFor(item *model.ItemInfo) color.NRGBA {
	switch item.Kind {
	case model.KindToggle:
		if item.Toggled {
			return iconOn
		}
		return iconOff
	case model.KindReset:
		return iconReset
	case model.KindNone:
		return iconNone
	}
	if t := item.Activate.Template; t != "" {
		return render.TintFor(t)
	}
	h := fnv.New32a()
	h.Write([]byte(item.Icon))
	v := h.Sum32()
	return color.NRGBA{R: uint8(80 + v%120), G: uint8(80 + (v>>8)%120), B: uint8(80 + (v>>16)%120), A: 255}
}
