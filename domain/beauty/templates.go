package beauty

// Template is a named preset the engine recognises. Slug forms the display key.
type Template struct {
	Name string
	Slug string
}

// Style makeup templates.
const (
	MakeupYoung    = "Makeup-Young"
	MakeupMature   = "Makeup-Mature"
	MakeupAura     = "Makeup-Aura"
	MakeupNatural  = "Makeup-Natural"
	MakeupGraceful = "Makeup-Graceful"
	MakeupCharm    = "Makeup-Charm"
	MakeupPerky    = "Makeup-Perky"
	MakeupMaiden   = "Makeup-Maiden"
	MakeupInsight  = "Makeup-Insight"
	MakeupMisty    = "Makeup-Misty"
)

// Filter templates.
const (
	FilterSerene     = "Filter-Serene"
	FilterUrban      = "Filter-Urban"
	FilterGlow       = "Filter-Glow"
	FilterGilt       = "Filter-Gilt"
	FilterCream      = "Filter-Cream"
	FilterLatte      = "Filter-Latte"
	FilterSummer     = "Filter-Summer"
	FilterDaily      = "Filter-Daily"
	FilterGentleman  = "Filter-Gentleman"
	FilterVanilla    = "Filter-Vanilla"
	FilterBright     = "Filter-Bright"
	FilterPeach      = "Filter-Peach"
	FilterInk        = "Filter-Ink"
	FilterFilm       = "Filter-Film"
	FilterSunny      = "Filter-Sunny"
	FilterComic      = "Filter-Comic"
	FilterDreamy     = "Filter-Dreamy"
	FilterCotton     = "Filter-Cotton"
	FilterSoda       = "Filter-Soda"
	FilterMoonlight  = "Filter-Moonlight"
	FilterWhiteTea   = "Filter-WhiteTea"
	FilterTranquil   = "Filter-Tranquil"
	FilterIns        = "Filter-Ins"
	FilterStreet     = "Filter-Street"
	FilterPuff       = "Filter-Puff"
	FilterCollection = "Filter-Collection"
	FilterSalty      = "Filter-Salty"
	FilterTexture    = "Filter-Texture"
	FilterColorful   = "Filter-Colorful"
	FilterSnow       = "Filter-Snow"
	FilterBlush      = "Filter-Blush"
	FilterNostalgia  = "Filter-Nostalgia"
	FilterCaramel    = "Filter-Caramel"
	FilterTipsy      = "Filter-Tipsy"
	FilterLavender   = "Filter-Lavender"
	FilterRouge      = "Filter-Rouge"
	FilterMisty      = "Filter-Misty"
)

// Sticker templates.
const (
	StickerChristmas  = "Sticker-Christmas"
	StickerSquid      = "Sticker-Squid"
	StickerPiggy      = "Sticker-Piggy"
	StickerLongcat    = "Sticker-Longcat"
	StickerHairhoop   = "Sticker-Hairhoop"
	StickerRelax      = "Sticker-Relax"
	StickerCartooncat = "Sticker-Cartooncat"
	StickerButterfly  = "Sticker-Butterfly"
	StickerBrush      = "Sticker-Brush"
	StickerGlass      = "Sticker-Glass"
	StickerTiara      = "Sticker-Tiara"
	StickerLove       = "Sticker-Love"
)

var makeupTemplates = []Template{
	{MakeupYoung, "young"},
	{MakeupMature, "mature"},
	{MakeupAura, "aura"},
	{MakeupNatural, "natural"},
	{MakeupGraceful, "graceful"},
	{MakeupCharm, "charm"},
	{MakeupPerky, "perky"},
	{MakeupMaiden, "maiden"},
	{MakeupInsight, "insight"},
	{MakeupMisty, "misty"},
}

// Warm tones first, then cool/white, then the stylised looks.
var filterTemplates = []Template{
	{FilterSerene, "serene"},
	{FilterUrban, "urban"},
	{FilterGlow, "glow"},
	{FilterGilt, "gilt"},
	{FilterCream, "cream"},
	{FilterLatte, "latte"},
	{FilterSummer, "summer"},
	{FilterDaily, "daily"},
	{FilterGentleman, "gentleman"},
	{FilterVanilla, "vanilla"},
	{FilterBright, "bright"},
	{FilterPeach, "peach"},
	{FilterInk, "ink"},
	{FilterFilm, "film"},
	{FilterSunny, "sunny"},
	{FilterComic, "comic"},
	{FilterDreamy, "dreamy"},
	{FilterCotton, "cotton"},
	{FilterSoda, "soda"},
	{FilterMoonlight, "moonlight"},
	{FilterWhiteTea, "white_tea"},
	{FilterTranquil, "tranquil"},
	{FilterIns, "ins"},
	{FilterStreet, "street"},
	{FilterPuff, "puff"},
	{FilterCollection, "collection"},
	{FilterSalty, "salty"},
	{FilterTexture, "texture"},
	{FilterColorful, "colorful"},
	{FilterSnow, "snow"},
	{FilterBlush, "blush"},
	{FilterNostalgia, "nostalgia"},
	{FilterCaramel, "caramel"},
	{FilterTipsy, "tipsy"},
	{FilterLavender, "lavender"},
	{FilterRouge, "rouge"},
	{FilterMisty, "misty"},
}

var stickerTemplates = []Template{
	{StickerChristmas, "christmas"},
	{StickerSquid, "squid"},
	{StickerPiggy, "piggy"},
	{StickerLongcat, "longcat"},
	{StickerHairhoop, "hairhoop"},
	{StickerRelax, "relax"},
	{StickerCartooncat, "cartooncat"},
	{StickerButterfly, "butterfly"},
	{StickerBrush, "brush"},
	{StickerGlass, "glass"},
	{StickerTiara, "tiara"},
	{StickerLove, "love"},
}

// Templates returns the catalog for a template-valued module, nil for Beauty.
func Templates(m Module) []Template {
	var src []Template
	switch m {
	case ModuleStyleMakeup:
		src = makeupTemplates
	case ModuleFilter:
		src = filterTemplates
	case ModuleSticker:
		src = stickerTemplates
	default:
		return nil
	}
	out := make([]Template, len(src))
	copy(out, src)
	return out
}
