package beauty

// Engine is the opaque effects engine boundary. Implementations are only
// called while a session is attached to a Facade.
type Engine interface {
	AddOrUpdateEffect(node Module, template string) error
	RemoveEffect(node Module) error
	PerformAction(node Module, action Action) error

	FloatParam(option, key string) float64
	SetFloatParam(option, key string, v float64)
	BoolParam(option, key string) bool
	SetBoolParam(option, key string, v bool)
	IntParam(option, key string) int
	SetIntParam(option, key string, v int)
	SetStringParam(option, key, v string)

	FaceShapeArea(area FaceArea) int
	SetFaceShapeArea(area FaceArea, intensity int)
}

// Option groups and keys understood by the engine.
const (
	OptionBeauty    = "beauty_effect_option"
	OptionBuffing   = "face_buffing_option"
	OptionFaceShape = "face_shape_beauty_option"
	OptionMakeup    = "style_makeup_option"
	OptionFilter    = "filter_effect_option"
	OptionSticker   = "sticker_effect_option"

	KeyEnable         = "enable"
	KeyWhitenLUTPath  = "whiten_lut_path"
	KeyFaceStyle      = "style"
	KeyFaceIntensity  = "intensity"
	KeyStyleIntensity = "styleIntensity"
	KeyFilterStrength = "filterStrength"
	KeyStrength       = "strength"
)
