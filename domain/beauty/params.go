package beauty

// FaceArea identifies a face-shape region adjusted through the RTC engine's
// face-shape area options. Values follow the native area enumeration.
type FaceArea int

const (
	AreaHeadScale        FaceArea = 100
	AreaForehead         FaceArea = 101
	AreaFaceContour      FaceArea = 102
	AreaFaceLength       FaceArea = 103
	AreaFaceWidth        FaceArea = 104
	AreaCheekbone        FaceArea = 105
	AreaCheek            FaceArea = 106
	AreaMandible         FaceArea = 107
	AreaChin             FaceArea = 108
	AreaEyeScale         FaceArea = 200
	AreaEyeDistance      FaceArea = 201
	AreaEyePosition      FaceArea = 202
	AreaLowerEyelid      FaceArea = 203
	AreaEyePupils        FaceArea = 204
	AreaEyeInnerCorner   FaceArea = 205
	AreaEyeOuterCorner   FaceArea = 206
	AreaNoseLength       FaceArea = 300
	AreaNoseWidth        FaceArea = 301
	AreaNoseWing         FaceArea = 302
	AreaNoseRoot         FaceArea = 303
	AreaNoseBridge       FaceArea = 304
	AreaNoseTip          FaceArea = 305
	AreaNoseGeneral      FaceArea = 306
	AreaMouthScale       FaceArea = 400
	AreaMouthPosition    FaceArea = 401
	AreaMouthSmile       FaceArea = 402
	AreaMouthLip         FaceArea = 403
	AreaEyebrowPosition  FaceArea = 500
	AreaEyebrowThickness FaceArea = 501
)

// ParamKind says how a scalar parameter reaches the engine.
type ParamKind int

const (
	// ParamFloat is a float option/key pair.
	ParamFloat ParamKind = iota
	// ParamFaceArea is an integer face-shape area intensity.
	ParamFaceArea
)

// ParamID names a scalar parameter. It doubles as the suffix of the item's
// display key.
type ParamID string

// ParamGroup clusters parameters the way the beauty page presents them.
type ParamGroup int

const (
	GroupSkin ParamGroup = iota
	GroupFaceShape
	GroupQuality
)

// Param describes one tunable scalar.
type Param struct {
	ID      ParamID
	Group   ParamGroup
	Kind    ParamKind
	Option  string
	Key     string
	Area    FaceArea
	Default float64
	Min     float64
	Max     float64
}

func skin(id ParamID, option, key string, def, min float64) Param {
	return Param{ID: id, Group: GroupSkin, Kind: ParamFloat, Option: option, Key: key, Default: def, Min: min, Max: 1}
}

func quality(id ParamID, key string) Param {
	return Param{ID: id, Group: GroupQuality, Kind: ParamFloat, Option: OptionBeauty, Key: key, Default: 0, Min: -1, Max: 1}
}

func area(id ParamID, a FaceArea, min float64) Param {
	return Param{ID: id, Group: GroupFaceShape, Kind: ParamFaceArea, Area: a, Default: 0, Min: min, Max: 100}
}

// Scalar parameter ids.
const (
	ParamSmoothness       ParamID = "smoothness"
	ParamLightness        ParamID = "lightness"
	ParamRedness          ParamID = "redness"
	ParamContrastStrength ParamID = "contrast_strength"
	ParamSharpness        ParamID = "sharpness"
	ParamEyePouch         ParamID = "eye_pouch"
	ParamBrightenEye      ParamID = "brighten_eye"
	ParamWhitenTeeth      ParamID = "whiten_teeth"
	ParamNasolabialFold   ParamID = "nasolabial_fold"
	ParamTemperature      ParamID = "temperature"
	ParamHue              ParamID = "hue"
	ParamSaturation       ParamID = "saturation"
	ParamBrightness       ParamID = "brightness"
)

// params is ordered as the beauty page lists it.
var params = []Param{
	skin(ParamSmoothness, OptionBeauty, "smoothness", 0.7, 0),
	skin(ParamLightness, OptionBeauty, "lightness", 0.7, 0),
	skin(ParamRedness, OptionBeauty, "redness", 0.3, 0),
	skin(ParamContrastStrength, OptionBeauty, "contrast_strength", 0, -1),
	skin(ParamSharpness, OptionBeauty, "sharpness", 0.6, 0),
	skin(ParamEyePouch, OptionBuffing, "eye_pouch", 0.8, 0),
	skin(ParamBrightenEye, OptionBuffing, "brighten_eye", 0.8, 0),
	skin(ParamWhitenTeeth, OptionBuffing, "whiten_teeth", 0, 0),
	skin(ParamNasolabialFold, OptionBuffing, "nasolabial_fold", 0.8, 0),

	area("face_contour", AreaFaceContour, 0),
	area("mandible", AreaMandible, 0),
	area("chin", AreaChin, -100),
	area("cheek", AreaCheek, 0),
	area("cheekbone", AreaCheekbone, 0),
	area("face_length", AreaFaceLength, -100),
	area("face_width", AreaFaceWidth, 0),
	area("fore_head", AreaForehead, 0),
	area("head_scale", AreaHeadScale, 0),
	area("nose_width", AreaNoseWidth, 0),
	area("nose_root", AreaNoseRoot, 0),
	area("nose_bridge", AreaNoseBridge, 0),
	area("nose_tip", AreaNoseTip, 0),
	area("nose_wing", AreaNoseWing, 0),
	area("nose_length", AreaNoseLength, -100),
	area("nose_general", AreaNoseGeneral, -100),
	area("eye_scale", AreaEyeScale, 0),
	area("eye_distance", AreaEyeDistance, -100),
	area("eye_lid", AreaLowerEyelid, 0),
	area("inner_corner", AreaEyeInnerCorner, -100),
	area("outer_corner", AreaEyeOuterCorner, -100),
	area("eye_position", AreaEyePosition, -100),
	area("eye_pupils", AreaEyePupils, 0),
	area("mouth_smile", AreaMouthSmile, 0),
	area("mouth_lip", AreaMouthLip, 0),
	area("mouth_scale", AreaMouthScale, -100),
	area("mouth_position", AreaMouthPosition, 0),
	area("eyebrow_thickness", AreaEyebrowThickness, -100),
	area("eyebrow_position", AreaEyebrowPosition, -100),

	quality(ParamTemperature, "temperature"),
	quality(ParamHue, "hue"),
	quality(ParamSaturation, "saturation"),
	quality(ParamBrightness, "brightness"),
}

var paramIndex = func() map[ParamID]int {
	m := make(map[ParamID]int, len(params))
	for i, p := range params {
		m[p.ID] = i
	}
	return m
}()

// Params returns every scalar parameter in page order.
func Params() []Param {
	out := make([]Param, len(params))
	copy(out, params)
	return out
}

// ParamsInGroup returns the parameters of one group in page order.
func ParamsInGroup(g ParamGroup) []Param {
	var out []Param
	for _, p := range params {
		if p.Group == g {
			out = append(out, p)
		}
	}
	return out
}

// LookupParam returns the descriptor for id.
func LookupParam(id ParamID) (Param, bool) {
	i, ok := paramIndex[id]
	if !ok {
		return Param{}, false
	}
	return params[i], true
}
