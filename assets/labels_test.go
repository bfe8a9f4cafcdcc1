package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_Embedded(t *testing.T) {
	c, err := Labels()
	require.NoError(t, err)
	assert.Len(t, c.Pages, 4)
	assert.Equal(t, "Filter", Label("beauty_group_filter"))
	assert.Equal(t, "White Tea", Label("beauty_filter_white_tea"))
	assert.Equal(t, "Forehead", Label("beauty_face_shape_fore_head"))
	assert.Equal(t, "On/Off", Label("beauty_effect_enable"))
}

func TestLabel_Fallback(t *testing.T) {
	assert.Equal(t, "Glitter Rain", Label("beauty_sticker_glitter_rain"))
	assert.Equal(t, "Plain", Label("plain"))
	assert.Equal(t, "", Label(""))
}

func TestParseCatalog_Error(t *testing.T) {
	_, err := ParseCatalog([]byte("pages: [unclosed"))
	assert.Error(t, err)
}
