package assets

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// LabelsYAML contains the raw display label catalog.
//
//go:embed labels.yaml
var LabelsYAML []byte

// Catalog maps display keys to human readable labels.
type Catalog struct {
	Pages map[string]string `yaml:"pages"`
	Items map[string]string `yaml:"items"`
}

// ParseCatalog decodes a label catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	return &c, nil
}

var labels = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(LabelsYAML)
})

// Labels returns the embedded catalog.
func Labels() (*Catalog, error) { return labels() }

// Label resolves key against the embedded catalog. Unknown keys are derived
// from the key itself so new items still read sensibly.
func Label(key string) string {
	c, err := labels()
	if err == nil {
		if v, ok := c.Items[key]; ok {
			return v
		}
		if v, ok := c.Pages[key]; ok {
			return v
		}
	}
	return fallbackLabel(key)
}

var keyPrefixes = []string{
	"beauty_face_shape_", "beauty_effect_", "beauty_makeup_",
	"beauty_filter_", "beauty_sticker_", "beauty_group_",
}

func fallbackLabel(key string) string {
	for _, p := range keyPrefixes {
		if strings.HasPrefix(key, p) {
			key = strings.TrimPrefix(key, p)
			break
		}
	}
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
