package effects

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ParamSet is a batch of engine values keyed by "<option>/<key>". Areas are
// keyed by face area.
type ParamSet struct {
	Floats map[string]float64 `yaml:"floats"`
	Bools  map[string]bool    `yaml:"bools"`
	Ints   map[string]int     `yaml:"ints"`
	Areas  map[int]int        `yaml:"areas"`
}

// NodeDefaults holds a node's base values and per-template overrides.
type NodeDefaults struct {
	Default   ParamSet            `yaml:"default"`
	Templates map[string]ParamSet `yaml:"templates"`
}

// Defaults maps module names to node defaults.
type Defaults struct {
	Nodes map[string]NodeDefaults `yaml:"nodes"`
}

// ParseDefaults decodes a defaults document and checks that node names are
// known modules.
func ParseDefaults(data []byte) (Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parse defaults: %w", err)
	}
	for name := range d.Nodes {
		if _, err := beauty.ParseModule(name); err != nil {
			return Defaults{}, fmt.Errorf("parse defaults: %w", err)
		}
	}
	return d, nil
}

var builtinDefaults = sync.OnceValues(func() (Defaults, error) {
	return ParseDefaults(defaultsYAML)
})

// BuiltinDefaults returns the embedded defaults.
func BuiltinDefaults() (Defaults, error) {
	return builtinDefaults()
}

// For returns the values node loads with for template.
func (d Defaults) For(node beauty.Module, template string) []ParamSet {
	nd, ok := d.Nodes[node.String()]
	if !ok {
		return nil
	}
	sets := []ParamSet{nd.Default}
	if t, ok := nd.Templates[template]; ok {
		sets = append(sets, t)
	}
	return sets
}

// Key joins an option group and key the way defaults and snapshots spell them.
func Key(option, key string) string {
	return option + "/" + key
}
