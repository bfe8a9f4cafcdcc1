package beauty

// ParamCache remembers the last strength read or written per template for the
// current session. A missing key and a stored zero are different answers.
// The zero value is not usable; call NewParamCache. Methods are nil-safe.
type ParamCache struct {
	values map[string]float64
}

func NewParamCache() *ParamCache {
	return &ParamCache{values: make(map[string]float64)}
}

// Get returns the cached value for template and whether one exists.
func (c *ParamCache) Get(template string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.values[template]
	return v, ok
}

// Set overwrites the value for template, zero included.
func (c *ParamCache) Set(template string, v float64) {
	if c == nil {
		return
	}
	if c.values == nil {
		c.values = make(map[string]float64)
	}
	c.values[template] = v
}

// Clear drops every entry.
func (c *ParamCache) Clear() {
	if c == nil {
		return
	}
	clear(c.values)
}

func (c *ParamCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Snapshot returns a copy of the cached entries.
func (c *ParamCache) Snapshot() map[string]float64 {
	out := make(map[string]float64)
	if c == nil {
		return out
	}
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
