package beauty

import "fmt"

// fakeEngine mimics the native engine closely enough for facade tests: loading
// a template node resets that module's strength to templateDefault.
type fakeEngine struct {
	floats  map[string]float64
	bools   map[string]bool
	ints    map[string]int
	strings map[string]string
	areas   map[FaceArea]int

	templateDefault float64
	adds            []string
	removes         []Module
	actions         []string
	failAdd         bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		floats:          make(map[string]float64),
		bools:           make(map[string]bool),
		ints:            make(map[string]int),
		strings:         make(map[string]string),
		areas:           make(map[FaceArea]int),
		templateDefault: 0.5,
	}
}

var _ Engine = (*fakeEngine)(nil)

func pk(option, key string) string { return option + "/" + key }

func (e *fakeEngine) AddOrUpdateEffect(node Module, template string) error {
	e.adds = append(e.adds, fmt.Sprintf("%s:%s", node, template))
	if e.failAdd {
		return fmt.Errorf("add failed")
	}
	if option, key := strengthKey(node); option != "" {
		e.floats[pk(option, key)] = e.templateDefault
	}
	return nil
}

func (e *fakeEngine) RemoveEffect(node Module) error {
	e.removes = append(e.removes, node)
	return nil
}

func (e *fakeEngine) PerformAction(node Module, action Action) error {
	e.actions = append(e.actions, fmt.Sprintf("%s:%s", node, action))
	return nil
}

func (e *fakeEngine) FloatParam(option, key string) float64 { return e.floats[pk(option, key)] }
func (e *fakeEngine) SetFloatParam(option, key string, v float64) {
	e.floats[pk(option, key)] = v
}
func (e *fakeEngine) BoolParam(option, key string) bool       { return e.bools[pk(option, key)] }
func (e *fakeEngine) SetBoolParam(option, key string, v bool) { e.bools[pk(option, key)] = v }
func (e *fakeEngine) IntParam(option, key string) int         { return e.ints[pk(option, key)] }
func (e *fakeEngine) SetIntParam(option, key string, v int)   { e.ints[pk(option, key)] = v }
func (e *fakeEngine) SetStringParam(option, key, v string)    { e.strings[pk(option, key)] = v }
func (e *fakeEngine) FaceShapeArea(area FaceArea) int         { return e.areas[area] }
func (e *fakeEngine) SetFaceShapeArea(area FaceArea, v int)   { e.areas[area] = v }

func (e *fakeEngine) addsFor(m Module) int {
	n := 0
	prefix := m.String() + ":"
	for _, a := range e.adds {
		if len(a) >= len(prefix) && a[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
