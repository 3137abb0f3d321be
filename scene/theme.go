package scene

// Theme caches the theme dependent parts of a scene. They are recomputed
// only when the dark flag changes.
type Theme struct {
	root *Node

	valid    bool
	dark     bool
	revision int

	materials MaterialSet
	lights    []Light
	lighting  Lighting
}

func NewTheme(root *Node, isDark bool) *Theme {
	t := &Theme{root: root}
	t.Set(isDark)
	return t
}

// Set switches the theme and reports whether anything was recomputed.
func (t *Theme) Set(isDark bool) bool {
	if t.valid && t.dark == isDark {
		return false
	}
	t.dark = isDark
	t.valid = true
	t.revision++
	t.materials = Materials(isDark)
	t.lights = Lights(t.root, isDark)
	t.lighting = GlobalLighting(isDark)
	return true
}

func (t *Theme) Dark() bool {
	return t.dark
}

// Revision increments on every recomputation.
func (t *Theme) Revision() int {
	return t.revision
}

func (t *Theme) Materials() *MaterialSet {
	return &t.materials
}

func (t *Theme) Lights() []Light {
	return t.lights
}

func (t *Theme) Lighting() Lighting {
	return t.lighting
}
