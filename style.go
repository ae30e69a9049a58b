package svgar

import "maps"

// DefaultStyleName is the name of the protected style every slab carries.
const DefaultStyleName = "default"

// State is a named style variant of a slab, e.g. "hover" or "selected".
// Styles maps attribute names to values applied while the state is active.
type State struct {
	Name   string
	Styles map[string]string
}

// Style is a named attribute set applied to a slab's geometry.
type Style struct {
	Name       string
	Attributes map[string]string
}

func (s State) clone() State {
	return State{Name: s.Name, Styles: cloneAttrs(s.Styles)}
}

func (s Style) clone() Style {
	return Style{Name: s.Name, Attributes: cloneAttrs(s.Attributes)}
}

// cloneAttrs copies an attribute map, keeping nil as an empty map.
func cloneAttrs(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}

// defaultStyleAttributes are the attributes of a freshly created slab's
// default style.
func defaultStyleAttributes() map[string]string {
	return map[string]string{
		"fill":         "none",
		"stroke":       "#000000",
		"stroke-width": "1",
	}
}

// styleSet keeps the protected default style apart from the editable
// custom styles so list replacement and filtering never touch it.
type styleSet struct {
	protected Style
	custom    []Style
}

func newStyleSet(defaultAttrs map[string]string) styleSet {
	return styleSet{
		protected: Style{Name: DefaultStyleName, Attributes: cloneAttrs(defaultAttrs)},
	}
}

// all returns the custom styles followed by the default.
func (s *styleSet) all() []Style {
	out := make([]Style, 0, len(s.custom)+1)
	for _, st := range s.custom {
		out = append(out, st.clone())
	}
	return append(out, s.protected.clone())
}

func cloneStyles(styles []Style) []Style {
	out := make([]Style, len(styles))
	for i, st := range styles {
		out[i] = st.clone()
	}
	return out
}

func cloneStates(states []State) []State {
	out := make([]State, len(states))
	for i, st := range states {
		out[i] = st.clone()
	}
	return out
}

// evict returns a new slice without the entries for which fn holds,
// preserving the relative order of the rest. A nil fn evicts nothing.
func evict[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if fn != nil && fn(it) {
			continue
		}
		out = append(out, it)
	}
	return out
}
