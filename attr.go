package nvec

import (
	"fmt"
	"maps"
	"strings"
)

// shortcutNames maps the positional shortcuts to component indices.
const shortcutNames = "xyzt"

// X returns the first component. ok is false if the vector is empty.
func (v Vector) X() (float64, bool) { return v.shortcut(0) }

// Y returns the second component.
func (v Vector) Y() (float64, bool) { return v.shortcut(1) }

// Z returns the third component.
func (v Vector) Z() (float64, bool) { return v.shortcut(2) }

// T returns the fourth component.
func (v Vector) T() (float64, bool) { return v.shortcut(3) }

func (v Vector) shortcut(pos int) (float64, bool) {
	if pos < len(v.components) {
		return v.components[pos], true
	}
	return 0, false
}

// Attr looks up an attribute by name. The single-letter shortcuts x, y, z
// and t resolve to components 0 through 3; other names resolve to values
// previously attached with WithAttr.
func (v Vector) Attr(name string) (any, error) {
	if val, ok := v.attrs[name]; ok {
		return val, nil
	}
	if len(name) == 1 {
		if pos := strings.Index(shortcutNames, name); pos >= 0 {
			if c, ok := v.shortcut(pos); ok {
				return c, nil
			}
		}
	}
	return nil, &AttributeError{
		Name: name,
		Msg:  fmt.Sprintf("'Vector' object has no attribute '%s'", name),
	}
}

// WithAttr returns a copy of v carrying the attribute name=value.
//
// Single-letter lowercase names are reserved: the shortcuts x, y, z and t
// are read-only and every other letter from a to z is rejected. The
// receiver is never modified. Attributes do not affect equality or hashing.
func (v Vector) WithAttr(name string, value any) (Vector, error) {
	if err := checkSettable(name); err != nil {
		return Vector{}, err
	}
	attrs := make(map[string]any, len(v.attrs)+1)
	maps.Copy(attrs, v.attrs)
	attrs[name] = value
	return Vector{components: v.components, attrs: attrs}, nil
}

func checkSettable(name string) error {
	if len(name) != 1 {
		return nil
	}
	switch {
	case strings.Contains(shortcutNames, name):
		return &AttributeError{Name: name, Msg: fmt.Sprintf("readonly attribute '%s'", name)}
	case name[0] >= 'a' && name[0] <= 'z':
		return &AttributeError{Name: name, Msg: "can't set attributes 'a' to 'z' in 'Vector'"}
	}
	return nil
}
