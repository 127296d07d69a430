package nvec

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// SphericalMarker is the trailing format-spec character that selects
// hyperspherical output.
const SphericalMarker = 'h'

// reprMaxComponents bounds the components shown by GoString.
const reprMaxComponents = 5

// String renders the components as a tuple, e.g. "(3.0, 4.0)".
// A single component keeps the trailing comma: "(3.0,)".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range v.components {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(repr(c))
	}
	if len(v.components) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

// GoString renders a constructor-like form, abbreviating long vectors:
// "Vector([0.0, 1.0, 2.0, 3.0, 4.0, ...])".
func (v Vector) GoString() string {
	var b strings.Builder
	b.WriteString("Vector([")
	for i, c := range v.components {
		if i == reprMaxComponents {
			b.WriteString(", ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(repr(c))
	}
	b.WriteString("])")
	return b.String()
}

// FormatSpec applies spec to every component.
//
// spec uses the float format mini-language
// [[fill]align][sign][z][#][0][width][grouping][.precision][type] with
// types e, E, f, F, g, G, n and %. Without a trailing 'h' the result is
// "(c0, c1, ...)". With it the marker is stripped and the result is the
// hyperspherical form "<magnitude, angle1, ...>".
func (v Vector) FormatSpec(spec string) (string, error) {
	coords := v.Values()
	left, right := "(", ")"
	if strings.HasSuffix(spec, string(SphericalMarker)) {
		spec = spec[:len(spec)-1]
		coords = v.spherical()
		left, right = "<", ">"
	}

	fs, err := parseSpec(spec)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(left)
	first := true
	for c := range coords {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fs.format(c))
	}
	b.WriteString(right)
	return b.String(), nil
}

func (v Vector) spherical() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.Magnitude()) {
			return
		}
		for a := range v.Angles() {
			if !yield(a) {
				return
			}
		}
	}
}

// Format implements fmt.Formatter.
//
// %v and %s print String and %#v prints GoString. The float verbs
// %e %E %f %F %g %G and %h (hyperspherical) honour the '+', ' ', '-', '#'
// and '0' flags as well as width and precision, applied per component.
func (v Vector) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, v.GoString())
			return
		}
		fmt.Fprint(f, v.String())
		return
	case 's':
		fmt.Fprint(f, v.String())
		return
	case 'e', 'E', 'f', 'F', 'g', 'G', SphericalMarker:
	default:
		fmt.Fprintf(f, "%%!%c(nvec.Vector=%s)", verb, v.String())
		return
	}

	var spec strings.Builder
	switch {
	case f.Flag('-'):
		spec.WriteByte('<')
	case f.Flag('0'):
		spec.WriteString("0=")
	}
	switch {
	case f.Flag('+'):
		spec.WriteByte('+')
	case f.Flag(' '):
		spec.WriteByte(' ')
	}
	if f.Flag('#') {
		spec.WriteByte('#')
	}
	if w, ok := f.Width(); ok {
		spec.WriteString(strconv.Itoa(w))
	}
	if p, ok := f.Precision(); ok {
		spec.WriteByte('.')
		spec.WriteString(strconv.Itoa(p))
	}
	spec.WriteRune(verb)

	out, err := v.FormatSpec(spec.String())
	if err != nil {
		fmt.Fprintf(f, "%%!%c(%v)", verb, err)
		return
	}
	fmt.Fprint(f, out)
}
