package nvec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// floatSpec is a parsed per-component format specification:
//
//	[[fill]align][sign][z][#][0][width][grouping][.precision][type]
type floatSpec struct {
	fill      rune
	align     rune // one of '<', '>', '^', '=' or 0
	sign      rune // one of '+', '-', ' ' or 0
	coerceNeg bool // 'z': render negative zero as zero
	alt       bool // '#'
	width     int
	grouping  rune // ',' or '_' or 0
	precision int  // -1 if absent
	verb      rune // one of "eEfFgGn%" or 0
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func parseSpec(s string) (floatSpec, error) {
	spec := floatSpec{precision: -1}
	rs := []rune(s)
	n, i := len(rs), 0

	switch {
	case n >= 2 && isAlign(rs[1]):
		spec.fill, spec.align = rs[0], rs[1]
		i = 2
	case n >= 1 && isAlign(rs[0]):
		spec.align = rs[0]
		i = 1
	}
	if i < n && (rs[i] == '+' || rs[i] == '-' || rs[i] == ' ') {
		spec.sign = rs[i]
		i++
	}
	if i < n && rs[i] == 'z' {
		spec.coerceNeg = true
		i++
	}
	if i < n && rs[i] == '#' {
		spec.alt = true
		i++
	}
	if i < n && rs[i] == '0' {
		if spec.fill == 0 {
			spec.fill = '0'
		}
		if spec.align == 0 {
			spec.align = '='
		}
		i++
	}

	start := i
	for i < n && rs[i] >= '0' && rs[i] <= '9' {
		i++
	}
	if i > start {
		w, err := strconv.Atoi(string(rs[start:i]))
		if err != nil {
			return spec, &FormatError{Msg: "Too many decimal digits in format string", cause: err}
		}
		spec.width = w
	}

	if i < n && (rs[i] == ',' || rs[i] == '_') {
		spec.grouping = rs[i]
		i++
	}

	if i < n && rs[i] == '.' {
		i++
		start = i
		for i < n && rs[i] >= '0' && rs[i] <= '9' {
			i++
		}
		if i == start {
			return spec, formatErrorf("Format specifier missing precision")
		}
		p, err := strconv.Atoi(string(rs[start:i]))
		if err != nil {
			return spec, &FormatError{Msg: "Too many decimal digits in format string", cause: err}
		}
		spec.precision = p
	}

	if i < n {
		spec.verb = rs[i]
		i++
	}
	if i != n {
		return spec, formatErrorf("Invalid format specifier %q", s)
	}

	switch spec.verb {
	case 0, 'e', 'E', 'f', 'F', 'g', 'G', '%':
	case 'n':
		if spec.grouping != 0 {
			return spec, formatErrorf("Cannot specify '%c' with 'n'.", spec.grouping)
		}
	default:
		return spec, formatErrorf("Unknown format code '%c' for object of type 'float'", spec.verb)
	}
	return spec, nil
}

// format renders a single float according to the spec.
func (s floatSpec) format(f float64) string {
	negative := math.Signbit(f) && !math.IsNaN(f)
	body := s.body(math.Abs(f))
	if negative && s.coerceNeg && isZeroBody(body) {
		negative = false
	}

	var sign string
	switch {
	case negative:
		sign = "-"
	case s.sign == '+':
		sign = "+"
	case s.sign == ' ':
		sign = " "
	}

	if s.grouping != 0 && body != "" && body[0] >= '0' && body[0] <= '9' {
		body = group(body, s.grouping)
	}
	return s.pad(sign, body)
}

// body formats the absolute value a without sign.
func (s floatSpec) body(a float64) string {
	if math.IsInf(a, 0) || math.IsNaN(a) {
		word := "inf"
		if math.IsNaN(a) {
			word = "nan"
		}
		if s.verb == 'E' || s.verb == 'F' || s.verb == 'G' {
			word = strings.ToUpper(word)
		}
		if s.verb == '%' {
			word += "%"
		}
		return word
	}

	prec := s.precision
	switch s.verb {
	case 0:
		if prec < 0 {
			return repr(a)
		}
		if prec == 0 {
			prec = 1
		}
		out := s.general(a, prec, 'g')
		if !strings.ContainsAny(out, ".e") {
			out += ".0"
		}
		return out
	case 'e', 'E':
		if prec < 0 {
			prec = 6
		}
		return fmt.Sprintf(s.verbFmt(s.verb), prec, a)
	case 'f', 'F':
		if prec < 0 {
			prec = 6
		}
		return fmt.Sprintf(s.verbFmt('f'), prec, a)
	case 'g', 'G', 'n':
		if prec < 0 {
			prec = 6
		}
		if prec == 0 {
			prec = 1
		}
		verb := 'g'
		if s.verb == 'G' {
			verb = 'G'
		}
		return s.general(a, prec, verb)
	case '%':
		if prec < 0 {
			prec = 6
		}
		return fmt.Sprintf(s.verbFmt('f'), prec, a*100) + "%"
	}
	return repr(a)
}

func (s floatSpec) general(a float64, prec int, verb rune) string {
	if s.alt {
		return fmt.Sprintf(s.verbFmt(verb), prec, a)
	}
	return strconv.FormatFloat(a, byte(verb), prec, 64)
}

func (s floatSpec) verbFmt(verb rune) string {
	if s.alt {
		return "%#.*" + string(verb)
	}
	return "%.*" + string(verb)
}

func (s floatSpec) pad(sign, body string) string {
	n := utf8.RuneCountInString(sign) + utf8.RuneCountInString(body)
	if n >= s.width {
		return sign + body
	}
	fill := s.fill
	if fill == 0 {
		fill = ' '
	}
	gap := s.width - n
	padding := func(k int) string { return strings.Repeat(string(fill), k) }

	switch s.align {
	case '<':
		return sign + body + padding(gap)
	case '^':
		left := gap / 2
		return padding(left) + sign + body + padding(gap-left)
	case '=':
		return sign + padding(gap) + body
	default:
		return padding(gap) + sign + body
	}
}

// group inserts sep between every three digits of the integer part.
func group(body string, sep rune) string {
	end := strings.IndexFunc(body, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(body)
	}
	digits := body[:end]
	if len(digits) <= 3 {
		return body
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	b.WriteString(body[end:])
	return b.String()
}

func isZeroBody(body string) bool {
	for _, r := range body {
		if r == 'e' || r == 'E' || r == '%' {
			break
		}
		if r >= '1' && r <= '9' {
			return false
		}
	}
	return true
}

// repr returns the shortest string that round-trips to f, always showing
// a decimal point or exponent. Exponent notation is used when the decimal
// exponent is below -4 or at least 16.
func repr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return strings.Replace(sci, ".0e", "e", 1)
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
