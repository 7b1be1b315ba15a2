package emit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders one spectral value as the text of one output line, without
// the trailing newline.
type Format func(v float64) string

// Format names accepted by ParseFormat.
const (
	FormatNameTuple = "tuple"
	FormatNamePlain = "plain"
)

// FormatTuple renders v as a single-element tuple, "(<value>,)".
func FormatTuple(v float64) string {
	return "(" + FormatValue(v) + ",)"
}

// FormatPlain renders v on its own.
func FormatPlain(v float64) string {
	return FormatValue(v)
}

// ParseFormat resolves a format by name. The empty name selects tuple.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatNameTuple:
		return FormatTuple, nil
	case FormatNamePlain:
		return FormatPlain, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

// FormatValue renders v as the shortest decimal that round-trips to the same
// float64. Integral values keep a ".0" suffix, and exponent notation is used
// only for decimal exponents below -4 or from 16 up, so 0.5 prints as "0.5",
// 3 as "3.0", 1e-5 as "1e-05" and 1e16 as "1e+16". Output never depends on the
// locale.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
