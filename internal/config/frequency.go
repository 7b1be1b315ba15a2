package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFrequency parses an angular frequency written as a plain number or as a
// multiple of pi: "pi", "2pi", "2*pi", "pi/2", "-pi/4", "0.5*pi", "pi*3" and
// "π" are all accepted. Spaces may surround the operators and pi; a space
// between two numbers is an error.
func ParseFrequency(s string) (float64, error) {
	expr := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "π", "pi")
	if expr == "" {
		return 0, fmt.Errorf("frequency must not be empty")
	}
	expr, err := squeezeSpaces(expr, s)
	if err != nil {
		return 0, err
	}

	idx := strings.Index(expr, "pi")
	if idx < 0 {
		return parseFinite(expr, s)
	}

	coef := 1.0
	head, mul := strings.CutSuffix(expr[:idx], "*")
	switch head {
	case "", "+", "-":
		if mul {
			return 0, fmt.Errorf("frequency %q: missing factor before '*'", s)
		}
		if head == "-" {
			coef = -1
		}
	default:
		v, err := parseFinite(head, s)
		if err != nil {
			return 0, err
		}
		coef = v
	}

	value := coef * math.Pi
	if tail := expr[idx+2:]; tail != "" {
		op, operand := tail[0], tail[1:]
		v, err := parseFinite(operand, s)
		if err != nil {
			return 0, err
		}
		switch op {
		case '/':
			if v == 0 {
				return 0, fmt.Errorf("frequency %q divides by zero", s)
			}
			value /= v
		case '*':
			value *= v
		default:
			return 0, fmt.Errorf("frequency %q: unexpected %q after pi", s, op)
		}
	}
	return value, nil
}

// ParseFrequencies parses each entry with ParseFrequency.
func ParseFrequencies(in []string) ([]float64, error) {
	out := make([]float64, 0, len(in))
	for i, s := range in {
		f, err := ParseFrequency(s)
		if err != nil {
			return nil, fmt.Errorf("frequency %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// squeezeSpaces drops whitespace next to '*', '/' or pi. Any other whitespace
// separates two operands and is rejected.
func squeezeSpaces(expr, orig string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(expr); {
		if !isSpace(expr[i]) {
			b.WriteByte(expr[i])
			i++
			continue
		}
		j := i
		for j < len(expr) && isSpace(expr[j]) {
			j++
		}
		prev, next := b.String(), expr[j:]
		if !strings.HasSuffix(prev, "*") && !strings.HasSuffix(prev, "/") &&
			!strings.HasSuffix(prev, "pi") && !strings.HasPrefix(next, "*") &&
			!strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "pi") {
			return "", fmt.Errorf("frequency %q: unexpected space", orig)
		}
		i = j
	}
	return b.String(), nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func parseFinite(num, orig string) (float64, error) {
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q", orig)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("frequency must be finite: %q", orig)
	}
	return v, nil
}
