// Package emit streams spectral values as paced, line-oriented text.
package emit
