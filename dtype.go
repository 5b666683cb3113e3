package imgarray

import (
	"strconv"
	"strings"
)

// DType describes the element type of a Mat.
type DType int

const (
	Uint8 DType = iota // unsigned 8-bit, the only type raster data loads as
)

// String returns the conventional name of the type, e.g. "uint8".
func (d DType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	}
	return "DType(" + strconv.Itoa(int(d)) + ")"
}

// Bits returns the element width in bits.
func (d DType) Bits() int {
	switch d {
	case Uint8:
		return 8
	}
	return 0
}

// Shape is the dimension tuple of a Mat: (rows, cols) for a single-channel
// Mat and (rows, cols, channels) otherwise.
type Shape []int

// String formats the shape as a tuple, e.g. "(342, 548, 3)".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(d))
	}
	if len(s) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
