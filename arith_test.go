package imgarray

import (
	"errors"
	"testing"
)

func TestAddSaturates(t *testing.T) {
	sum, err := Add(Vector(250), Vector(10))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, _ := sum.At(0, 0, 0)
	if got != 255 {
		t.Errorf("250 + 10 = %d, want 255 (the wrapped value would be 4)", got)
	}
	if sum.String() != "[[255]]" {
		t.Errorf("String = %q, want [[255]]", sum.String())
	}
}

func TestElementwiseExhaustive(t *testing.T) {
	// Every (a, b) byte pair, laid out so the vector tail is exercised.
	a := make([]uint8, 0, 256*256)
	b := make([]uint8, 0, 256*256)
	for i := range 256 {
		for j := range 256 {
			a = append(a, uint8(i))
			b = append(b, uint8(j))
		}
	}
	// Drop one element so the length is not a multiple of any vector width.
	a, b = a[:len(a)-1], b[:len(b)-1]
	ma, _ := FromBytes(len(a), 1, 1, a)
	mb, _ := FromBytes(len(b), 1, 1, b)

	tests := []struct {
		name string
		op   func(a, b *Mat) (*Mat, error)
		ref  func(a, b int) int
	}{
		{"Add", Add, func(a, b int) int { return min(a+b, 255) }},
		{"Subtract", Subtract, func(a, b int) int { return max(a-b, 0) }},
		{"AbsDiff", AbsDiff, func(a, b int) int {
			if a > b {
				return a - b
			}
			return b - a
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.op(ma, mb)
			if err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			for i, v := range out.Data() {
				if want := tt.ref(int(a[i]), int(b[i])); int(v) != want {
					t.Fatalf("%s(%d, %d) = %d, want %d", tt.name, a[i], b[i], v, want)
				}
			}
		})
	}
}

func TestAddLeavesInputs(t *testing.T) {
	x := gradient(t, 3, 5, 3)
	y := gradient(t, 3, 5, 3)
	xc, yc := x.Clone(), y.Clone()
	if _, err := Add(x, y); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !x.Equal(xc) || !y.Equal(yc) {
		t.Error("Add modified its inputs")
	}
}

func TestAbsDiffSymmetric(t *testing.T) {
	x := gradient(t, 4, 9, 3)
	y, _ := Add(x, x)
	d1, _ := AbsDiff(x, y)
	d2, _ := AbsDiff(y, x)
	if !d1.Equal(d2) {
		t.Error("AbsDiff(x, y) != AbsDiff(y, x)")
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b *Mat
		want error
	}{
		{"rows", gradient(t, 2, 3, 3), gradient(t, 3, 3, 3), ErrShapeMismatch},
		{"channels", gradient(t, 2, 3, 3), gradient(t, 2, 3, 1), ErrShapeMismatch},
		{"transposed", Vector(1, 2), gradient(t, 1, 2, 1), ErrShapeMismatch},
		{"empty", Vector(), Vector(1), ErrEmptyImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, op := range []func(a, b *Mat) (*Mat, error){Add, Subtract, AbsDiff} {
				if _, err := op(tt.a, tt.b); !errors.Is(err, tt.want) {
					t.Errorf("error = %v, want %v", err, tt.want)
				}
			}
		})
	}
}
