package imgarray

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Channel indices for BGR(A) data.
const (
	Blue  = 0
	Green = 1
	Red   = 2
	Alpha = 3
)

// maxChannels bounds the channel count of a Mat.
const maxChannels = 4

// Mat is a rows × cols × channels grid of bytes stored row-major with the
// channels of each pixel interleaved.
type Mat struct {
	rows     int
	cols     int
	channels int
	data     []uint8 // len == rows*cols*channels
}

// Pixel is the run of channel values at one (row, col) location. A Pixel
// returned by Mat.Pixel aliases the Mat: writes through it mutate the Mat.
type Pixel []uint8

// Equal reports whether both pixels hold the same values.
func (p Pixel) Equal(o Pixel) bool {
	return bytes.Equal(p, o)
}

// New allocates a zeroed Mat.
func New(rows, cols, channels int) (*Mat, error) {
	if err := checkShape(rows, cols, channels); err != nil {
		return nil, err
	}
	return newMat(rows, cols, channels), nil
}

// FromBytes wraps a copy of data as a Mat of the given shape.
func FromBytes(rows, cols, channels int, data []uint8) (*Mat, error) {
	if err := checkShape(rows, cols, channels); err != nil {
		return nil, err
	}
	if len(data) != rows*cols*channels {
		return nil, fmt.Errorf("%w: %d bytes for shape %v", ErrInvalidShape,
			len(data), Shape{rows, cols, channels})
	}
	m := newMat(rows, cols, channels)
	copy(m.data, data)
	return m, nil
}

// Vector returns an (n, 1) single-channel Mat holding values.
func Vector(values ...uint8) *Mat {
	m := &Mat{rows: len(values), cols: 1, channels: 1, data: make([]uint8, len(values))}
	if len(values) == 0 {
		m.cols = 0
	}
	copy(m.data, values)
	return m
}

func newMat(rows, cols, channels int) *Mat {
	return &Mat{
		rows:     rows,
		cols:     cols,
		channels: channels,
		data:     make([]uint8, rows*cols*channels),
	}
}

func checkShape(rows, cols, channels int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if channels < 1 || channels > maxChannels {
		return fmt.Errorf("%w: %d channels", ErrInvalidShape, channels)
	}
	return nil
}

// Rows returns the number of rows (image height).
func (m *Mat) Rows() int { return m.rows }

// Cols returns the number of columns (image width).
func (m *Mat) Cols() int { return m.cols }

// Channels returns the number of channels per pixel.
func (m *Mat) Channels() int { return m.channels }

// Shape returns (rows, cols) for a single-channel Mat and
// (rows, cols, channels) otherwise.
func (m *Mat) Shape() Shape {
	if m.channels == 1 {
		return Shape{m.rows, m.cols}
	}
	return Shape{m.rows, m.cols, m.channels}
}

// Size returns the total element count, rows × cols × channels.
func (m *Mat) Size() int {
	return len(m.data)
}

// DType returns the element type.
func (m *Mat) DType() DType {
	return Uint8
}

// Empty reports whether m is nil or holds no elements.
func (m *Mat) Empty() bool {
	return m == nil || len(m.data) == 0
}

// Data returns the backing slice. It aliases m.
func (m *Mat) Data() []uint8 {
	return m.data
}

// offset returns the index of the first channel of pixel (row, col).
func (m *Mat) offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("%w: (%d, %d) for shape %v", ErrOutOfBounds, row, col, m.Shape())
	}
	return (row*m.cols + col) * m.channels, nil
}

// At returns the value of channel ch at (row, col).
func (m *Mat) At(row, col, ch int) (uint8, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, err
	}
	if ch < 0 || ch >= m.channels {
		return 0, fmt.Errorf("%w: channel %d of %d", ErrOutOfBounds, ch, m.channels)
	}
	return m.data[off+ch], nil
}

// Set stores v in channel ch at (row, col).
func (m *Mat) Set(row, col, ch int, v uint8) error {
	off, err := m.offset(row, col)
	if err != nil {
		return err
	}
	if ch < 0 || ch >= m.channels {
		return fmt.Errorf("%w: channel %d of %d", ErrOutOfBounds, ch, m.channels)
	}
	m.data[off+ch] = v
	return nil
}

// Pixel returns a view of the channels at (row, col). The view's capacity
// ends at the pixel, so appending to it never touches neighbouring pixels.
func (m *Mat) Pixel(row, col int) (Pixel, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return nil, err
	}
	end := off + m.channels
	return Pixel(m.data[off:end:end]), nil
}

// SetPixel overwrites the pixel at (row, col) in place. len(values) must
// equal the channel count.
func (m *Mat) SetPixel(row, col int, values ...uint8) error {
	off, err := m.offset(row, col)
	if err != nil {
		return err
	}
	if len(values) != m.channels {
		return fmt.Errorf("%w: got %d values, want %d", ErrPixelLength, len(values), m.channels)
	}
	copy(m.data[off:off+m.channels], values)
	return nil
}

// Clone returns a deep copy of m.
func (m *Mat) Clone() *Mat {
	c := &Mat{rows: m.rows, cols: m.cols, channels: m.channels, data: make([]uint8, len(m.data))}
	copy(c.data, m.data)
	return c
}

// Equal reports whether m and o have the same shape and contents.
func (m *Mat) Equal(o *Mat) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.rows == o.rows && m.cols == o.cols && m.channels == o.channels &&
		bytes.Equal(m.data, o.data)
}

// sameShape reports a wrapped ErrShapeMismatch unless a and b agree on
// rows, cols and channels.
func sameShape(a, b *Mat) error {
	if a.rows != b.rows || a.cols != b.cols || a.channels != b.channels {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.Shape(), b.Shape())
	}
	return nil
}

// String formats m as nested brackets, one row per line:
//
//	[[255]]
//	[[[157 166 200]
//	  [255 255 255]]]
func (m *Mat) String() string {
	if m.Empty() {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for r := range m.rows {
		if r > 0 {
			if m.channels == 1 {
				sb.WriteString("\n ")
			} else {
				sb.WriteString("\n\n ")
			}
		}
		sb.WriteByte('[')
		for c := range m.cols {
			off := (r*m.cols + c) * m.channels
			if m.channels == 1 {
				if c > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.Itoa(int(m.data[off])))
				continue
			}
			if c > 0 {
				sb.WriteString("\n  ")
			}
			sb.WriteByte('[')
			for ch := range m.channels {
				if ch > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.Itoa(int(m.data[off+ch])))
			}
			sb.WriteByte(']')
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
