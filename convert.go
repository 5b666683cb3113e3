package imgarray

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage converts img to a 3-channel BGR Mat. Alpha is dropped after
// un-premultiplying, and grayscale sources are replicated into all three
// channels.
func FromImage(img image.Image) (*Mat, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: bounds %v", ErrEmptyImage, bounds)
	}
	width, height := bounds.Dx(), bounds.Dy()
	m := newMat(height, width, 3)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range height {
			row := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride+(bounds.Min.X-src.Rect.Min.X)*4:]
			dst := m.data[y*width*3 : (y+1)*width*3]
			for x := range width {
				dst[x*3+Blue] = row[x*4+2]
				dst[x*3+Green] = row[x*4+1]
				dst[x*3+Red] = row[x*4]
			}
		}
	case *image.RGBA:
		for y := range height {
			row := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride+(bounds.Min.X-src.Rect.Min.X)*4:]
			dst := m.data[y*width*3 : (y+1)*width*3]
			for x := range width {
				r, g, b, a := row[x*4], row[x*4+1], row[x*4+2], row[x*4+3]
				if a != 0xff {
					c := color.NRGBAModel.Convert(color.RGBA{R: r, G: g, B: b, A: a}).(color.NRGBA)
					r, g, b = c.R, c.G, c.B
				}
				dst[x*3+Blue] = b
				dst[x*3+Green] = g
				dst[x*3+Red] = r
			}
		}
	case *image.Gray:
		for y := range height {
			row := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride+(bounds.Min.X-src.Rect.Min.X):]
			dst := m.data[y*width*3 : (y+1)*width*3]
			for x := range width {
				v := row[x]
				dst[x*3+Blue], dst[x*3+Green], dst[x*3+Red] = v, v, v
			}
		}
	default:
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				m.data[i+Blue] = c.B
				m.data[i+Green] = c.G
				m.data[i+Red] = c.R
				i += 3
			}
		}
	}
	return m, nil
}

// ToImage converts m to an image.Image anchored at the origin. One channel
// yields *image.Gray; three (BGR) or four (BGRA) channels yield
// *image.NRGBA, opaque in the three-channel case.
func (m *Mat) ToImage() (image.Image, error) {
	if m.Empty() {
		return nil, ErrEmptyImage
	}
	rect := image.Rect(0, 0, m.cols, m.rows)
	switch m.channels {
	case 1:
		img := image.NewGray(rect)
		for y := range m.rows {
			copy(img.Pix[y*img.Stride:y*img.Stride+m.cols], m.data[y*m.cols:(y+1)*m.cols])
		}
		return img, nil
	case 3, 4:
		img := image.NewNRGBA(rect)
		n := m.channels
		for y := range m.rows {
			src := m.data[y*m.cols*n : (y+1)*m.cols*n]
			dst := img.Pix[y*img.Stride:]
			for x := range m.cols {
				dst[x*4] = src[x*n+Red]
				dst[x*4+1] = src[x*n+Green]
				dst[x*4+2] = src[x*n+Blue]
				if n == 4 {
					dst[x*4+3] = src[x*n+Alpha]
				} else {
					dst[x*4+3] = 0xff
				}
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: no image type for %d channels", ErrInvalidShape, m.channels)
}
