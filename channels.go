// Copyright 2025 go-imgarray Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package imgarray

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
)

// Split returns one single-channel Mat per channel of m, in storage order
// (B, G, R for a loaded image). The planes share no data with m.
func Split(m *Mat) ([]*Mat, error) {
	if m.Empty() {
		return nil, ErrEmptyImage
	}
	planes := make([]*Mat, m.channels)
	for i := range planes {
		planes[i] = newMat(m.rows, m.cols, 1)
	}
	deinterleave(m.data, planes)
	return planes, nil
}

// Merge interleaves single-channel planes into one Mat whose channel i is
// planes[i]. All planes must share the same rows and cols.
func Merge(planes ...*Mat) (*Mat, error) {
	if len(planes) == 0 || len(planes) > maxChannels {
		return nil, fmt.Errorf("%w: cannot merge %d planes", ErrInvalidShape, len(planes))
	}
	first := planes[0]
	if first.Empty() {
		return nil, ErrEmptyImage
	}
	for i, p := range planes {
		if p.Empty() {
			return nil, fmt.Errorf("plane %d: %w", i, ErrEmptyImage)
		}
		if p.channels != 1 {
			return nil, fmt.Errorf("%w: plane %d has %d channels", ErrShapeMismatch, i, p.channels)
		}
		if p.rows != first.rows || p.cols != first.cols {
			return nil, fmt.Errorf("%w: plane %d is %v, plane 0 is %v",
				ErrShapeMismatch, i, p.Shape(), first.Shape())
		}
	}
	out := newMat(first.rows, first.cols, len(planes))
	interleave(planes, out.data)
	return out, nil
}

// deinterleave scatters interleaved src into the single-channel planes.
// A short final vector is handled by Load/Store clipping to the slice
// length.
func deinterleave(src []uint8, planes []*Mat) {
	n := len(planes[0].data)
	lanes := hwy.MaxLanes[uint8]()
	switch len(planes) {
	case 1:
		copy(planes[0].data, src)
	case 2:
		p0, p1 := planes[0].data, planes[1].data
		for off := 0; off < n; off += lanes {
			a, b := hwy.LoadInterleaved2(src[off*2:])
			hwy.Store(a, p0[off:])
			hwy.Store(b, p1[off:])
		}
	case 3:
		p0, p1, p2 := planes[0].data, planes[1].data, planes[2].data
		for off := 0; off < n; off += lanes {
			a, b, c := hwy.LoadInterleaved3(src[off*3:])
			hwy.Store(a, p0[off:])
			hwy.Store(b, p1[off:])
			hwy.Store(c, p2[off:])
		}
	case 4:
		p0, p1, p2, p3 := planes[0].data, planes[1].data, planes[2].data, planes[3].data
		for off := 0; off < n; off += lanes {
			a, b, c, d := hwy.LoadInterleaved4(src[off*4:])
			hwy.Store(a, p0[off:])
			hwy.Store(b, p1[off:])
			hwy.Store(c, p2[off:])
			hwy.Store(d, p3[off:])
		}
	}
}

// interleave gathers the single-channel planes into dst.
func interleave(planes []*Mat, dst []uint8) {
	n := len(planes[0].data)
	lanes := hwy.MaxLanes[uint8]()
	switch len(planes) {
	case 1:
		copy(dst, planes[0].data)
	case 2:
		p0, p1 := planes[0].data, planes[1].data
		for off := 0; off < n; off += lanes {
			hwy.StoreInterleaved2(hwy.Load(p0[off:]), hwy.Load(p1[off:]), dst[off*2:])
		}
	case 3:
		p0, p1, p2 := planes[0].data, planes[1].data, planes[2].data
		for off := 0; off < n; off += lanes {
			hwy.StoreInterleaved3(hwy.Load(p0[off:]), hwy.Load(p1[off:]), hwy.Load(p2[off:]), dst[off*3:])
		}
	case 4:
		p0, p1, p2, p3 := planes[0].data, planes[1].data, planes[2].data, planes[3].data
		for off := 0; off < n; off += lanes {
			hwy.StoreInterleaved4(hwy.Load(p0[off:]), hwy.Load(p1[off:]), hwy.Load(p2[off:]), hwy.Load(p3[off:]), dst[off*4:])
		}
	}
}
