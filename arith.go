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
	"github.com/ajroetker/go-highway/hwy"
)

// Add returns the element-wise sum of a and b saturated to [0, 255]:
// 250 + 10 is 255, never the wrapped 4.
func Add(a, b *Mat) (*Mat, error) {
	return elementwise(a, b, hwy.SaturatedAdd[uint8])
}

// Subtract returns a - b element-wise, saturated at 0.
func Subtract(a, b *Mat) (*Mat, error) {
	return elementwise(a, b, hwy.SaturatedSub[uint8])
}

// AbsDiff returns |a - b| element-wise.
func AbsDiff(a, b *Mat) (*Mat, error) {
	return elementwise(a, b, hwy.AbsDiff[uint8])
}

// elementwise applies op across a and b one vector at a time. Both must
// have identical shapes; the result is a new Mat.
func elementwise(a, b *Mat, op func(x, y hwy.Vec[uint8]) hwy.Vec[uint8]) (*Mat, error) {
	if a.Empty() || b.Empty() {
		return nil, ErrEmptyImage
	}
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := newMat(a.rows, a.cols, a.channels)
	lanes := hwy.MaxLanes[uint8]()
	for off := 0; off < len(a.data); off += lanes {
		hwy.Store(op(hwy.Load(a.data[off:]), hwy.Load(b.data[off:])), out.data[off:])
	}
	return out, nil
}
