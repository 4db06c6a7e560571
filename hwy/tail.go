// Copyright 2025 go-highway Authors
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

package hwy

// TailMask creates a mask with the first 'count' lanes active, using the
// current register width.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	maxLanes := hwy.MaxLanes[float32]()
//	remaining := len(data) % maxLanes
//	if remaining > 0 {
//	    mask := hwy.TailMask[float32](remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	return FirstN[T](count)
}

// LoadNOr loads the first n elements of src into a register of the current
// width and fills the remaining lanes with fill.
//
// Padding with the maximum value of T lets a partial register take part in
// an ascending sorting network: the padding sorts to the top lanes and is
// dropped again by StoreN.
func LoadNOr[T Lanes](src []T, n int, fill T) Vec[T] {
	return Scalable[T]().LoadNOr(src, n, fill)
}

// StoreN writes the first n lanes of v to dst and leaves the rest of dst
// untouched. It is the masked store counterpart of LoadNOr.
func StoreN[T Lanes](v Vec[T], dst []T, n int) {
	n = max(0, min(n, v.n, len(dst)))
	copy(dst[:n], v.data[:n])
}
