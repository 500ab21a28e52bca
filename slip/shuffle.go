// Copyright 2026 slipstream Authors
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

package slip

import "fmt"

// This file provides shuffle and permutation operations: rearranging lanes
// within a vector, and the indexed gather/scatter forms that move lanes
// between a vector and arbitrary positions of a slice. Gathers rarely
// autovectorize well; prefer Load and the vectorizing adapters for
// contiguous data.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = v.lanes[v.n-1-i]
	}
	return out
}

// Broadcast creates a vector with every lane set to lane `lane` of v.
// It panics if lane is outside [0, NumLanes).
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	if lane < 0 || lane >= v.n {
		panic(fmt.Sprintf("slip: lane index %d out of range for %d-lane vector", lane, v.n))
	}
	out := Vec[T]{n: v.n}
	value := v.lanes[lane]
	for i := 0; i < v.n; i++ {
		out.lanes[i] = value
	}
	return out
}

// TableLookupLanes builds a new vector by picking lanes of v by index:
// lane i of the result is lane indices[i] of v. Indices may repeat and
// len(indices) may differ from v's width (it must still be a supported
// width), so the same operation expresses shuffles, narrowing picks and
// duplications. Panics if any index is out of v's range.
func TableLookupLanes[T Lanes](v Vec[T], indices []int) Vec[T] {
	checkWidth(len(indices))
	out := Vec[T]{n: len(indices)}
	for i, idx := range indices {
		if idx < 0 || idx >= v.n {
			panic(fmt.Sprintf("slip: lane index %d out of range for %d-lane vector", idx, v.n))
		}
		out.lanes[i] = v.lanes[idx]
	}
	return out
}

// GatherIndex loads lanes from non-contiguous positions of src: lane i of
// the result is src[indices.Lane(i)]. Panics if any index is out of the
// bounds of src.
func GatherIndex[T Lanes, I int32 | int64](src []T, indices Vec[I]) Vec[T] {
	out := Vec[T]{n: indices.n}
	for i := 0; i < indices.n; i++ {
		idx := int(indices.lanes[i])
		if idx < 0 || idx >= len(src) {
			panic(fmt.Sprintf("slip: gather index %d out of range for %d-element slice", idx, len(src)))
		}
		out.lanes[i] = src[idx]
	}
	return out
}

// GatherIndexMasked is GatherIndex with lanes disabled by the mask left
// zero. Indices of disabled lanes are ignored entirely, so they may be out
// of bounds; only active lanes are checked.
func GatherIndexMasked[T Lanes, I int32 | int64](src []T, indices Vec[I], mask Mask[T]) Vec[T] {
	checkShapes(indices.n, mask.n)
	out := Vec[T]{n: indices.n}
	for i := 0; i < indices.n; i++ {
		if !mask.bits[i] {
			continue
		}
		idx := int(indices.lanes[i])
		if idx < 0 || idx >= len(src) {
			panic(fmt.Sprintf("slip: gather index %d out of range for %d-element slice", idx, len(src)))
		}
		out.lanes[i] = src[idx]
	}
	return out
}

// ScatterIndex stores lanes of v to non-contiguous positions of dst:
// dst[indices.Lane(i)] = v.Lane(i). All indices are bounds-checked before
// anything is written, so an out-of-range index panics without a partial
// scatter. When several lanes target the same position the highest lane
// wins.
func ScatterIndex[T Lanes, I int32 | int64](v Vec[T], dst []T, indices Vec[I]) {
	checkShapes(v.n, indices.n)
	for i := 0; i < indices.n; i++ {
		idx := int(indices.lanes[i])
		if idx < 0 || idx >= len(dst) {
			panic(fmt.Sprintf("slip: scatter index %d out of range for %d-element slice", idx, len(dst)))
		}
	}
	for i := 0; i < indices.n; i++ {
		dst[indices.lanes[i]] = v.lanes[i]
	}
}

// ScatterIndexMasked is ScatterIndex with lanes disabled by the mask not
// stored anywhere. Only active lanes are bounds-checked.
func ScatterIndexMasked[T Lanes, I int32 | int64](v Vec[T], dst []T, indices Vec[I], mask Mask[T]) {
	checkShapes(v.n, indices.n)
	checkShapes(v.n, mask.n)
	for i := 0; i < indices.n; i++ {
		if !mask.bits[i] {
			continue
		}
		idx := int(indices.lanes[i])
		if idx < 0 || idx >= len(dst) {
			panic(fmt.Sprintf("slip: scatter index %d out of range for %d-element slice", idx, len(dst)))
		}
	}
	for i := 0; i < indices.n; i++ {
		if mask.bits[i] {
			dst[indices.lanes[i]] = v.lanes[i]
		}
	}
}
