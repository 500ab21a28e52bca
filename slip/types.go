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

// Package slip provides a portable vector abstraction for writing
// autovectorizer-friendly numeric code.
//
// Instead of exposing hardware intrinsics, slip gives ordinary slice-processing
// loops a shape the compiler can prove safe to turn into SIMD instructions:
// small fixed-width groups of lanes with elementwise arithmetic, and adapters
// that split a slice into a sequence of such groups.
//
// Basic usage:
//
//	import "github.com/vorner/slipstream/slip"
//
//	// Split the data into vectors of four lanes, doubling each element.
//	two := slip.Set(float32(2), 4)
//	for _, v := range slip.VectorizeMut(data, 4) {
//		*v = slip.Mul(*v, two)
//	}
//
// Any speedup is advisory, not contractual: the package only arranges the
// work so that the compiler's optimizer has an easy job, it never guarantees
// a particular instruction sequence.
package slip

import "fmt"

// Floats is the set of floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is the set of signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is the set of unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is the set of all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is the closed set of types usable as vector lanes. The unions are
// exact rather than underlying-type (~) constraints: lane operations are
// resolved statically against this fixed list of primitive kinds.
type Lanes interface {
	Floats | Integers
}

// MaxLanes is the widest supported vector shape. Supported widths are the
// powers of two from 1 to MaxLanes; 32 lanes of 8-bit elements corresponds
// to a 256-bit register.
const MaxLanes = 32

// Vec is a fixed-width group of lanes of a single numeric type.
//
// A Vec is a plain value: copying it duplicates all lanes and it owns no
// external storage. All lane data lives inline, so a whole-vector load or
// store is a single well-defined copy; the vectorizing adapters rely on this
// to decouple the source buffer's alignment from the vector's own.
//
// Vec instances should not be created directly; use Load, Set, Zero or Iota.
type Vec[T Lanes] struct {
	n     int
	lanes [MaxLanes]T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value of lane i.
// It panics if i is outside [0, NumLanes).
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("slip: lane index %d out of range for %d-lane vector", i, v.n))
	}
	return v.lanes[i]
}

// SetLane overwrites lane i with value.
// It panics if i is outside [0, NumLanes).
func (v *Vec[T]) SetLane(i int, value T) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("slip: lane index %d out of range for %d-lane vector", i, v.n))
	}
	v.lanes[i] = value
}

// Data returns the lanes as a slice. The slice is a snapshot: mutating it
// does not affect the vector. Primarily for testing and debugging.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.lanes[:v.n])
	return out
}

// Store writes all lanes to the front of dst.
// It panics if dst is shorter than the vector.
func (v Vec[T]) Store(dst []T) {
	if len(dst) < v.n {
		panic(fmt.Sprintf("slip: storing %d-lane vector into %d-element slice", v.n, len(dst)))
	}
	copy(dst[:v.n], v.lanes[:v.n])
}

// String implements fmt.Stringer.
func (v Vec[T]) String() string {
	return fmt.Sprintf("Vec%v", v.Data())
}

// Mask is the result of a lane-wise comparison. One boolean per lane stands
// in for the all-bits-set / all-bits-clear lanes that hardware comparisons
// produce. Masks combine with MaskAnd, MaskOr, MaskXor, MaskNot and
// MaskAndNot, and select lanes through IfThenElse, MaskLoad and MaskStore.
//
// Mask instances should not be created directly; use a comparison such as
// Equal or LessThan, or TailMask.
type Mask[T Lanes] struct {
	n    int
	bits [MaxLanes]bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// GetBit returns whether lane i is active.
// It panics if i is outside [0, NumLanes).
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("slip: lane index %d out of range for %d-lane mask", i, m.n))
	}
	return m.bits[i]
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for i := 0; i < m.n; i++ {
		if !m.bits[i] {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for i := 0; i < m.n; i++ {
		if m.bits[i] {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for i := 0; i < m.n; i++ {
		if m.bits[i] {
			count++
		}
	}
	return count
}

// checkWidth panics unless width is a supported vector shape: a power of two
// no larger than MaxLanes. Keeping the total size a power of two is what
// preserves the whole-vector load/store invariant.
func checkWidth(width int) {
	if width <= 0 || width > MaxLanes || width&(width-1) != 0 {
		panic(fmt.Sprintf("slip: unsupported vector width %d (want a power of two up to %d)", width, MaxLanes))
	}
}

// checkShapes panics unless both operands have the same lane count.
func checkShapes(a, b int) {
	if a != b {
		panic(fmt.Sprintf("slip: vector shape mismatch (%d vs %d lanes)", a, b))
	}
}
