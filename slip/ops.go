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

import "math"

// This file provides the construction and elementwise operations of the
// vector type. Everything is plain scalar Go: each loop runs over a fixed,
// small lane count with no cross-iteration dependencies, which is the shape
// the compiler's autovectorizer looks for.

// Load creates a vector from a slice. The vector takes its width from the
// slice, so len(src) must be a supported width (a power of two up to
// MaxLanes); any other length panics.
func Load[T Lanes](src []T) Vec[T] {
	checkWidth(len(src))
	var v Vec[T]
	v.n = len(src)
	copy(v.lanes[:v.n], src)
	return v
}

// Set creates a vector of the given width with all lanes set to value.
func Set[T Lanes](value T, width int) Vec[T] {
	checkWidth(width)
	var v Vec[T]
	v.n = width
	for i := 0; i < width; i++ {
		v.lanes[i] = value
	}
	return v
}

// Zero creates a vector of the given width with all lanes set to zero.
func Zero[T Lanes](width int) Vec[T] {
	checkWidth(width)
	var v Vec[T]
	v.n = width
	return v
}

// Iota creates a vector of the given width with lanes set to [0, 1, 2, ...].
func Iota[T Lanes](width int) Vec[T] {
	checkWidth(width)
	var v Vec[T]
	v.n = width
	for i := 0; i < width; i++ {
		v.lanes[i] = T(i)
	}
	return v
}

// Add performs lane-wise addition. Integer overflow wraps, exactly as the
// lane type's native + does.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return out
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = a.lanes[i] - b.lanes[i]
	}
	return out
}

// Mul performs lane-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = a.lanes[i] * b.lanes[i]
	}
	return out
}

// Div performs lane-wise division. Integer division by zero panics and
// float division by zero yields an infinity or NaN, matching the lane
// type's native / operator.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = a.lanes[i] / b.lanes[i]
	}
	return out
}

// Rem performs lane-wise remainder. Go defines no % for floats, so the
// operation exists for integer lanes only.
func Rem[T Integers](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = a.lanes[i] % b.lanes[i]
	}
	return out
}

// Neg negates each lane. Unsigned lanes wrap (two's complement).
func Neg[T Lanes](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = -v.lanes[i]
	}
	return out
}

// Abs returns the absolute value of each lane. Unsigned lanes are returned
// unchanged; the minimum signed value wraps to itself.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		x := v.lanes[i]
		if x < 0 {
			x = -x
		}
		out.lanes[i] = x
	}
	return out
}

// Min returns the lane-wise minimum. For floats a NaN operand propagates,
// as with Go's builtin min.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = min(a.lanes[i], b.lanes[i])
	}
	return out
}

// Max returns the lane-wise maximum. For floats a NaN operand propagates,
// as with Go's builtin max.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = max(a.lanes[i], b.lanes[i])
	}
	return out
}

// And performs lane-wise bitwise AND. Float lanes are combined through
// their bit representation.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = bitwiseAnd(a.lanes[i], b.lanes[i])
	}
	return out
}

// Or performs lane-wise bitwise OR. Float lanes are combined through
// their bit representation.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = bitwiseOr(a.lanes[i], b.lanes[i])
	}
	return out
}

// Xor performs lane-wise bitwise XOR. Float lanes are combined through
// their bit representation.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = bitwiseXor(a.lanes[i], b.lanes[i])
	}
	return out
}

// Not inverts every bit of every lane.
func Not[T Lanes](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = bitwiseNot(v.lanes[i])
	}
	return out
}

// AndNot computes a &^ b lane-wise: the bits of a with b's bits cleared.
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = bitwiseAnd(a.lanes[i], bitwiseNot(b.lanes[i]))
	}
	return out
}

// ShiftLeft shifts every lane left by the same count.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = v.lanes[i] << bits
	}
	return out
}

// ShiftRight shifts every lane right by the same count. Signed lanes shift
// arithmetically, unsigned lanes logically, per Go's native >>.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = v.lanes[i] >> bits
	}
	return out
}

// Shl shifts each lane of a left by the count in the matching lane of b.
func Shl[T Integers](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = a.lanes[i] << b.lanes[i]
	}
	return out
}

// Shr shifts each lane of a right by the count in the matching lane of b.
func Shr[T Integers](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = a.lanes[i] >> b.lanes[i]
	}
	return out
}

// Equal performs lane-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.lanes[i] == b.lanes[i]
	}
	return m
}

// NotEqual performs lane-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.lanes[i] != b.lanes[i]
	}
	return m
}

// LessThan performs lane-wise a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.lanes[i] < b.lanes[i]
	}
	return m
}

// GreaterThan performs lane-wise a > b.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.lanes[i] > b.lanes[i]
	}
	return m
}

// LessEqual performs lane-wise a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.lanes[i] <= b.lanes[i]
	}
	return m
}

// GreaterEqual performs lane-wise a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.lanes[i] >= b.lanes[i]
	}
	return m
}

// IfThenElse selects lanes from a where the mask is active and from b
// where it is not.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	checkShapes(mask.n, a.n)
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		if mask.bits[i] {
			out.lanes[i] = a.lanes[i]
		} else {
			out.lanes[i] = b.lanes[i]
		}
	}
	return out
}

// IfThenElseZero selects lanes from a where the mask is active and zero
// where it is not.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	checkShapes(mask.n, a.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		if mask.bits[i] {
			out.lanes[i] = a.lanes[i]
		}
	}
	return out
}

// IfThenZeroElse selects zero where the mask is active and lanes from b
// where it is not.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	checkShapes(mask.n, b.n)
	out := Vec[T]{n: b.n}
	for i := 0; i < b.n; i++ {
		if !mask.bits[i] {
			out.lanes[i] = b.lanes[i]
		}
	}
	return out
}

// TailMask creates a mask of the given width with the first count lanes
// active. This is the usual way to handle a buffer tail shorter than a
// whole vector; count is clamped to [0, width].
func TailMask[T Lanes](count, width int) Mask[T] {
	checkWidth(width)
	if count < 0 {
		count = 0
	}
	if count > width {
		count = width
	}
	m := Mask[T]{n: width}
	for i := 0; i < count; i++ {
		m.bits[i] = true
	}
	return m
}

// MaskLoad loads a vector from src, reading only lanes where the mask is
// active; inactive lanes and lanes beyond len(src) are zero. Unlike Load,
// src may be shorter than the mask: tolerating short buffers is the point
// of masked loads.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	limit := min(mask.n, len(src))
	for i := 0; i < limit; i++ {
		if mask.bits[i] {
			v.lanes[i] = src[i]
		}
	}
	return v
}

// MaskStore writes lanes of v to dst where the mask is active, leaving
// other positions of dst untouched. Lanes beyond len(dst) are dropped.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	checkShapes(mask.n, v.n)
	limit := min(v.n, len(dst))
	for i := 0; i < limit; i++ {
		if mask.bits[i] {
			dst[i] = v.lanes[i]
		}
	}
}

// MaskAnd combines two masks lane-wise with AND.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.bits[i] && b.bits[i]
	}
	return m
}

// MaskOr combines two masks lane-wise with OR.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.bits[i] || b.bits[i]
	}
	return m
}

// MaskXor combines two masks lane-wise with XOR.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.bits[i] != b.bits[i]
	}
	return m
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	out := Mask[T]{n: m.n}
	for i := 0; i < m.n; i++ {
		out.bits[i] = !m.bits[i]
	}
	return out
}

// MaskAndNot keeps the active lanes of a that are inactive in b.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	checkShapes(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		m.bits[i] = a.bits[i] && !b.bits[i]
	}
	return m
}

// MulAdd computes a*b + c lane-wise through math.FMA. For float64 lanes the
// result is fused (a single rounding). float32 lanes go through the float64
// FMA and are rounded back, which can differ from a native float32 FMA by
// one double rounding; callers must not assume bit-identical results across
// implementations.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	checkShapes(a.n, c.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = T(math.FMA(float64(a.lanes[i]), float64(b.lanes[i]), float64(c.lanes[i])))
	}
	return out
}

// Helper functions for bitwise operations that work with any lane type.
// Floats participate through their IEEE bit patterns.

func bitwiseAnd[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bits := math.Float32bits(av) & math.Float32bits(any(b).(float32))
		return any(math.Float32frombits(bits)).(T)
	case float64:
		bits := math.Float64bits(av) & math.Float64bits(any(b).(float64))
		return any(math.Float64frombits(bits)).(T)
	case int8:
		return any(av & any(b).(int8)).(T)
	case int16:
		return any(av & any(b).(int16)).(T)
	case int32:
		return any(av & any(b).(int32)).(T)
	case int64:
		return any(av & any(b).(int64)).(T)
	case uint8:
		return any(av & any(b).(uint8)).(T)
	case uint16:
		return any(av & any(b).(uint16)).(T)
	case uint32:
		return any(av & any(b).(uint32)).(T)
	case uint64:
		return any(av & any(b).(uint64)).(T)
	default:
		return a
	}
}

func bitwiseOr[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bits := math.Float32bits(av) | math.Float32bits(any(b).(float32))
		return any(math.Float32frombits(bits)).(T)
	case float64:
		bits := math.Float64bits(av) | math.Float64bits(any(b).(float64))
		return any(math.Float64frombits(bits)).(T)
	case int8:
		return any(av | any(b).(int8)).(T)
	case int16:
		return any(av | any(b).(int16)).(T)
	case int32:
		return any(av | any(b).(int32)).(T)
	case int64:
		return any(av | any(b).(int64)).(T)
	case uint8:
		return any(av | any(b).(uint8)).(T)
	case uint16:
		return any(av | any(b).(uint16)).(T)
	case uint32:
		return any(av | any(b).(uint32)).(T)
	case uint64:
		return any(av | any(b).(uint64)).(T)
	default:
		return a
	}
}

func bitwiseXor[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		bits := math.Float32bits(av) ^ math.Float32bits(any(b).(float32))
		return any(math.Float32frombits(bits)).(T)
	case float64:
		bits := math.Float64bits(av) ^ math.Float64bits(any(b).(float64))
		return any(math.Float64frombits(bits)).(T)
	case int8:
		return any(av ^ any(b).(int8)).(T)
	case int16:
		return any(av ^ any(b).(int16)).(T)
	case int32:
		return any(av ^ any(b).(int32)).(T)
	case int64:
		return any(av ^ any(b).(int64)).(T)
	case uint8:
		return any(av ^ any(b).(uint8)).(T)
	case uint16:
		return any(av ^ any(b).(uint16)).(T)
	case uint32:
		return any(av ^ any(b).(uint32)).(T)
	case uint64:
		return any(av ^ any(b).(uint64)).(T)
	default:
		return a
	}
}

func bitwiseNot[T Lanes](a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(^math.Float32bits(av))).(T)
	case float64:
		return any(math.Float64frombits(^math.Float64bits(av))).(T)
	case int8:
		return any(^av).(T)
	case int16:
		return any(^av).(T)
	case int32:
		return any(^av).(T)
	case int64:
		return any(^av).(T)
	case uint8:
		return any(^av).(T)
	case uint16:
		return any(^av).(T)
	case uint32:
		return any(^av).(T)
	case uint64:
		return any(^av).(T)
	default:
		return a
	}
}
