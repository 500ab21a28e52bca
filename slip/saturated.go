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

// This file provides the saturating variants of integer arithmetic and a
// few related clamping operations. The plain Add/Sub wrap like the lane
// type's native operators; these clamp to the type's range instead. They
// are separate named operations, never a mode of the plain ones.

// SaturatedAdd performs lane-wise addition clamped to the lane type's
// range. For example with uint8 lanes, 250 + 10 = 255, not 4.
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = saturatedAdd(a.lanes[i], b.lanes[i])
	}
	return out
}

// SaturatedSub performs lane-wise subtraction clamped to the lane type's
// range. For example with uint8 lanes, 10 - 20 = 0, not 246.
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		out.lanes[i] = saturatedSub(a.lanes[i], b.lanes[i])
	}
	return out
}

// Clamp limits each lane of v to the range [lo, hi] given by the matching
// lanes of lo and hi.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	checkShapes(v.n, lo.n)
	checkShapes(v.n, hi.n)
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		x := v.lanes[i]
		if x < lo.lanes[i] {
			x = lo.lanes[i]
		}
		if x > hi.lanes[i] {
			x = hi.lanes[i]
		}
		out.lanes[i] = x
	}
	return out
}

// AbsDiff computes |a - b| lane-wise as max(a,b) - min(a,b), which cannot
// overflow for unsigned lanes.
func AbsDiff[T Lanes](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		if a.lanes[i] > b.lanes[i] {
			out.lanes[i] = a.lanes[i] - b.lanes[i]
		} else {
			out.lanes[i] = b.lanes[i] - a.lanes[i]
		}
	}
	return out
}

// Avg computes the rounded-up average (a + b + 1) / 2 lane-wise without
// intermediate overflow.
func Avg[T UnsignedInts](a, b Vec[T]) Vec[T] {
	checkShapes(a.n, b.n)
	out := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		// (a | b) - ((a ^ b) >> 1) == ceil((a + b) / 2) without the carry out.
		out.lanes[i] = (a.lanes[i] | b.lanes[i]) - ((a.lanes[i] ^ b.lanes[i]) >> 1)
	}
	return out
}

func saturatedAdd[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		sum := int16(av) + int16(any(b).(int8))
		if sum > math.MaxInt8 {
			sum = math.MaxInt8
		}
		if sum < math.MinInt8 {
			sum = math.MinInt8
		}
		return T(int8(sum))
	case int16:
		sum := int32(av) + int32(any(b).(int16))
		if sum > math.MaxInt16 {
			sum = math.MaxInt16
		}
		if sum < math.MinInt16 {
			sum = math.MinInt16
		}
		return T(int16(sum))
	case int32:
		sum := int64(av) + int64(any(b).(int32))
		if sum > math.MaxInt32 {
			sum = math.MaxInt32
		}
		if sum < math.MinInt32 {
			sum = math.MinInt32
		}
		return T(int32(sum))
	case int64:
		bv := any(b).(int64)
		if bv > 0 && av > math.MaxInt64-bv {
			maxVal := int64(math.MaxInt64)
			return T(maxVal)
		}
		if bv < 0 && av < math.MinInt64-bv {
			minVal := int64(math.MinInt64)
			return T(minVal)
		}
		return T(av + bv)
	case uint8:
		sum := uint16(av) + uint16(any(b).(uint8))
		if sum > math.MaxUint8 {
			sum = math.MaxUint8
		}
		return T(uint8(sum))
	case uint16:
		sum := uint32(av) + uint32(any(b).(uint16))
		if sum > math.MaxUint16 {
			sum = math.MaxUint16
		}
		return T(uint16(sum))
	case uint32:
		sum := uint64(av) + uint64(any(b).(uint32))
		if sum > math.MaxUint32 {
			sum = math.MaxUint32
		}
		return T(uint32(sum))
	case uint64:
		bv := any(b).(uint64)
		if av > math.MaxUint64-bv {
			maxVal := uint64(math.MaxUint64)
			return T(maxVal)
		}
		return T(av + bv)
	default:
		return a + b
	}
}

func saturatedSub[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		diff := int16(av) - int16(any(b).(int8))
		if diff > math.MaxInt8 {
			diff = math.MaxInt8
		}
		if diff < math.MinInt8 {
			diff = math.MinInt8
		}
		return T(int8(diff))
	case int16:
		diff := int32(av) - int32(any(b).(int16))
		if diff > math.MaxInt16 {
			diff = math.MaxInt16
		}
		if diff < math.MinInt16 {
			diff = math.MinInt16
		}
		return T(int16(diff))
	case int32:
		diff := int64(av) - int64(any(b).(int32))
		if diff > math.MaxInt32 {
			diff = math.MaxInt32
		}
		if diff < math.MinInt32 {
			diff = math.MinInt32
		}
		return T(int32(diff))
	case int64:
		bv := any(b).(int64)
		if bv < 0 && av > math.MaxInt64+bv {
			maxVal := int64(math.MaxInt64)
			return T(maxVal)
		}
		if bv > 0 && av < math.MinInt64+bv {
			minVal := int64(math.MinInt64)
			return T(minVal)
		}
		return T(av - bv)
	case uint8:
		bv := any(b).(uint8)
		if bv > av {
			return T(uint8(0))
		}
		return T(av - bv)
	case uint16:
		bv := any(b).(uint16)
		if bv > av {
			return T(uint16(0))
		}
		return T(av - bv)
	case uint32:
		bv := any(b).(uint32)
		if bv > av {
			return T(uint32(0))
		}
		return T(av - bv)
	case uint64:
		bv := any(b).(uint64)
		if bv > av {
			return T(uint64(0))
		}
		return T(av - bv)
	default:
		return a - b
	}
}
