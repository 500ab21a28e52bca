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

// This file provides type conversions between vectors. Convert changes the
// numeric type of every lane and keeps the lane count. The BitCast
// functions reinterpret bits instead; the ones that change the lane count
// exist only for shapes with the same total bit width, and only as the
// explicitly named pairs below; there is deliberately no generic
// lane-count-changing conversion.

// Convert converts each lane to type U, keeping the lane count. The
// conversion is the lane types' native one: widening is exact, narrowing
// floats rounds, float-to-int truncates toward zero. Converting a float
// value outside U's range (or NaN) to an integer type yields an
// implementation-defined value, as in Go generally.
func Convert[U, T Lanes](v Vec[T]) Vec[U] {
	out := Vec[U]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = U(v.lanes[i])
	}
	return out
}

// Round rounds each lane to the nearest integer, half away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = T(math.Round(float64(v.lanes[i])))
	}
	return out
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = T(math.Trunc(float64(v.lanes[i])))
	}
	return out
}

// Ceil rounds each lane up (toward positive infinity).
func Ceil[T Floats](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = T(math.Ceil(float64(v.lanes[i])))
	}
	return out
}

// Floor rounds each lane down (toward negative infinity).
func Floor[T Floats](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = T(math.Floor(float64(v.lanes[i])))
	}
	return out
}

// BitCastF32ToI32 reinterprets float32 bits as int32, lane for lane.
func BitCastF32ToI32(v Vec[float32]) Vec[int32] {
	out := Vec[int32]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = int32(math.Float32bits(v.lanes[i]))
	}
	return out
}

// BitCastI32ToF32 reinterprets int32 bits as float32, lane for lane.
func BitCastI32ToF32(v Vec[int32]) Vec[float32] {
	out := Vec[float32]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = math.Float32frombits(uint32(v.lanes[i]))
	}
	return out
}

// BitCastF64ToI64 reinterprets float64 bits as int64, lane for lane.
func BitCastF64ToI64(v Vec[float64]) Vec[int64] {
	out := Vec[int64]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = int64(math.Float64bits(v.lanes[i]))
	}
	return out
}

// BitCastI64ToF64 reinterprets int64 bits as float64, lane for lane.
func BitCastI64ToF64(v Vec[int64]) Vec[float64] {
	out := Vec[float64]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.lanes[i] = math.Float64frombits(uint64(v.lanes[i]))
	}
	return out
}

// BitCastU32ToU64 reinterprets adjacent pairs of uint32 lanes as single
// uint64 lanes, halving the lane count; the total bit width is unchanged.
// The lower-indexed lane supplies the low bits. Panics if the vector has
// only one lane.
func BitCastU32ToU64(v Vec[uint32]) Vec[uint64] {
	if v.n < 2 {
		panic("slip: cannot halve the lanes of a 1-lane vector")
	}
	out := Vec[uint64]{n: v.n / 2}
	for i := 0; i < out.n; i++ {
		out.lanes[i] = uint64(v.lanes[2*i]) | uint64(v.lanes[2*i+1])<<32
	}
	return out
}

// BitCastU64ToU32 reinterprets each uint64 lane as two uint32 lanes,
// doubling the lane count; the total bit width is unchanged. The low bits
// land in the lower-indexed lane. Panics if doubling would exceed MaxLanes.
func BitCastU64ToU32(v Vec[uint64]) Vec[uint32] {
	checkWidth(v.n * 2)
	out := Vec[uint32]{n: v.n * 2}
	for i := 0; i < v.n; i++ {
		out.lanes[2*i] = uint32(v.lanes[i])
		out.lanes[2*i+1] = uint32(v.lanes[i] >> 32)
	}
	return out
}
