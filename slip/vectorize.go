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

import "iter"

// This file provides the adapters that split a contiguous scalar slice into
// a sequence of vectors. The sequences are lazy, finite and restartable:
// ranging over one again starts over from the first chunk.
//
// Every yielded vector is a fresh value copy of its chunk, so the source
// buffer needs no particular alignment or padding; the spill into the
// vector value is the aligned load.
//
// All adapters yield the chunk index alongside the vector. Multiplying it
// by the width gives the chunk's position in the buffer, which is how
// several slices are walked in tandem:
//
//	for k, a := range slip.Vectorize(left, 4) {
//		b := slip.Load(right[k*4 : k*4+4])
//		acc = slip.MulAdd(a, b, acc)
//	}

// Vectorize yields len(buf)/width full vectors covering the front of buf in
// increasing index order. A trailing remainder shorter than width is
// silently skipped; choosing this adapter over VectorizePad is opting into
// that truncation. It never reads past the end of buf.
func Vectorize[T Lanes](buf []T, width int) iter.Seq2[int, Vec[T]] {
	checkWidth(width)
	full := len(buf) / width
	return func(yield func(int, Vec[T]) bool) {
		for k := 0; k < full; k++ {
			var v Vec[T]
			v.n = width
			copy(v.lanes[:width], buf[k*width:])
			if !yield(k, v) {
				return
			}
		}
	}
}

// VectorizePad yields ceil(len(buf)/width) vectors, taking the width from
// pad. The leading vectors are full; if a remainder exists, one final
// vector carries the tail scalars in its low lanes and pad's lanes in the
// unused high lanes. Splat a scalar to pad with a uniform fill:
//
//	slip.VectorizePad(buf, slip.Zero[float32](8))
//
// This guarantees total coverage of buf at the cost of one synthetic
// final vector.
func VectorizePad[T Lanes](buf []T, pad Vec[T]) iter.Seq2[int, Vec[T]] {
	width := pad.n
	checkWidth(width)
	full := len(buf) / width
	rest := len(buf) % width
	return func(yield func(int, Vec[T]) bool) {
		for k := 0; k < full; k++ {
			var v Vec[T]
			v.n = width
			copy(v.lanes[:width], buf[k*width:])
			if !yield(k, v) {
				return
			}
		}
		if rest > 0 {
			v := pad
			copy(v.lanes[:rest], buf[full*width:])
			yield(full, v)
		}
	}
}

// VectorizeMut is the writable counterpart of Vectorize. When the loop body
// returns, the yielded vector (modified or not) is stored back into the
// chunk's positions in buf. The write-back also happens when the body
// breaks out of the loop. The pointer is reused between iterations and must
// not be retained past the body.
//
//	two := slip.Set(float32(2), 4)
//	for _, v := range slip.VectorizeMut(data, 4) {
//		*v = slip.Mul(*v, two)
//	}
//
// A trailing remainder shorter than width is neither yielded nor written.
func VectorizeMut[T Lanes](buf []T, width int) iter.Seq2[int, *Vec[T]] {
	checkWidth(width)
	full := len(buf) / width
	return func(yield func(int, *Vec[T]) bool) {
		var v Vec[T]
		v.n = width
		for k := 0; k < full; k++ {
			chunk := buf[k*width : (k+1)*width]
			copy(v.lanes[:width], chunk)
			more := yield(k, &v)
			copy(chunk, v.lanes[:width])
			if !more {
				return
			}
		}
	}
}

// VectorizePadMut is the writable counterpart of VectorizePad. The final
// padded vector, if any, writes back only the lanes that came from buf;
// the fill lanes are discarded on write-back.
func VectorizePadMut[T Lanes](buf []T, pad Vec[T]) iter.Seq2[int, *Vec[T]] {
	width := pad.n
	checkWidth(width)
	full := len(buf) / width
	rest := len(buf) % width
	return func(yield func(int, *Vec[T]) bool) {
		var v Vec[T]
		for k := 0; k < full; k++ {
			chunk := buf[k*width : (k+1)*width]
			v.n = width
			copy(v.lanes[:width], chunk)
			more := yield(k, &v)
			copy(chunk, v.lanes[:width])
			if !more {
				return
			}
		}
		if rest > 0 {
			tail := buf[full*width:]
			v = pad
			copy(v.lanes[:rest], tail)
			yield(full, &v)
			copy(tail, v.lanes[:rest])
		}
	}
}
