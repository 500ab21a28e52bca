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

// This file provides the horizontal reductions: operations collapsing all
// lanes of one vector into a single scalar.
//
// All reductions combine lanes in the same fixed order: the vector is
// repeatedly folded in half, combining lane i with lane i+n/2, until one
// lane remains. For a 4-lane vector that is (a0+a2) + (a1+a3). This mirrors
// how an autovectorized loop combines its unrolled partial accumulators,
// which is what lets the compiler keep the reduction itself vertical. For
// float lanes the result is therefore not bit-identical to a sequential
// left-to-right fold, since float addition is not associative; that is a
// documented property of the order, not a bug.
//
// Reductions never allocate and always terminate. Prefer to keep work on
// whole vectors and reduce once at the very end.

// ReduceSum adds all lanes together.
func ReduceSum[T Lanes](v Vec[T]) T {
	w := v.lanes
	for n := v.n; n > 1; n /= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			w[i] += w[i+half]
		}
	}
	return w[0]
}

// ReduceMul multiplies all lanes together.
func ReduceMul[T Lanes](v Vec[T]) T {
	w := v.lanes
	for n := v.n; n > 1; n /= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			w[i] *= w[i+half]
		}
	}
	return w[0]
}

// ReduceMin returns the smallest lane. A float NaN in any lane poisons the
// result, as with Go's builtin min.
func ReduceMin[T Lanes](v Vec[T]) T {
	w := v.lanes
	for n := v.n; n > 1; n /= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			w[i] = min(w[i], w[i+half])
		}
	}
	return w[0]
}

// ReduceMax returns the largest lane. A float NaN in any lane poisons the
// result, as with Go's builtin max.
func ReduceMax[T Lanes](v Vec[T]) T {
	w := v.lanes
	for n := v.n; n > 1; n /= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			w[i] = max(w[i], w[i+half])
		}
	}
	return w[0]
}

// ReduceAnd ANDs all lanes together.
func ReduceAnd[T Integers](v Vec[T]) T {
	w := v.lanes
	for n := v.n; n > 1; n /= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			w[i] &= w[i+half]
		}
	}
	return w[0]
}

// ReduceOr ORs all lanes together.
func ReduceOr[T Integers](v Vec[T]) T {
	w := v.lanes
	for n := v.n; n > 1; n /= 2 {
		half := n / 2
		for i := 0; i < half; i++ {
			w[i] |= w[i+half]
		}
	}
	return w[0]
}
