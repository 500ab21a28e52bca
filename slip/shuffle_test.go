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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReverse(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})

	want := []int32{4, 3, 2, 1}
	if diff := cmp.Diff(want, Reverse(v).Data()); diff != "" {
		t.Errorf("Reverse mismatch (-want +got):\n%s", diff)
	}
}

func TestBroadcast(t *testing.T) {
	v := Load([]uint16{1, 2, 3, 4})
	result := Broadcast(v, 2)

	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != 3 {
			t.Errorf("lane %d: got %d, want 3", i, result.Lane(i))
		}
	}

	mustPanic(t, "lane index 4 out of range", func() {
		Broadcast(v, 4)
	})
}

func TestTableLookupLanes(t *testing.T) {
	v := Load([]uint16{1, 2, 3, 4})

	shuffled := TableLookupLanes(v, []int{3, 1, 2, 0})
	if diff := cmp.Diff([]uint16{4, 2, 3, 1}, shuffled.Data()); diff != "" {
		t.Errorf("shuffle mismatch (-want +got):\n%s", diff)
	}

	// Narrowing pick with repeats.
	narrow := TableLookupLanes(v, []int{2, 2})
	if diff := cmp.Diff([]uint16{3, 3}, narrow.Data()); diff != "" {
		t.Errorf("narrowing mismatch (-want +got):\n%s", diff)
	}

	mustPanic(t, "lane index 4 out of range", func() {
		TableLookupLanes(v, []int{0, 1, 2, 4})
	})
	mustPanic(t, "unsupported vector width 3", func() {
		TableLookupLanes(v, []int{0, 1, 2})
	})
}

func TestGatherIndex(t *testing.T) {
	src := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v := GatherIndex(src, Load([]int32{0, 2, 4, 6}))

	if diff := cmp.Diff([]uint16{1, 3, 5, 7}, v.Data()); diff != "" {
		t.Errorf("gather mismatch (-want +got):\n%s", diff)
	}

	mustPanic(t, "gather index 3 out of range", func() {
		GatherIndex([]uint16{1, 2, 3}, Load([]int32{0, 1, 2, 3}))
	})
}

func TestGatherIndexMasked(t *testing.T) {
	src := []uint32{10, 20, 30}
	indices := Load([]int64{1, 99, 2, -5})
	mask := TailMask[uint32](1, 4)
	v := GatherIndexMasked(src, indices, MaskOr(mask, Equal(Load([]uint32{0, 0, 1, 0}), Set(uint32(1), 4))))

	// Lanes 0 and 2 are active; the wild indices of inactive lanes are
	// ignored entirely.
	if diff := cmp.Diff([]uint32{20, 0, 30, 0}, v.Data()); diff != "" {
		t.Errorf("masked gather mismatch (-want +got):\n%s", diff)
	}

	mustPanic(t, "gather index 99 out of range", func() {
		GatherIndexMasked(src, indices, TailMask[uint32](2, 4))
	})
}

func TestScatterIndex(t *testing.T) {
	v := Load([]uint16{1, 2, 3, 4})
	dst := make([]uint16, 10)
	ScatterIndex(v, dst, Load([]int32{1, 3, 5, 7}))

	want := []uint16{0, 1, 0, 2, 0, 3, 0, 4, 0, 0}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("scatter mismatch (-want +got):\n%s", diff)
	}
}

func TestScatterIndexNoPartialWrite(t *testing.T) {
	v := Load([]uint16{1, 2, 3, 4})
	dst := make([]uint16, 10)

	mustPanic(t, "scatter index 15 out of range", func() {
		ScatterIndex(v, dst, Load([]int32{0, 1, 2, 15}))
	})
	for i, x := range dst {
		if x != 0 {
			t.Errorf("dst[%d]: got %d, want 0 (no partial scatter)", i, x)
		}
	}
}

func TestScatterIndexMasked(t *testing.T) {
	v := Load([]uint16{1, 2, 3, 4})
	dst := make([]uint16, 4)
	indices := Load([]int32{0, 99, 2, -1})

	// Lanes 0 and 2 are active; the wild indices of the inactive lanes
	// must neither write nor trip the bounds check.
	mask := Equal(Load([]uint16{1, 0, 1, 0}), Set(uint16(1), 4))
	ScatterIndexMasked(v, dst, indices, mask)

	if diff := cmp.Diff([]uint16{1, 0, 3, 0}, dst); diff != "" {
		t.Errorf("masked scatter mismatch (-want +got):\n%s", diff)
	}

	mustPanic(t, "scatter index 99 out of range", func() {
		ScatterIndexMasked(v, dst, indices, TailMask[uint16](2, 4))
	})
}
