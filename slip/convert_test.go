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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertWidening(t *testing.T) {
	v := Load([]int8{-1, 2, -3, 4})
	result := Convert[int64](v)

	if result.NumLanes() != 4 {
		t.Fatalf("NumLanes: got %d, want 4", result.NumLanes())
	}
	want := []int64{-1, 2, -3, 4}
	if diff := cmp.Diff(want, result.Data()); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertFloatToInt(t *testing.T) {
	v := Load([]float32{1.9, -1.9, 2.5, -0.5})
	result := Convert[int32](v)

	want := []int32{1, -1, 2, 0}
	if diff := cmp.Diff(want, result.Data()); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertIntToFloat(t *testing.T) {
	v := Load([]uint8{0, 1, 128, 255})
	result := Convert[float64](v)

	want := []float64{0, 1, 128, 255}
	if diff := cmp.Diff(want, result.Data()); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

func TestRounding(t *testing.T) {
	v := Load([]float64{1.5, -1.5, 2.4, -2.6})

	cases := []struct {
		name string
		got  Vec[float64]
		want []float64
	}{
		{"Round", Round(v), []float64{2, -2, 2, -3}},
		{"Trunc", Trunc(v), []float64{1, -1, 2, -2}},
		{"Ceil", Ceil(v), []float64{2, -1, 3, -2}},
		{"Floor", Floor(v), []float64{1, -2, 2, -3}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, tc.got.Data()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestBitCastSameWidth(t *testing.T) {
	v := Load([]float32{1.5, -2, 0, float32(math.Inf(1))})

	back := BitCastI32ToF32(BitCastF32ToI32(v))
	if diff := cmp.Diff(v.Data(), back.Data()); diff != "" {
		t.Errorf("f32 round trip mismatch (-want +got):\n%s", diff)
	}

	d := Load([]float64{-1.5, math.Pi})
	if diff := cmp.Diff(d.Data(), BitCastI64ToF64(BitCastF64ToI64(d)).Data()); diff != "" {
		t.Errorf("f64 round trip mismatch (-want +got):\n%s", diff)
	}

	negZero := float32(math.Copysign(0, -1))
	bits := BitCastF32ToI32(Set(negZero, 4))
	if uint32(bits.Lane(0)) != 1<<31 {
		t.Errorf("bits of -0: got %#x, want sign bit only", uint32(bits.Lane(0)))
	}
}

func TestBitCastLaneCount(t *testing.T) {
	v := Load([]uint32{0x01020304, 0x05060708, 0, 0xFFFFFFFF})

	wide := BitCastU32ToU64(v)
	if wide.NumLanes() != 2 {
		t.Fatalf("NumLanes: got %d, want 2", wide.NumLanes())
	}
	// Lower-indexed lane supplies the low bits.
	if wide.Lane(0) != 0x05060708_01020304 {
		t.Errorf("lane 0: got %#x, want 0x0506070801020304", wide.Lane(0))
	}
	if wide.Lane(1) != 0xFFFFFFFF_00000000 {
		t.Errorf("lane 1: got %#x, want 0xffffffff00000000", wide.Lane(1))
	}

	back := BitCastU64ToU32(wide)
	if diff := cmp.Diff(v.Data(), back.Data()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBitCastLaneCountLimits(t *testing.T) {
	mustPanic(t, "1-lane vector", func() {
		BitCastU32ToU64(Set(uint32(1), 1))
	})
	mustPanic(t, "unsupported vector width 64", func() {
		BitCastU64ToU32(Set(uint64(1), 32))
	})
}
