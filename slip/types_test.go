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
	"strings"
	"testing"
)

// mustPanic runs fn and fails the test unless it panics with a message
// containing want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Errorf("panic %v, want message containing %q", r, want)
		}
	}()
	fn()
}

func TestLoadRoundTrip(t *testing.T) {
	data := []int16{1, 2, 3, 4}
	v := Load(data)

	if v.NumLanes() != 4 {
		t.Fatalf("NumLanes: got %d, want 4", v.NumLanes())
	}
	for i := range data {
		if v.Lane(i) != data[i] {
			t.Errorf("lane %d: got %d, want %d", i, v.Lane(i), data[i])
		}
	}
}

func TestLoadCopies(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	v := Load(data)
	data[0] = 99

	if v.Lane(0) != 1 {
		t.Errorf("lane 0: got %v, want 1 (vector must not alias the slice)", v.Lane(0))
	}
}

func TestLoadWrongSize(t *testing.T) {
	mustPanic(t, "unsupported vector width 3", func() {
		Load([]int16{1, 2, 3})
	})
	mustPanic(t, "unsupported vector width 0", func() {
		Load([]int16{})
	})
	mustPanic(t, "unsupported vector width 64", func() {
		Load(make([]int16, 64))
	})
}

func TestVecIsValue(t *testing.T) {
	a := Load([]uint32{1, 2, 3, 4})
	b := a
	b.SetLane(0, 42)

	if a.Lane(0) != 1 {
		t.Errorf("lane 0 of original: got %d, want 1 (copies must not share lanes)", a.Lane(0))
	}
	if b.Lane(0) != 42 {
		t.Errorf("lane 0 of copy: got %d, want 42", b.Lane(0))
	}
}

func TestLaneOutOfRange(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	mustPanic(t, "lane index 4 out of range", func() {
		v.Lane(4)
	})
	mustPanic(t, "lane index -1 out of range", func() {
		v.Lane(-1)
	})
	mustPanic(t, "lane index 4 out of range", func() {
		v.SetLane(4, 0)
	})
}

func TestStore(t *testing.T) {
	v := Load([]uint8{5, 6, 7, 8})
	dst := make([]uint8, 6)
	v.Store(dst)

	want := []uint8{5, 6, 7, 8, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d]: got %d, want %d", i, dst[i], want[i])
		}
	}

	mustPanic(t, "storing 4-lane vector", func() {
		v.Store(make([]uint8, 3))
	})
}

func TestDataSnapshot(t *testing.T) {
	v := Load([]int64{1, 2})
	d := v.Data()
	d[0] = 42

	if v.Lane(0) != 1 {
		t.Errorf("lane 0: got %d, want 1 (Data must be a snapshot)", v.Lane(0))
	}
}

func TestMaskQueries(t *testing.T) {
	a := Load([]int32{1, 3, 5, 7})
	b := Load([]int32{2, 3, 4, 5})

	m := LessThan(a, b)
	if m.NumLanes() != 4 {
		t.Fatalf("NumLanes: got %d, want 4", m.NumLanes())
	}
	wantBits := []bool{true, false, false, false}
	for i, want := range wantBits {
		if m.GetBit(i) != want {
			t.Errorf("bit %d: got %v, want %v", i, m.GetBit(i), want)
		}
	}
	if m.AllTrue() {
		t.Error("AllTrue: got true, want false")
	}
	if !m.AnyTrue() {
		t.Error("AnyTrue: got false, want true")
	}
	if got := m.CountTrue(); got != 1 {
		t.Errorf("CountTrue: got %d, want 1", got)
	}

	mustPanic(t, "lane index 4 out of range", func() {
		m.GetBit(4)
	})
}
