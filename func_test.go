// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/callback"
)

type relabelSite struct{}

func TestUnsafeSafeRoundTrip(t *testing.T) {
	fresh(t)

	safe := callback.IntoCallback2[callback.Deferred](
		callback.NewFn[relabelSite](func(p callback.Tuple2[int32, int32]) int32 { return p.V1 - p.V2 }))
	unsafe := safe.Unsafe()
	back := unsafe.Safe()

	code := reflect.ValueOf(safe).Pointer()
	if reflect.ValueOf(unsafe).Pointer() != code || reflect.ValueOf(back).Pointer() != code {
		t.Fatal("Unsafe and Safe must preserve the function pointer")
	}
	for _, args := range [][2]int32{{0, 0}, {5, 3}, {-7, 2}} {
		want := safe(args[0], args[1])
		if got := unsafe(args[0], args[1]); got != want {
			t.Fatalf("unsafe(%v) = %d, safe = %d", args, got, want)
		}
		if got := back(args[0], args[1]); got != want {
			t.Fatalf("back(%v) = %d, safe = %d", args, got, want)
		}
	}
}

func TestTrampolineIsStatic(t *testing.T) {
	fresh(t)

	// Re-registration changes the closure, never the trampoline.
	mk := func(k int32) callback.Func1[int32, int32] {
		return callback.IntoCallback1[callback.Deferred](
			callback.NewFn[relabelSite](func(p callback.Tuple1[int32]) int32 { return p.V1 * k }))
	}
	a := mk(2)
	b := mk(3)
	if funcValue(&a) != funcValue(&b) {
		t.Fatal("conversions of one closure type must yield one trampoline")
	}
	if got := a(5); got != 15 {
		t.Fatalf("a(5) = %d, want 15", got)
	}
}

func samePointer(t *testing.T, arity int, a, b any) {
	t.Helper()
	if reflect.ValueOf(a).Pointer() != reflect.ValueOf(b).Pointer() {
		t.Fatalf("arity %d: Unsafe changed the function pointer", arity)
	}
}

func TestUnsafeSafeArities(t *testing.T) {
	fresh(t)

	f0 := callback.IntoCallback0[callback.Deferred](
		callback.NewFn[relabelSite](func(callback.Tuple0) int { return 7 }))
	samePointer(t, 0, f0, f0.Unsafe())
	if f0.Unsafe()() != f0() {
		t.Fatal("arity 0: results differ")
	}

	f5 := callback.IntoCallback5[callback.Deferred](
		callback.NewFn[relabelSite](func(p callback.Tuple5[int, int, int, int, int]) int {
			return p.V1 + p.V2*p.V3 - p.V4 + p.V5
		}))
	samePointer(t, 5, f5, f5.Unsafe())
	if f5.Unsafe()(1, 2, 3, 4, 5) != f5(1, 2, 3, 4, 5) {
		t.Fatal("arity 5: results differ")
	}

	f11 := callback.IntoCallback11[callback.Deferred](
		callback.NewFn[relabelSite](func(p callback.Tuple11[int8, int16, int32, int64, uint8, uint16, uint32, uint64, uintptr, bool, float64]) float64 {
			if !p.V10 {
				return 0
			}
			return float64(p.V1) + float64(p.V2) + float64(p.V3) + float64(p.V4) + float64(p.V5) +
				float64(p.V6) + float64(p.V7) + float64(p.V8) + float64(p.V9) + p.V11
		}))
	u11 := f11.Unsafe()
	samePointer(t, 11, f11, u11)
	if got, want := u11(1, 2, 3, 4, 5, 6, 7, 8, 9, true, 0.5), f11(1, 2, 3, 4, 5, 6, 7, 8, 9, true, 0.5); got != want || got != 45.5 {
		t.Fatalf("arity 11: unsafe %v, safe %v, want 45.5", got, want)
	}
	samePointer(t, 11, u11, u11.Safe())
}
