// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"strings"
	"testing"
	"unsafe"

	"code.hybscloud.com/callback"
)

type (
	firstSite  struct{}
	secondSite struct{}
	lastSite   struct{}
	menuSite   struct{}
)

func TestPinnedRelease(t *testing.T) {
	p := callback.Pin(42)
	if *p.Value() != 42 {
		t.Fatalf("Value = %d, want 42", *p.Value())
	}
	if unsafe.Pointer(p.Ptr()) != unsafe.Pointer(p.Value()) {
		t.Fatal("Ptr must address the boxed value")
	}
	if p.Released() {
		t.Fatal("new box must not be released")
	}

	p.Release()
	if !p.Released() {
		t.Fatal("box must report released")
	}

	defer func() {
		r := recover()
		if s, ok := r.(string); !ok || s != "callback: user data released twice" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	p.Release()
}

func TestPinnedTryRelease(t *testing.T) {
	p := callback.Pin("x")
	if !p.TryRelease() {
		t.Fatal("first TryRelease must succeed")
	}
	if p.TryRelease() {
		t.Fatal("second TryRelease must fail")
	}
}

func TestPinnedZeroSize(t *testing.T) {
	a := callback.Pin(struct{}{})
	b := callback.Pin(struct{}{})
	defer a.Release()
	defer b.Release()
	if a.Ptr() == b.Ptr() {
		t.Fatal("boxes of zero-size values must have distinct addresses")
	}
}

func TestUserDataFirst(t *testing.T) {
	fresh(t)

	uf := callback.IntoCallbackMutWith2[callback.Deferred, callback.First](
		callback.NewFnMut[firstSite](func(b callback.Bound[callback.Tuple2[callback.Opaque, int], int]) int {
			*b.Data += b.Args.V2
			return *b.Data
		}), 100)

	if uf.Index(2) != 0 {
		t.Fatalf("Index = %d, want 0", uf.Index(2))
	}
	if got := uf.Func(uf.Data, 1); got != 101 {
		t.Fatalf("got %d, want 101", got)
	}
	if got := uf.Func(uf.Data, 2); got != 103 {
		t.Fatalf("got %d, want 103", got)
	}
}

func TestUserDataSecond(t *testing.T) {
	fresh(t)

	uf := callback.IntoCallbackWith3[callback.Deferred, callback.Second](
		callback.NewFn[secondSite](func(b callback.Bound[callback.Tuple3[int, callback.Opaque, int], string]) string {
			return strings.Repeat(*b.Data, b.Args.V1+b.Args.V3)
		}), "ab")

	if uf.Index(3) != 1 {
		t.Fatalf("Index = %d, want 1", uf.Index(3))
	}
	if got := uf.Func(1, uf.Data, 2); got != "ababab" {
		t.Fatalf("got %q", got)
	}
}

func TestUserDataLast(t *testing.T) {
	fresh(t)

	type F = callback.FnOnce[lastSite, callback.Bound[callback.Tuple2[int, callback.Opaque], []int], int]
	uf := callback.IntoCallbackOnceWith2[callback.Deferred, callback.Last](
		callback.NewFnOnce[lastSite](func(b callback.Bound[callback.Tuple2[int, callback.Opaque], []int]) int {
			return (*b.Data)[b.Args.V1]
		}), []int{10, 20, 30})

	if uf.Index(2) != 1 {
		t.Fatalf("Index = %d, want 1", uf.Index(2))
	}
	if !callback.IsRegisteredWith[callback.Deferred, F, []int](uf.Data) {
		t.Fatal("closure must be registered before the call")
	}
	if got := uf.Func(2, uf.Data); got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
	if callback.IsRegisteredWith[callback.Deferred, F, []int](uf.Data) {
		t.Fatal("call-once closure must be removed by its call")
	}
	expectPanic[*callback.UnregisteredError](t, func() { uf.Func(0, uf.Data) })
}

func TestUserDataAdapted(t *testing.T) {
	fresh(t)

	uf := callback.AdaptCallbackWith2[callback.Deferred, callback.First, dropOpaque, callback.Opaque, int32, int32](
		callback.NewFn[firstSite](func(b callback.Bound[int32, int32]) int32 { return b.Args * *b.Data }), 3)
	if got := uf.Func(uf.Data, 5); got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
}

// dropOpaque hands the closure only the payload parameter.
type dropOpaque struct{ callback.SameResult[int32] }

func (dropOpaque) Convert(p callback.Tuple2[callback.Opaque, int32]) int32 { return p.V2 }

func TestUserDataMismatch(t *testing.T) {
	fresh(t)

	uf := callback.IntoCallbackWith1[callback.Deferred, callback.First](
		callback.NewFn[firstSite](func(b callback.Bound[callback.Tuple1[callback.Opaque], int]) int { return *b.Data }), 1)

	other := callback.Pin(1)
	defer other.Release()
	expectPanic[*callback.UserDataError](t, func() { uf.Func(other.Ptr()) })

	if got := uf.Func(uf.Data); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestUserDataBadPosition(t *testing.T) {
	fresh(t)

	f := callback.NewFn[secondSite](func(callback.Bound[callback.Tuple1[callback.Opaque], int]) int { return 0 })
	expectPanic[*callback.UserDataError](t, func() {
		callback.IntoCallbackWith1[callback.Deferred, callback.Second](f, 1)
	})

	g := callback.NewFn[firstSite](func(callback.Bound[callback.Tuple2[int, callback.Opaque], int]) int { return 0 })
	err := expectPanic[*callback.UserDataError](t, func() {
		callback.IntoCallbackWith2[callback.Deferred, callback.First](g, 1)
	})
	if !strings.Contains(err.Error(), "not callback.Opaque") {
		t.Fatalf("unexpected reason: %v", err)
	}

	if n := callback.Default().Len(); n != 0 {
		t.Fatalf("rejected registrations must not be stored: Len = %d", n)
	}
}

func TestUserDataUniqueCoexist(t *testing.T) {
	fresh(t)

	type F = callback.FnMut[menuSite, callback.Bound[callback.Tuple1[callback.Opaque], string], string]
	mk := func(title string) callback.UserFunc[callback.First, callback.Func1[callback.Opaque, string]] {
		return callback.IntoCallbackMutWith1[callback.Unique, callback.First](
			callback.NewFnMut[menuSite](func(b callback.Bound[callback.Tuple1[callback.Opaque], string]) string {
				return *b.Data
			}), title)
	}

	a := mk("volume")
	b := mk("speed")
	if a.Data == b.Data {
		t.Fatal("user data boxes must be distinct")
	}
	if got := a.Func(a.Data); got != "volume" {
		t.Fatalf("a = %q", got)
	}
	if got := b.Func(b.Data); got != "speed" {
		t.Fatalf("b = %q", got)
	}

	if !callback.CleanWith[callback.Unique, F, string](a.Data) {
		t.Fatal("CleanWith(a) must report true")
	}
	expectPanic[*callback.UnregisteredError](t, func() { a.Func(a.Data) })
	if got := b.Func(b.Data); got != "speed" {
		t.Fatalf("b after removing a = %q", got)
	}
}

func TestUserDataDeferredReplace(t *testing.T) {
	fresh(t)

	mk := func(v int) callback.UserFunc[callback.Last, callback.Func1[callback.Opaque, int]] {
		return callback.IntoCallbackWith1[callback.Deferred, callback.Last](
			callback.NewFn[lastSite](func(b callback.Bound[callback.Tuple1[callback.Opaque], int]) int { return *b.Data }), v)
	}

	first := mk(1)
	second := mk(2)
	if got := second.Func(second.Data); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	// The first registration was overwritten; its pointer is foreign now.
	expectPanic[*callback.UserDataError](t, func() { first.Func(first.Data) })
	if n := callback.Default().Len(); n != 1 {
		t.Fatalf("Len = %d, want 1", n)
	}
}
