// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"reflect"
	"testing"
	"unsafe"

	"code.hybscloud.com/callback"
)

type (
	doubleSite  struct{}
	counterSite struct{}
	onceSite    struct{}
	nullarySite struct{}
	wideSite    struct{}
	sumSite     struct{}
	leftSite    struct{}
	rightSite   struct{}
)

func TestFnRepeatable(t *testing.T) {
	fresh(t)

	double := callback.IntoCallback1[callback.Deferred](
		callback.NewFn[doubleSite](func(p callback.Tuple1[int]) int { return p.V1 * 2 }))

	for range 3 {
		if got := double(21); got != 42 {
			t.Fatalf("double(21) = %d, want 42", got)
		}
	}
	if !callback.IsRegistered[callback.Deferred, callback.Fn[doubleSite, callback.Tuple1[int], int]]() {
		t.Fatal("Fn closure must stay registered")
	}
}

func TestUnregisteredInvocation(t *testing.T) {
	fresh(t)

	type F = callback.Fn[doubleSite, callback.Tuple1[int], int]
	tramp := callback.Proxy1[callback.Deferred, callback.Identity[callback.Tuple1[int], int], F, int, callback.Tuple1[int], int, int]{}.FnFn()

	err := expectPanic[*callback.UnregisteredError](t, func() { tramp(1) })
	if err.Type != reflect.TypeFor[F]() {
		t.Fatalf("UnregisteredError.Type = %v, want %v", err.Type, reflect.TypeFor[F]())
	}

	// Registration makes the same trampoline work; Clean breaks it again.
	callback.IntoCallback1[callback.Deferred](callback.NewFn[doubleSite](func(p callback.Tuple1[int]) int { return -p.V1 }))
	if got := tramp(5); got != -5 {
		t.Fatalf("tramp(5) = %d, want -5", got)
	}
	if !callback.Clean[callback.Deferred, F]() {
		t.Fatal("Clean must report true")
	}
	if callback.Clean[callback.Deferred, F]() {
		t.Fatal("second Clean must report false")
	}
	expectPanic[*callback.UnregisteredError](t, func() { tramp(5) })
}

func TestFnMutCounter(t *testing.T) {
	fresh(t)

	n := 0
	next := callback.IntoCallbackMut0[callback.Deferred](
		callback.NewFnMut[counterSite](func(callback.Tuple0) int {
			n++
			return n
		}))

	for want := 1; want <= 5; want++ {
		if got := next(); got != want {
			t.Fatalf("call %d returned %d", want, got)
		}
	}
}

func TestFnMutSelfClean(t *testing.T) {
	fresh(t)

	type F = callback.FnMut[counterSite, callback.Tuple1[int], int]
	calls := 0
	f := callback.IntoCallbackMut1[callback.Deferred](callback.NewFnMut[counterSite](func(p callback.Tuple1[int]) int {
		calls++
		if p.V1 < 0 {
			callback.Clean[callback.Deferred, F]()
		}
		return calls
	}))

	f(1)
	if got := f(-1); got != 2 {
		t.Fatalf("self-cleaning call returned %d, want 2", got)
	}
	expectPanic[*callback.UnregisteredError](t, func() { f(1) })
}

func TestFnOnce(t *testing.T) {
	fresh(t)

	type F = callback.FnOnce[onceSite, callback.Tuple1[string], string]
	once := callback.IntoCallbackOnce1[callback.Deferred](
		callback.NewFnOnce[onceSite](func(p callback.Tuple1[string]) string { return "hello " + p.V1 }))

	if got := once("world"); got != "hello world" {
		t.Fatalf("once = %q", got)
	}
	if callback.IsRegistered[callback.Deferred, F]() {
		t.Fatal("FnOnce closure must be removed by its call")
	}
	expectPanic[*callback.UnregisteredError](t, func() { once("again") })
}

func TestFnOnceReregisters(t *testing.T) {
	fresh(t)

	// The slot is empty during the call, so the closure may register its
	// successor.
	var arm func(int)
	var fired []int
	var once callback.Func1[int, callback.Void]
	arm = func(gen int) {
		once = callback.IntoCallbackOnce1[callback.Deferred](
			callback.NewFnOnce[onceSite](func(p callback.Tuple1[int]) callback.Void {
				fired = append(fired, gen*10+p.V1)
				if gen < 3 {
					arm(gen + 1)
				}
				return callback.Void{}
			}))
	}
	arm(1)

	for i := range 3 {
		once(i)
	}
	if want := []int{10, 21, 32}; !reflect.DeepEqual(fired, want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
	expectPanic[*callback.UnregisteredError](t, func() { once(0) })
}

func TestWeakerTiers(t *testing.T) {
	fresh(t)

	// An Fn satisfies every tier, an FnMut the mut and once tiers.
	fn := callback.NewFn[sumSite](func(p callback.Tuple2[int, int]) int { return p.V1 + p.V2 })
	if got := callback.IntoCallbackOnce2[callback.Deferred](fn)(2, 3); got != 5 {
		t.Fatalf("Fn as once = %d", got)
	}
	if got := callback.IntoCallbackMut2[callback.Deferred](fn)(2, 3); got != 5 {
		t.Fatalf("Fn as mut = %d", got)
	}

	mut := callback.NewFnMut[sumSite](func(p callback.Tuple2[int, int]) int { return p.V1 * p.V2 })
	if got := callback.IntoCallbackOnce2[callback.Deferred](mut)(2, 3); got != 6 {
		t.Fatalf("FnMut as once = %d", got)
	}
}

func TestArities(t *testing.T) {
	fresh(t)

	called := false
	nullary := callback.IntoCallback0[callback.Deferred](
		callback.NewFn[nullarySite](func(callback.Tuple0) callback.Void {
			called = true
			return callback.Void{}
		}))
	nullary()
	if !called {
		t.Fatal("nullary trampoline did not call its closure")
	}

	sum3 := callback.IntoCallback3[callback.Deferred](
		callback.NewFn[sumSite](func(p callback.Tuple3[int8, int16, int32]) int64 {
			return int64(p.V1) + int64(p.V2) + int64(p.V3)
		}))
	if got := sum3(1, 2, 3); got != 6 {
		t.Fatalf("sum3 = %d", got)
	}

	type T11 = callback.Tuple11[int, int, int, int, int, int, int, int, int, int, int]
	sum11 := callback.IntoCallbackMut11[callback.Deferred](
		callback.NewFnMut[wideSite](func(p T11) int {
			total := 0
			for i := range p.Arity() {
				total += p.Field(i).(int)
			}
			return total
		}))
	if got := sum11(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11); got != 66 {
		t.Fatalf("sum11 = %d, want 66", got)
	}
	if got := sum11(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1); got != 1 {
		t.Fatalf("sum11 last = %d, want 1", got)
	}
}

func TestSiteTagsSeparateSlots(t *testing.T) {
	fresh(t)

	type pause struct{}
	type resume struct{}
	var log []string
	onPause := callback.IntoCallbackMut0[callback.Deferred](callback.NewFnMut[pause](func(callback.Tuple0) callback.Void {
		log = append(log, "pause")
		return callback.Void{}
	}))
	onResume := callback.IntoCallbackMut0[callback.Deferred](callback.NewFnMut[resume](func(callback.Tuple0) callback.Void {
		log = append(log, "resume")
		return callback.Void{}
	}))

	onResume()
	onPause()
	if want := []string{"resume", "pause"}; !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	if n := callback.Default().Len(); n != 2 {
		t.Fatalf("Len = %d, want 2", n)
	}
}

func TestSameTypeOverwrites(t *testing.T) {
	fresh(t)

	mk := func(v int) callback.Func0[int] {
		return callback.IntoCallback0[callback.Deferred](callback.NewFn[counterSite](func(callback.Tuple0) int { return v }))
	}
	first := mk(1)
	second := mk(2)

	// Both trampolines reach the single slot, which the last conversion wrote.
	if first() != 2 || second() != 2 {
		t.Fatalf("got %d, %d; want 2, 2", first(), second())
	}
	if n := callback.Default().Len(); n != 1 {
		t.Fatalf("Len = %d, want 1", n)
	}
}

func TestTupleFieldOutOfRange(t *testing.T) {
	expectPanic[string](t, func() { callback.Tuple2[int, int]{}.Field(2) })
	expectPanic[string](t, func() { callback.Tuple0{}.Field(0) })
}

func TestFnOncePushes(t *testing.T) {
	fresh(t)

	type F = callback.FnOnce[onceSite, callback.Tuple0, callback.Void]
	var list []int
	push := callback.IntoCallbackOnce0[callback.Deferred](
		callback.NewFnOnce[onceSite](func(callback.Tuple0) callback.Void {
			list = append(list, 1)
			return callback.Void{}
		}))

	push()
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if callback.IsRegistered[callback.Deferred, F]() {
		t.Fatal("slot must be empty after the call")
	}
	expectPanic[*callback.UnregisteredError](t, func() { push() })
	if len(list) != 1 {
		t.Fatalf("failed call ran the closure: len(list) = %d", len(list))
	}
}

// funcValue returns the function value word of *f, which identifies a
// trampoline even where instantiations share machine code.
func funcValue[F any](f *F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(f))
}

func TestTrampolinePerSite(t *testing.T) {
	fresh(t)

	left := callback.IntoCallback1[callback.Deferred](
		callback.NewFn[leftSite](func(p callback.Tuple1[int32]) int32 { return 100 + p.V1 }))
	right := callback.IntoCallback1[callback.Deferred](
		callback.NewFn[rightSite](func(p callback.Tuple1[int32]) int32 { return 200 + p.V1 }))
	if funcValue(&left) == funcValue(&right) {
		t.Fatal("closures of distinct sites must get distinct trampolines")
	}

	again := callback.IntoCallback1[callback.Deferred](
		callback.NewFn[leftSite](func(p callback.Tuple1[int32]) int32 { return 300 + p.V1 }))
	if funcValue(&left) != funcValue(&again) {
		t.Fatal("re-registration must hand out the same trampoline")
	}
	mut := callback.IntoCallbackMut1[callback.Deferred](
		callback.NewFn[leftSite](func(p callback.Tuple1[int32]) int32 { return 400 + p.V1 }))
	if funcValue(&mut) == funcValue(&left) {
		t.Fatal("flavours of one closure type must get distinct trampolines")
	}

	if got := right(1); got != 201 {
		t.Fatalf("right(1) = %d, want 201", got)
	}
	if got := left(1); got != 401 {
		t.Fatalf("left(1) = %d, want 401", got)
	}
}
