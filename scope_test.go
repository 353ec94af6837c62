// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/callback"
)

func TestReservedScopes(t *testing.T) {
	expectPanic[string](t, func() { callback.Immediate{}.Store() })
	expectPanic[string](t, func() { callback.Async{}.Store() })

	type F = callback.Fn[nullarySite, callback.Tuple0, int]
	expectPanic[string](t, func() {
		callback.IntoCallback0[callback.Immediate](callback.NewFn[nullarySite](func(callback.Tuple0) int { return 0 }))
	})
	expectPanic[string](t, func() { callback.IsRegistered[callback.Async, F]() })
}

// sandbox is a custom scope over a private registry.
type sandbox struct{}

var sandboxRegistry = callback.NewRegistry()

func (sandbox) Store() callback.Store { return callback.TypeStore(sandboxRegistry) }

func TestCustomScope(t *testing.T) {
	fresh(t)
	t.Cleanup(sandboxRegistry.Clear)

	f := callback.IntoCallback1[sandbox](callback.NewFn[doubleSite](func(p callback.Tuple1[int]) int { return p.V1 + 1 }))
	if got := f(1); got != 2 {
		t.Fatalf("f(1) = %d, want 2", got)
	}
	if sandboxRegistry.Len() != 1 {
		t.Fatalf("sandbox Len = %d, want 1", sandboxRegistry.Len())
	}
	if callback.Default().Len() != 0 {
		t.Fatal("custom scope leaked into the default registry")
	}

	// Same closure type, different scope: separate slots.
	type F = callback.Fn[doubleSite, callback.Tuple1[int], int]
	if callback.IsRegistered[callback.Deferred, F]() {
		t.Fatal("closure must not be registered in the default scope")
	}
	if !callback.IsRegistered[sandbox, F]() {
		t.Fatal("closure must be registered in the sandbox scope")
	}
}

func TestStores(t *testing.T) {
	r := fresh(t)
	ts := callback.TypeStore(r)
	ks := callback.KeyStore(r)

	type T = struct{ n int }
	typ := reflect.TypeFor[T]()
	a, b := callback.Pin(0), callback.Pin(0)
	defer a.Release()
	defer b.Release()

	ts.Save(typ, a.Ptr(), &T{1})
	if _, ok := ts.Load(typ, b.Ptr()); !ok {
		t.Fatal("type store must ignore user data")
	}

	ks.Save(typ, a.Ptr(), &T{2})
	ks.Save(typ, b.Ptr(), &T{3})
	if v, ok := ks.Load(typ, b.Ptr()); !ok || v.(*T).n != 3 {
		t.Fatalf("key store Load(b) = %v, %v", v, ok)
	}
	if v, ok := ks.Take(typ, a.Ptr()); !ok || v.(*T).n != 2 {
		t.Fatalf("key store Take(a) = %v, %v", v, ok)
	}
	if !ks.Delete(typ, b.Ptr()) || ks.Delete(typ, b.Ptr()) {
		t.Fatal("key store Delete must succeed once")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}
