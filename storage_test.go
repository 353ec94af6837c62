// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"code.hybscloud.com/callback"
)

// resource counts how often it has been dropped.
type resource struct {
	id    int
	drops *int
}

func (r *resource) Drop() { *r.drops++ }

func TestSlotLifecycle(t *testing.T) {
	r := fresh(t)
	s := callback.SlotOf[int](r)

	if !s.IsEmpty() {
		t.Fatal("new slot must be empty")
	}
	if _, ok := s.Get(); ok {
		t.Fatal("Get on empty slot must fail")
	}

	s.Set(1)
	if v, ok := s.Get(); !ok || v != 1 {
		t.Fatalf("Get = %d, %v; want 1, true", v, ok)
	}

	p, ok := s.GetMut()
	if !ok {
		t.Fatal("GetMut must succeed")
	}
	*p = 2
	if v, _ := s.Get(); v != 2 {
		t.Fatalf("GetMut did not update in place: got %d", v)
	}

	if v, ok := s.Take(); !ok || v != 2 {
		t.Fatalf("Take = %d, %v; want 2, true", v, ok)
	}
	if !s.IsEmpty() {
		t.Fatal("slot must be empty after Take")
	}
	if _, ok := s.Take(); ok {
		t.Fatal("second Take must fail")
	}
	if s.Remove() {
		t.Fatal("Remove on empty slot must report false")
	}
}

func TestSlotDistinctTypes(t *testing.T) {
	r := fresh(t)
	callback.SlotOf[int](r).Set(1)
	callback.SlotOf[int64](r).Set(2)
	callback.SlotOf[string](r).Set("three")

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	if v, _ := callback.SlotOf[int64](r).Get(); v != 2 {
		t.Fatalf("int64 slot = %d, want 2", v)
	}
}

func TestSlotOverwriteDrops(t *testing.T) {
	r := fresh(t)
	drops := 0
	s := callback.SlotOf[resource](r)

	s.Set(resource{id: 1, drops: &drops})
	s.Set(resource{id: 2, drops: &drops})
	if drops != 1 {
		t.Fatalf("overwrite drops = %d, want 1", drops)
	}
	if v, _ := s.Get(); v.id != 2 {
		t.Fatalf("last writer must win: got id %d", v.id)
	}

	// Take transfers ownership: no drop.
	if _, ok := s.Take(); !ok {
		t.Fatal("Take must succeed")
	}
	if drops != 1 {
		t.Fatalf("Take dropped the payload: drops = %d", drops)
	}

	s.Set(resource{id: 3, drops: &drops})
	if !s.Remove() {
		t.Fatal("Remove must report true")
	}
	if drops != 2 {
		t.Fatalf("Remove drops = %d, want 2", drops)
	}
}

func TestSlotTrySet(t *testing.T) {
	r := fresh(t)
	s := callback.SlotOf[string](r)

	if !s.TrySet("a") {
		t.Fatal("TrySet on empty slot must succeed")
	}
	if s.TrySet("b") {
		t.Fatal("TrySet on occupied slot must fail")
	}
	if v, _ := s.Get(); v != "a" {
		t.Fatalf("TrySet overwrote: got %q", v)
	}
}

func TestStrictOverwrite(t *testing.T) {
	r := callback.NewRegistry(callback.WithStrict(true))
	s := callback.SlotOf[int](r)
	s.Set(1)

	err := expectPanic[*callback.OverwriteError](t, func() { s.Set(2) })
	if err.Type != reflect.TypeFor[int]() {
		t.Fatalf("OverwriteError.Type = %v, want int", err.Type)
	}
	if v, _ := s.Get(); v != 1 {
		t.Fatalf("strict overwrite changed the slot: got %d", v)
	}
}

func TestOverwriteLogged(t *testing.T) {
	var buf bytes.Buffer
	r := callback.NewRegistry(callback.WithLogFormat("json", &buf))
	s := callback.SlotOf[int](r)

	s.Set(1)
	if buf.Len() != 0 {
		t.Fatalf("first Set logged at warn level: %s", buf.String())
	}
	s.Set(2)
	if !strings.Contains(buf.String(), "closure overwritten") {
		t.Fatalf("overwrite not logged: %q", buf.String())
	}
}

func TestKeyed(t *testing.T) {
	r := fresh(t)
	k := callback.KeyedOf[string, int](r)

	if !k.IsEmpty() {
		t.Fatal("new keyed set must be empty")
	}

	k.Set("a", 1)
	k.Set("b", 2)
	if k.IsEmptyFor("a") || k.IsEmptyFor("b") || !k.IsEmptyFor("c") {
		t.Fatal("IsEmptyFor mismatch")
	}
	if v, ok := k.Get("b"); !ok || v != 2 {
		t.Fatalf("Get(b) = %d, %v; want 2, true", v, ok)
	}

	p, _ := k.GetMut("a")
	*p = 10
	if v, _ := k.Get("a"); v != 10 {
		t.Fatalf("GetMut did not update in place: got %d", v)
	}

	// Keyed and type-keyed slots of one type are independent.
	callback.SlotOf[int](r).Set(99)
	if v, _ := k.Get("a"); v != 10 {
		t.Fatalf("type-keyed Set leaked into keyed set: got %d", v)
	}

	if v, ok := k.Take("a"); !ok || v != 10 {
		t.Fatalf("Take(a) = %d, %v; want 10, true", v, ok)
	}
	if k.IsEmpty() {
		t.Fatal("set must still hold b")
	}
	if !k.Remove("b") {
		t.Fatal("Remove(b) must report true")
	}
	if !k.IsEmpty() {
		t.Fatal("set must be empty after removing every key")
	}
	if k.Remove("b") {
		t.Fatal("second Remove(b) must report false")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (the type-keyed slot)", r.Len())
	}
}

func TestKeyedOverwriteDrops(t *testing.T) {
	r := fresh(t)
	drops := 0
	k := callback.KeyedOf[int, resource](r)

	k.Set(1, resource{id: 1, drops: &drops})
	k.Set(2, resource{id: 2, drops: &drops})
	k.Set(1, resource{id: 3, drops: &drops})
	if drops != 1 {
		t.Fatalf("drops = %d, want 1", drops)
	}

	strict := callback.NewRegistry(callback.WithStrict(true))
	ks := callback.KeyedOf[int, int](strict)
	ks.Set(7, 1)
	err := expectPanic[*callback.OverwriteError](t, func() { ks.Set(7, 2) })
	if err.Key != 7 {
		t.Fatalf("OverwriteError.Key = %v, want 7", err.Key)
	}
}

func TestRegistryClear(t *testing.T) {
	r := fresh(t)
	drops := 0
	callback.SlotOf[resource](r).Set(resource{drops: &drops})
	callback.KeyedOf[string, resource](r).Set("x", resource{drops: &drops})
	callback.KeyedOf[string, resource](r).Set("y", resource{drops: &drops})

	r.Clear()
	if drops != 3 {
		t.Fatalf("Clear drops = %d, want 3", drops)
	}
	if r.Len() != 0 {
		t.Fatalf("Len after Clear = %d", r.Len())
	}
}

func TestInitTeardown(t *testing.T) {
	first := fresh(t)
	if callback.Default() != first {
		t.Fatal("Default must return the installed registry")
	}

	drops := 0
	callback.SlotOf[resource](first).Set(resource{drops: &drops})
	callback.Teardown()
	if drops != 1 {
		t.Fatalf("Teardown drops = %d, want 1", drops)
	}

	second := callback.Default()
	if second == first {
		t.Fatal("Default after Teardown must create a new registry")
	}
	if second.Len() != 0 {
		t.Fatal("new default registry must be empty")
	}
}
