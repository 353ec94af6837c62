// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/callback"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

type propSite struct{}

// TestPropertySlotModel: a slot behaves like an optional value under any
// sequence of Set, Take, Remove and GetMut.
func TestPropertySlotModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	r := fresh(t)
	s := callback.SlotOf[int](r)

	var (
		model   int
		present bool
	)
	for i := range propertyN {
		switch rng.IntN(4) {
		case 0:
			v := randInt(rng)
			s.Set(v)
			model, present = v, true
		case 1:
			v, ok := s.Take()
			if ok != present || (ok && v != model) {
				t.Fatalf("step %d: Take = %d, %v; model %d, %v", i, v, ok, model, present)
			}
			present = false
		case 2:
			if got := s.Remove(); got != present {
				t.Fatalf("step %d: Remove = %v, model %v", i, got, present)
			}
			present = false
		case 3:
			p, ok := s.GetMut()
			if ok != present {
				t.Fatalf("step %d: GetMut ok = %v, model %v", i, ok, present)
			}
			if ok {
				*p++
				model++
			}
		}
		if s.IsEmpty() == present {
			t.Fatalf("step %d: IsEmpty = %v, model present %v", i, s.IsEmpty(), present)
		}
	}
}

// TestPropertyKeyedModel: a keyed set behaves like a map.
func TestPropertyKeyedModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	r := fresh(t)
	k := callback.KeyedOf[int, int](r)
	model := make(map[int]int)

	for i := range propertyN {
		key := rng.IntN(8)
		switch rng.IntN(3) {
		case 0:
			v := randInt(rng)
			k.Set(key, v)
			model[key] = v
		case 1:
			v, ok := k.Take(key)
			mv, mok := model[key]
			if ok != mok || v != mv {
				t.Fatalf("step %d: Take(%d) = %d, %v; model %d, %v", i, key, v, ok, mv, mok)
			}
			delete(model, key)
		case 2:
			_, mok := model[key]
			if got := k.Remove(key); got != mok {
				t.Fatalf("step %d: Remove(%d) = %v, model %v", i, key, got, mok)
			}
			delete(model, key)
		}
		if k.IsEmpty() != (len(model) == 0) {
			t.Fatalf("step %d: IsEmpty = %v, model len %d", i, k.IsEmpty(), len(model))
		}
		if r.Len() != len(model) {
			t.Fatalf("step %d: Len = %d, model len %d", i, r.Len(), len(model))
		}
	}
}

// TestPropertyMutAccumulates: a mutating trampoline observes every call in
// order, exactly as calling the closure directly would.
func TestPropertyMutAccumulates(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	fresh(t)

	sum := 0
	f := callback.IntoCallbackMut1[callback.Deferred](
		callback.NewFnMut[propSite](func(p callback.Tuple1[int]) int {
			sum += p.V1
			return sum
		}))

	want := 0
	for range propertyN {
		v := randInt(rng)
		want += v
		if got := f(v); got != want {
			t.Fatalf("running sum = %d, want %d", got, want)
		}
	}
}

// TestPropertyOnceExactlyOnce: every call-once registration runs exactly once
// and with the arguments of its first invocation.
func TestPropertyOnceExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	fresh(t)

	runs := 0
	for range propertyN {
		a, b := randInt(rng), randInt(rng)
		f := callback.IntoCallbackOnce2[callback.Deferred](
			callback.NewFnOnce[propSite](func(p callback.Tuple2[int, int]) int {
				runs++
				return p.V1*3 + p.V2
			}))
		if got := f(a, b); got != a*3+b {
			t.Fatalf("f(%d, %d) = %d", a, b, got)
		}
	}
	if runs != propertyN {
		t.Fatalf("runs = %d, want %d", runs, propertyN)
	}
}
