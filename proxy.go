// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "reflect"

// Trampoline bodies.
//
// Every trampoline packs its wire parameters into a tuple P and calls one of
// the generic bodies below. The per-arity trampolines in proxy_gen.go are
// named generic functions that capture no closure state, so they can cross
// into C as plain function pointers. All state lives in the scope's store,
// keyed by the closure type F.
//
// Instantiations are compiled per GC shape: trampolines of distinct closure
// types may share machine code and differ only in the dictionary their
// function value carries. The function value, not its code pointer, is the
// trampoline's identity, and each proxy hands out one value per flavour.
//
// State machine per closure type:
//
//	Unregistered --register--> Registered --invokeFn/invokeMut--> Registered
//	Registered --invokeOnce--> Unregistered (closure removed before the call)
//	Unregistered --invoke*--> panic(*UnregisteredError)

// invokeFn calls the closure of type F in place without mutating the slot.
func invokeFn[S Scope, Ad Adapter[P, A, R, CR], F ~func(A) R, P, A, R, CR any](p P) CR {
	var (
		s  S
		ad Ad
	)
	st := s.Store()
	box, ok := load[F](st, nil)
	if !ok {
		unregistered[F](st)
	}
	f := *box
	return ad.Result(f(ad.Convert(p)))
}

// invokeMut calls the closure of type F through its box. The closure may
// mutate captured state, and may re-register or clean its own slot.
func invokeMut[S Scope, Ad Adapter[P, A, R, CR], F ~func(A) R, P, A, R, CR any](p P) CR {
	var (
		s  S
		ad Ad
	)
	st := s.Store()
	box, ok := load[F](st, nil)
	if !ok {
		unregistered[F](st)
	}
	return ad.Result((*box)(ad.Convert(p)))
}

// invokeOnce removes the closure of type F from its slot and calls it.
// A second invocation finds the slot empty and panics.
func invokeOnce[S Scope, Ad Adapter[P, A, R, CR], F ~func(A) R, P, A, R, CR any](p P) CR {
	var (
		s  S
		ad Ad
	)
	st := s.Store()
	box, ok := take[F](st, nil)
	if !ok {
		unregistered[F](st)
	}
	return ad.Result((*box)(ad.Convert(p)))
}

// invokeWithFn is invokeFn for closures registered with user data.
// The user-data pointer is read from the wire parameter selected by Pos.
func invokeWithFn[S Scope, Pos Position, Ad Adapter[P, A, R, CR], F ~func(Bound[A, Ud]) R, P Tuple, A, Ud, R, CR any](p P) CR {
	var (
		s  S
		ad Ad
	)
	st := s.Store()
	ud := userDataAt[P, Pos](p)
	b, ok := load[bound[F, Ud]](st, ud)
	if !ok {
		unregistered[F](st)
	}
	b.check(st, ud)
	f := b.f
	return ad.Result(f(Bound[A, Ud]{Args: ad.Convert(p), Data: b.data.Value()}))
}

// invokeWithMut is invokeMut for closures registered with user data.
func invokeWithMut[S Scope, Pos Position, Ad Adapter[P, A, R, CR], F ~func(Bound[A, Ud]) R, P Tuple, A, Ud, R, CR any](p P) CR {
	var (
		s  S
		ad Ad
	)
	st := s.Store()
	ud := userDataAt[P, Pos](p)
	b, ok := load[bound[F, Ud]](st, ud)
	if !ok {
		unregistered[F](st)
	}
	b.check(st, ud)
	return ad.Result(b.f(Bound[A, Ud]{Args: ad.Convert(p), Data: b.data.Value()}))
}

// invokeWithOnce is invokeOnce for closures registered with user data.
// The user-data box is released after the call.
func invokeWithOnce[S Scope, Pos Position, Ad Adapter[P, A, R, CR], F ~func(Bound[A, Ud]) R, P Tuple, A, Ud, R, CR any](p P) CR {
	var (
		s  S
		ad Ad
	)
	st := s.Store()
	ud := userDataAt[P, Pos](p)
	b, ok := take[bound[F, Ud]](st, ud)
	if !ok {
		unregistered[F](st)
	}
	b.check(st, ud)
	defer b.Drop()
	return ad.Result(b.f(Bound[A, Ud]{Args: ad.Convert(p), Data: b.data.Value()}))
}

// check panics unless ud is the pointer of the registered user-data box.
func (b *bound[F, Ud]) check(st Store, ud Opaque) {
	if b.data.Ptr() != ud {
		badUserData[F](st, "pointer does not match the registered box")
	}
}

type flavour uint8

const (
	fnFnFlavour flavour = iota
	fnMutFlavour
	fnOnceFlavour
)

type trampolineKey struct {
	proxy   reflect.Type
	flavour flavour
}

// trampolines holds the function value handed out for each proxy
// instantiation and flavour. Like the registry, it is not synchronized.
var trampolines = make(map[trampolineKey]any)

// trampoline returns the function value of proxy type Px and flavour fl,
// keeping fn as that value on first use.
func trampoline[Px, Fn any](_ Px, fl flavour, fn Fn) Fn {
	k := trampolineKey{proxy: typeOf[Px](), flavour: fl}
	if v, ok := trampolines[k]; ok {
		return v.(Fn)
	}
	trampolines[k] = fn
	return fn
}
