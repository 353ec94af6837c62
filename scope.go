// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"reflect"

	"github.com/lthibault/log"
)

// Store is the erased storage a [Scope] hands to its trampolines.
// The ud argument is the user-data pointer of the invocation (nil when the
// wire signature carries none); each storage kind decides whether it takes
// part in slot identity.
type Store interface {
	Load(t reflect.Type, ud Opaque) (Erased, bool)
	Save(t reflect.Type, ud Opaque, v Erased) bool
	Take(t reflect.Type, ud Opaque) (Erased, bool)
	Delete(t reflect.Type, ud Opaque) bool
	Log() log.Logger
}

// Scope selects the storage that conversions register into and trampolines
// read from. Scopes are zero-size types used only as type arguments; the
// compiler knows the concrete scope at every instantiation, so Store calls
// are static.
//
// Custom scopes implement Store on a zero-size type:
//
//	type Sandbox struct{}
//	func (Sandbox) Store() callback.Store { return sandboxStore }
type Scope interface {
	Store() Store
}

// Deferred is the common scope: one slot per closure type in the default
// registry. User data does not take part in slot identity.
type Deferred struct{}

func (Deferred) Store() Store { return typeStore{Default()} }

// Unique keys slots by closure type and user-data pointer, so several
// registrations of one closure type coexist (one per user-data box).
type Unique struct{}

func (Unique) Store() Store { return keyStore{Default()} }

// Immediate is reserved for trampolines that run closures without storing
// them. It is not implemented.
type Immediate struct{}

func (Immediate) Store() Store { panic("callback: immediate scope is not implemented") }

// Async is reserved for trampolines that hand closures to an executor.
// It is not implemented.
type Async struct{}

func (Async) Store() Store { panic("callback: async scope is not implemented") }

// TypeStore returns a store over r that ignores user data.
func TypeStore(r *Registry) Store { return typeStore{r} }

// KeyStore returns a store over r keyed by user data.
func KeyStore(r *Registry) Store { return keyStore{r} }

type typeStore struct{ r *Registry }

func (s typeStore) Load(t reflect.Type, _ Opaque) (Erased, bool) { return s.r.load(t) }
func (s typeStore) Save(t reflect.Type, _ Opaque, v Erased) bool { return s.r.save(t, v) }
func (s typeStore) Take(t reflect.Type, _ Opaque) (Erased, bool) { return s.r.take(t) }
func (s typeStore) Delete(t reflect.Type, _ Opaque) bool         { return s.r.remove(t) }
func (s typeStore) Log() log.Logger                              { return s.r.log }

type keyStore struct{ r *Registry }

func (s keyStore) Load(t reflect.Type, ud Opaque) (Erased, bool) { return s.r.loadKeyed(t, ud) }
func (s keyStore) Save(t reflect.Type, ud Opaque, v Erased) bool { return s.r.saveKeyed(t, ud, v) }
func (s keyStore) Take(t reflect.Type, ud Opaque) (Erased, bool) { return s.r.takeKeyed(t, ud) }
func (s keyStore) Delete(t reflect.Type, ud Opaque) bool         { return s.r.removeKeyed(t, ud) }
func (s keyStore) Log() log.Logger                               { return s.r.log }

// load returns the box of T stored in st.
func load[T any](st Store, ud Opaque) (*T, bool) {
	v, ok := st.Load(typeOf[T](), ud)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// take removes the box of T from st without dropping it.
func take[T any](st Store, ud Opaque) (*T, bool) {
	v, ok := st.Take(typeOf[T](), ud)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}
