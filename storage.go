// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"reflect"

	"github.com/lthibault/log"
)

// Erased represents a type-erased payload held by a [Registry].
// Payloads are always boxes (*T) of the slot's static type T; the box is
// recovered with a type assertion at the slot boundary.
type Erased = any

// Dropper is implemented by payloads that own resources beyond Go memory.
// The registry calls Drop when such a payload is removed, overwritten or torn
// down. Payloads leaving the registry through Take are not dropped; the
// caller owns them.
type Dropper interface {
	Drop()
}

// Registry is the process-wide home of registered closures.
//
// A registry holds two kinds of slots: type-keyed slots (at most one payload
// per static type) and associated slots (one payload per (type, key) pair).
// The registry is not synchronized. The whole package assumes a single-threaded
// host that never invokes two trampolines concurrently; a multi-threaded host
// must guard every registry access itself.
//
// User data registered with a registry stays pinned until its payload is
// dropped. Clear a registry that holds user data before discarding it.
type Registry struct {
	slots  map[reflect.Type]Erased
	keyed  map[reflect.Type]map[any]Erased
	log    log.Logger
	logCfg logConfig
	strict bool
}

// NewRegistry returns an empty registry configured by opts.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		slots:  make(map[reflect.Type]Erased),
		keyed:  make(map[reflect.Type]map[any]Erased),
		logCfg: logConfig{level: log.WarnLevel},
	}
	for _, option := range withDefaults(opts) {
		option(r)
	}
	return r
}

var global *Registry

// Init installs a fresh default registry, tearing down the previous one.
// It is meant to be called once by the runtime bootstrap.
func Init(opts ...Option) *Registry {
	Teardown()
	global = NewRegistry(opts...)
	return global
}

// Teardown drops every payload of the default registry and uninstalls it.
// The next call to [Default] creates a new, empty registry.
func Teardown() {
	if global == nil {
		return
	}
	global.Clear()
	global = nil
}

// Default returns the default registry used by the predefined scopes.
func Default() *Registry {
	if global == nil {
		global = NewRegistry()
	}
	return global
}

// Log returns the registry's logger.
func (r *Registry) Log() log.Logger { return r.log }

// Len reports the number of live payloads across all slots.
func (r *Registry) Len() int {
	n := len(r.slots)
	for _, set := range r.keyed {
		n += len(set)
	}
	return n
}

// Clear drops every payload.
func (r *Registry) Clear() {
	for t, v := range r.slots {
		delete(r.slots, t)
		drop(v)
	}
	for t, set := range r.keyed {
		for k, v := range set {
			delete(set, k)
			drop(v)
		}
		delete(r.keyed, t)
	}
	r.log.Debug("registry cleared")
}

func (r *Registry) load(t reflect.Type) (Erased, bool) {
	v, ok := r.slots[t]
	return v, ok
}

// save stores v in the slot of t and reports whether a previous payload was
// replaced. The previous payload is dropped: last writer wins.
func (r *Registry) save(t reflect.Type, v Erased) bool {
	prev, ok := r.slots[t]
	if ok && r.strict {
		overwritten(r, &OverwriteError{Type: t})
	}
	r.slots[t] = v
	if ok {
		r.log.WithField("type", t).Warn("closure overwritten")
		drop(prev)
		return true
	}
	r.log.WithField("type", t).Debug("closure registered")
	return false
}

func (r *Registry) take(t reflect.Type) (Erased, bool) {
	v, ok := r.slots[t]
	if ok {
		delete(r.slots, t)
		r.log.WithField("type", t).Debug("closure taken")
	}
	return v, ok
}

func (r *Registry) remove(t reflect.Type) bool {
	v, ok := r.take(t)
	if ok {
		drop(v)
	}
	return ok
}

func (r *Registry) loadKeyed(t reflect.Type, key any) (Erased, bool) {
	v, ok := r.keyed[t][key]
	return v, ok
}

func (r *Registry) saveKeyed(t reflect.Type, key any, v Erased) bool {
	set := r.keyed[t]
	if set == nil {
		set = make(map[any]Erased)
		r.keyed[t] = set
	}
	prev, ok := set[key]
	if ok && r.strict {
		overwritten(r, &OverwriteError{Type: t, Key: key})
	}
	set[key] = v
	if ok {
		r.log.WithField("type", t).WithField("key", key).Warn("closure overwritten")
		drop(prev)
		return true
	}
	r.log.WithField("type", t).WithField("key", key).Debug("closure registered")
	return false
}

func (r *Registry) takeKeyed(t reflect.Type, key any) (Erased, bool) {
	set := r.keyed[t]
	v, ok := set[key]
	if !ok {
		return nil, false
	}
	delete(set, key)
	if len(set) == 0 {
		delete(r.keyed, t)
	}
	r.log.WithField("type", t).WithField("key", key).Debug("closure taken")
	return v, true
}

func (r *Registry) removeKeyed(t reflect.Type, key any) bool {
	v, ok := r.takeKeyed(t, key)
	if ok {
		drop(v)
	}
	return ok
}

func drop(v Erased) {
	if d, ok := v.(Dropper); ok {
		d.Drop()
	}
}

// typeOf returns the identity token of T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Slot is the type-keyed view of a registry: the single cell for values of
// type T. The zero Slot is not usable; obtain one with [SlotOf].
type Slot[T any] struct {
	r *Registry
}

// SlotOf returns the slot for T in r.
func SlotOf[T any](r *Registry) Slot[T] {
	return Slot[T]{r: r}
}

// IsEmpty reports whether the slot holds no value.
func (s Slot[T]) IsEmpty() bool {
	_, ok := s.r.load(typeOf[T]())
	return !ok
}

// Set stores v, dropping any previous value.
func (s Slot[T]) Set(v T) {
	s.r.save(typeOf[T](), &v)
}

// TrySet stores v only if the slot is empty and reports whether it did.
func (s Slot[T]) TrySet(v T) bool {
	if !s.IsEmpty() {
		return false
	}
	s.r.save(typeOf[T](), &v)
	return true
}

// Get returns a copy of the stored value.
func (s Slot[T]) Get() (T, bool) {
	if p, ok := s.GetMut(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the stored value. Writes through the pointer
// update the slot in place.
func (s Slot[T]) GetMut() (*T, bool) {
	v, ok := s.r.load(typeOf[T]())
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Take removes and returns the stored value without dropping it.
func (s Slot[T]) Take() (T, bool) {
	v, ok := s.r.take(typeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return *v.(*T), true
}

// Remove drops the stored value, if any, and reports whether there was one.
// The payload is dropped without checking its dynamic type.
func (s Slot[T]) Remove() bool {
	return s.r.remove(typeOf[T]())
}

// Keyed is the associated view of a registry: a set of values of type T
// addressed by keys of type K. Use it when several registrations of one
// type must coexist.
type Keyed[K comparable, T any] struct {
	r *Registry
}

// KeyedOf returns the associated slots for T in r.
func KeyedOf[K comparable, T any](r *Registry) Keyed[K, T] {
	return Keyed[K, T]{r: r}
}

// IsEmpty reports whether no key holds a value of type T.
func (s Keyed[K, T]) IsEmpty() bool {
	return len(s.r.keyed[typeOf[T]()]) == 0
}

// IsEmptyFor reports whether key holds no value of type T.
func (s Keyed[K, T]) IsEmptyFor(key K) bool {
	_, ok := s.r.loadKeyed(typeOf[T](), key)
	return !ok
}

// Set stores v under key, dropping any previous value.
func (s Keyed[K, T]) Set(key K, v T) {
	s.r.saveKeyed(typeOf[T](), key, &v)
}

// Get returns a copy of the value stored under key.
func (s Keyed[K, T]) Get(key K) (T, bool) {
	if p, ok := s.GetMut(key); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the value stored under key.
func (s Keyed[K, T]) GetMut(key K) (*T, bool) {
	v, ok := s.r.loadKeyed(typeOf[T](), key)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Take removes and returns the value stored under key without dropping it.
func (s Keyed[K, T]) Take(key K) (T, bool) {
	v, ok := s.r.takeKeyed(typeOf[T](), key)
	if !ok {
		var zero T
		return zero, false
	}
	return *v.(*T), true
}

// Remove drops the value stored under key and reports whether there was one.
func (s Keyed[K, T]) Remove(key K) bool {
	return s.r.removeKeyed(typeOf[T](), key)
}
