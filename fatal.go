// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"fmt"
	"reflect"
)

// Broken invariants of the callback core are programming errors in the
// embedding code. They are never returned: trampolines have no error channel,
// so they panic with one of the error types below.

// UnregisteredError reports a trampoline invoked while its slot was empty:
// before registration, after Clean, or a second time on the call-once path.
type UnregisteredError struct {
	Type reflect.Type
}

func (e *UnregisteredError) Error() string {
	return "callback: no closure registered for " + e.Type.String()
}

// OverwriteError reports a registration into an occupied slot of a strict
// registry.
type OverwriteError struct {
	Type reflect.Type
	Key  any
}

func (e *OverwriteError) Error() string {
	if k, ok := e.Key.(Opaque); e.Key != nil && (!ok || k != nil) {
		return fmt.Sprintf("callback: slot %s[%v] already occupied", e.Type, e.Key)
	}
	return "callback: slot " + e.Type.String() + " already occupied"
}

// UserDataError reports a user-data pointer that does not belong to the
// closure it was delivered to, or a user-data position the wire signature
// cannot carry.
type UserDataError struct {
	Type   reflect.Type
	Reason string
}

func (e *UserDataError) Error() string {
	return "callback: user data for " + e.Type.String() + ": " + e.Reason
}

// unregistered logs and panics for a missing closure of type F.
// Extracted as a noinline function so that trampoline bodies remain small.
//
//go:noinline
func unregistered[F any](st Store) {
	err := &UnregisteredError{Type: typeOf[F]()}
	st.Log().WithError(err).Error("trampoline invoked without closure")
	panic(err)
}

//go:noinline
func badUserData[F any](st Store, reason string) {
	err := &UserDataError{Type: typeOf[F](), Reason: reason}
	st.Log().WithError(err).Error("user data rejected")
	panic(err)
}

//go:noinline
func overwritten(r *Registry, err *OverwriteError) {
	r.log.WithError(err).Error("strict registry refused overwrite")
	panic(err)
}
