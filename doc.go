// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package callback turns Go closures into plain function pointers that a C
// API can store and call back.
//
// A C API accepts a bare function pointer, at most with an opaque user-data
// pointer beside it. A Go closure carries captured state and cannot cross
// that boundary. callback bridges the two: a conversion registers the closure
// in a process-wide [Registry] and returns a trampoline, a capture-free
// function whose only link to the closure is its static type.
//
// # Design Philosophy
//
//   - Slots are keyed by static type. Two closures of the same type in the
//     same scope share one slot; the last registration wins.
//   - Trampolines are named generic functions that capture nothing. Each
//     proxy instantiation hands out one function value per flavour, so
//     converting a closure again yields the same trampoline. Instantiations
//     may share machine code; the function value is what identifies them.
//   - Scopes and adapters are zero-size type arguments. The compiler knows
//     both at every instantiation; nothing is dispatched at run time.
//
// # Capability Tiers
//
// A closure's type records how often it may be called:
//
//   - [Fn]: any number of times, without mutating captured state
//   - [FnMut]: any number of times, mutating captured state
//   - [FnOnce]: exactly once; the slot is emptied before the call
//
// Each tier satisfies its own constraint and every weaker one ([Callable],
// [CallableMut], [CallableOnce]). Conversions accept the constraint of the
// trampoline flavour they produce, so an FnOnce cannot become a trampoline
// that may be called twice.
//
// # Conversions
//
// For every arity N from 0 to 11:
//
//   - IntoCallbackN, IntoCallbackMutN, IntoCallbackOnceN: the closure takes
//     the wire parameters as a TupleN and returns the wire result
//   - AdaptCallbackN (and Mut, Once): an [Adapter] converts the wire
//     parameters into the closure argument and the closure result back
//   - IntoCallbackWithN, AdaptCallbackWithN (and Mut, Once): the closure is
//     registered together with user data; the trampoline finds it through
//     the [Opaque] parameter selected by a [Position]
//
// Example:
//
//	type onTick struct{}
//	ticks := 0
//	tick := callback.IntoCallbackMut1[callback.Deferred](
//		callback.NewFnMut[onTick](func(p callback.Tuple1[int32]) callback.Void {
//			ticks += int(p.V1)
//			return callback.Void{}
//		}))
//	tick(2) // ticks == 2
//
// # Scopes
//
//   - [Deferred]: one slot per closure type
//   - [Unique]: one slot per closure type and user-data pointer
//   - [Immediate], [Async]: reserved, not implemented
//
// Custom scopes implement [Scope] over their own [Registry].
//
// # Threading
//
// The registry is not synchronized. A host that may invoke trampolines from
// several threads must serialize every conversion and invocation itself.
//
// # Failure
//
// Trampolines have no error channel. Invoking one whose slot is empty panics
// with [*UnregisteredError]; a user-data pointer that does not match the
// registered box panics with [*UserDataError].
//
// # Generated Code
//
// tuple_gen.go, func_gen.go, proxy_gen.go and into_gen.go are generated by
// internal/cmd/gen.
//
//go:generate go run ./internal/cmd/gen --dir .
package callback
