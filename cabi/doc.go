// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cabi exposes callback trampolines as C function pointers and calls
// C function pointers from Go, using purego instead of cgo.
//
// Export hands a trampoline to C:
//
//	tick := callback.IntoCallbackMut1[callback.Deferred](h)
//	ptr := cabi.Export(tick)
//	sdk.SetTick(ptr)
//
// Exports are cached per function value. A conversion yields the same
// trampoline value however often its closure is re-registered, so exporting
// it again returns the same pointer. Trampolines of distinct closure types
// may share machine code but never a function value, and get distinct
// pointers. purego never frees a callback, and the process may create only
// a limited number of them.
package cabi
