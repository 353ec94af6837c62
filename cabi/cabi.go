// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build darwin || (linux && (amd64 || arm64))

package cabi

import (
	"reflect"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Pointer is a C function pointer.
type Pointer uintptr

// IsNil reports whether p is the null function pointer.
func (p Pointer) IsNil() bool { return p == 0 }

// Call invokes p with integer-class arguments and returns its integer result.
func (p Pointer) Call(args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(uintptr(p), args...)
	return r1
}

type exportKey struct {
	fn  unsafe.Pointer
	typ reflect.Type
}

// exported maps a function value to its C function pointer. The key keeps
// the function value alive, so its address is never reused by another.
// Like the callback registry, it assumes a single-threaded host.
var exported = make(map[exportKey]Pointer)

// Export returns the C function pointer of f.
//
// F must be a function type, f non-nil, and its parameters and result must
// fit the C calling convention. A trailing callback.Void result is dropped,
// so a trampoline of a void C signature may be exported as is. Export panics
// otherwise.
func Export[F any](f F) Pointer {
	v := reflect.ValueOf(f)
	if reflect.TypeFor[F]().Kind() != reflect.Func || v.IsNil() {
		panic("cabi: export of non-function or nil function")
	}
	key := exportKey{fn: funcValue(&f), typ: v.Type()}
	if p, ok := exported[key]; ok {
		return p
	}
	p := Pointer(purego.NewCallback(dropVoid(v).Interface()))
	exported[key] = p
	return p
}

// funcValue returns the function value word of *f: the code pointer together
// with the closure context. Generic instantiations compiled for one GC shape
// share code, so the code pointer alone does not identify a function.
func funcValue[F any](f *F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(f))
}

// Exported reports the number of cached C function pointers.
func Exported() int { return len(exported) }

// Import binds the C function pointer p to a Go function of type F.
// Calling the result performs a C call.
func Import[F any](p Pointer) F {
	if p.IsNil() {
		panic("cabi: import of null function pointer")
	}
	var f F
	purego.RegisterFunc(&f, uintptr(p))
	return f
}

var voidType = reflect.TypeFor[struct{}]()

// dropVoid wraps v so that a sole struct{} result becomes no result.
func dropVoid(v reflect.Value) reflect.Value {
	t := v.Type()
	if t.NumOut() != 1 || t.Out(0) != voidType {
		return v
	}
	in := make([]reflect.Type, t.NumIn())
	for i := range in {
		in[i] = t.In(i)
	}
	ft := reflect.FuncOf(in, nil, false)
	return reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		v.Call(args)
		return nil
	})
}
