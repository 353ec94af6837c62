// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"testing"

	"code.hybscloud.com/callback"
)

type benchSite struct{}

// BenchmarkInvokeFn measures a repeatable trampoline call.
func BenchmarkInvokeFn(b *testing.B) {
	fresh(b)
	f := callback.IntoCallback2[callback.Deferred](
		callback.NewFn[benchSite](func(p callback.Tuple2[int, int]) int { return p.V1 + p.V2 }))

	for b.Loop() {
		_ = f(1, 2)
	}
}

// BenchmarkInvokeMut measures a mutating trampoline call.
func BenchmarkInvokeMut(b *testing.B) {
	fresh(b)
	n := 0
	f := callback.IntoCallbackMut0[callback.Deferred](
		callback.NewFnMut[benchSite](func(callback.Tuple0) int {
			n++
			return n
		}))

	for b.Loop() {
		_ = f()
	}
}

// BenchmarkRegisterOnce measures a call-once registration and its call.
func BenchmarkRegisterOnce(b *testing.B) {
	fresh(b)
	closure := callback.NewFnOnce[benchSite](func(p callback.Tuple1[int]) int { return p.V1 })

	for b.Loop() {
		_ = callback.IntoCallbackOnce1[callback.Deferred](closure)(1)
	}
}

// BenchmarkInvokeWithMut measures a trampoline call that resolves user data.
func BenchmarkInvokeWithMut(b *testing.B) {
	fresh(b)
	uf := callback.IntoCallbackMutWith1[callback.Deferred, callback.First](
		callback.NewFnMut[benchSite](func(bd callback.Bound[callback.Tuple1[callback.Opaque], int]) int {
			*bd.Data++
			return *bd.Data
		}), 0)

	for b.Loop() {
		_ = uf.Func(uf.Data)
	}
}

// BenchmarkInvokeUnique measures a trampoline call in the keyed scope.
func BenchmarkInvokeUnique(b *testing.B) {
	fresh(b)
	uf := callback.IntoCallbackMutWith1[callback.Unique, callback.First](
		callback.NewFnMut[benchSite](func(bd callback.Bound[callback.Tuple1[callback.Opaque], string]) int {
			return len(*bd.Data)
		}), "item")

	for b.Loop() {
		_ = uf.Func(uf.Data)
	}
}

// BenchmarkAdaptCString measures a borrowing string adapter.
func BenchmarkAdaptCString(b *testing.B) {
	fresh(b)
	f := callback.AdaptCallback1[callback.Deferred, callback.CString[int], *byte, int](
		callback.NewFn[benchSite](func(s string) int { return len(s) }))
	msg := []byte("benchmark message\x00")

	for b.Loop() {
		_ = f(&msg[0])
	}
}
