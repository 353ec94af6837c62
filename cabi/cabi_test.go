// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build (darwin || linux) && (amd64 || arm64)

package cabi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/callback"
	"code.hybscloud.com/callback/cabi"
)

type (
	addSite   struct{}
	tickSite  struct{}
	leftSite  struct{}
	rightSite struct{}
)

func TestExportCall(t *testing.T) {
	callback.Init()
	t.Cleanup(callback.Teardown)

	calls := 0
	add := callback.IntoCallbackMut2[callback.Deferred](
		callback.NewFnMut[addSite](func(p callback.Tuple2[uintptr, uintptr]) uintptr {
			calls++
			return p.V1 + p.V2
		}))

	ptr := cabi.Export(add)
	require.False(t, ptr.IsNil())

	assert.Equal(t, uintptr(7), ptr.Call(3, 4))
	assert.Equal(t, uintptr(42), ptr.Call(40, 2))
	assert.Equal(t, 2, calls)
}

func TestExportCached(t *testing.T) {
	callback.Init()
	t.Cleanup(callback.Teardown)

	f := func(p callback.Tuple1[uintptr]) uintptr { return p.V1 * 2 }
	first := cabi.Export(callback.IntoCallback1[callback.Deferred](callback.NewFn[addSite](f)))
	n := cabi.Exported()

	// Re-registration keeps the trampoline and hence the C pointer.
	second := cabi.Export(callback.IntoCallback1[callback.Deferred](callback.NewFn[addSite](f)))
	assert.Equal(t, first, second)
	assert.Equal(t, n, cabi.Exported())
	assert.Equal(t, uintptr(10), second.Call(5))
}

func TestExportDistinctSites(t *testing.T) {
	callback.Init()
	t.Cleanup(callback.Teardown)

	left := cabi.Export(callback.IntoCallback1[callback.Deferred](
		callback.NewFn[leftSite](func(p callback.Tuple1[uintptr]) uintptr { return 100 + p.V1 })))
	right := cabi.Export(callback.IntoCallback1[callback.Deferred](
		callback.NewFn[rightSite](func(p callback.Tuple1[uintptr]) uintptr { return 200 + p.V1 })))

	require.NotEqual(t, left, right, "closures of one signature need their own pointers")
	assert.Equal(t, uintptr(101), left.Call(1))
	assert.Equal(t, uintptr(202), right.Call(2))
}

func TestExportVoid(t *testing.T) {
	callback.Init()
	t.Cleanup(callback.Teardown)

	var got uintptr
	tick := callback.IntoCallbackMut1[callback.Deferred](
		callback.NewFnMut[tickSite](func(p callback.Tuple1[uintptr]) callback.Void {
			got += p.V1
			return callback.Void{}
		}))

	ptr := cabi.Export(tick)
	ptr.Call(5)
	ptr.Call(6)
	assert.Equal(t, uintptr(11), got)
}

func TestImport(t *testing.T) {
	callback.Init()
	t.Cleanup(callback.Teardown)

	sub := callback.IntoCallback2[callback.Deferred](
		callback.NewFn[addSite](func(p callback.Tuple2[uintptr, uintptr]) uintptr {
			return p.V1 - p.V2
		}))

	fn := cabi.Import[func(uintptr, uintptr) uintptr](cabi.Export(sub))
	assert.Equal(t, uintptr(5), fn(9, 4))
}

func TestExportRejectsNil(t *testing.T) {
	var f func()
	assert.Panics(t, func() { cabi.Export(f) })
	assert.Panics(t, func() { cabi.Import[func()](0) })
}
