// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build darwin || (linux && (amd64 || arm64))

package system

import (
	"reflect"
	"runtime"
	"unsafe"

	"code.hybscloud.com/callback"
	"code.hybscloud.com/callback/cabi"
)

// NativeTable holds the C entry points of the vendor system API.
type NativeTable struct {
	SetUpdateCallback        cabi.Pointer // void (*)(int (*)(void*), void*)
	SetSerialMessageCallback cabi.Pointer // void (*)(void (*)(const char*))
	AddMenuItem              cabi.Pointer // void* (*)(const char*, void (*)(void*), void*)
	RemoveMenuItem           cabi.Pointer // void (*)(void*)
	GetServerTime            cabi.Pointer // void (*)(void (*)(const char*, const char*))
}

// Native returns the API that calls through the C entry points of t.
func Native(t NativeTable) API { return native{t: t} }

type native struct{ t NativeTable }

func (n native) SetUpdateCallback(update callback.UnsafeFunc1[callback.Opaque, int32], userdata callback.Opaque) {
	n.t.SetUpdateCallback.Call(export(update), uintptr(userdata))
}

func (n native) SetSerialMessageCallback(listener callback.Func1[*byte, callback.Void]) {
	n.t.SetSerialMessageCallback.Call(export(listener))
}

func (n native) AddMenuItem(title string, selected callback.UnsafeFunc1[callback.Opaque, callback.Void], userdata callback.Opaque) MenuItemRef {
	b := append([]byte(title), 0)
	var pin runtime.Pinner
	pin.Pin(&b[0])
	defer pin.Unpin()
	return MenuItemRef(n.t.AddMenuItem.Call(uintptr(unsafe.Pointer(&b[0])), export(selected), uintptr(userdata)))
}

func (n native) RemoveMenuItem(item MenuItemRef) {
	n.t.RemoveMenuItem.Call(uintptr(item))
}

func (n native) GetServerTime(done callback.Func2[*byte, *byte, callback.Void]) {
	n.t.GetServerTime.Call(export(done))
}

// export returns the C pointer of trampoline f, or NULL for a nil f.
func export[F any](f F) uintptr {
	if reflect.ValueOf(f).IsNil() {
		return 0
	}
	return uintptr(cabi.Export(f))
}
