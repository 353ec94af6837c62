// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build (darwin || linux) && (amd64 || arm64)

package system_test

import (
	"io"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/callback"
	"code.hybscloud.com/callback/cabi"
	"code.hybscloud.com/callback/system"
)

// vendor is a fake C SDK: its entry points are Go functions exported through
// the C ABI that record the function pointers they are handed.
type vendor struct {
	update, updateData uintptr
	serial             uintptr
	menu, menuData     uintptr
	menuTitle          string
	items              []menuEntry
	removed            uintptr
}

type menuEntry struct {
	title    string
	fn, data uintptr
}

// The entry points capture nothing, so their exported pointers stay valid
// across test runs.
var fake vendor

func vendorTable() system.NativeTable {
	return system.NativeTable{
		SetUpdateCallback: cabi.Export(func(fn, ud uintptr) {
			fake.update, fake.updateData = fn, ud
		}),
		SetSerialMessageCallback: cabi.Export(func(fn uintptr) {
			fake.serial = fn
		}),
		AddMenuItem: cabi.Export(func(title *byte, fn, ud uintptr) uintptr {
			fake.menuTitle = callback.CopyCString(title)
			fake.menu, fake.menuData = fn, ud
			fake.items = append(fake.items, menuEntry{title: fake.menuTitle, fn: fn, data: ud})
			return 0xbeef + uintptr(len(fake.items)-1)
		}),
		RemoveMenuItem: cabi.Export(func(item uintptr) {
			fake.removed = item
		}),
		GetServerTime: cabi.Export(func(uintptr) {}),
	}
}

func TestNative(t *testing.T) {
	fake = vendor{}
	s := system.Bootstrap(system.Native(vendorTable()), callback.WithLogLevel("error", io.Discard))
	defer s.Shutdown()

	system.SetUpdateHandler(s, int32(0), func(n *int32) bool {
		*n++
		return *n > 1
	})
	require.NotZero(t, fake.update)
	require.NotZero(t, fake.updateData)
	update := cabi.Pointer(fake.update)
	assert.Equal(t, int32(0), int32(update.Call(fake.updateData)))
	assert.Equal(t, int32(1), int32(update.Call(fake.updateData)))

	var msgs []string
	s.SetSerialMessageHandler(func(msg string) { msgs = append(msgs, msg) })
	require.NotZero(t, fake.serial)
	cabi.Pointer(fake.serial).Call(uintptr(unsafe.Pointer(cstr("hello"))))
	assert.Equal(t, []string{"hello"}, msgs)

	selected := 0
	item, err := system.AddMenuItem(s, "reset", "state", func(*system.MenuItem, *string) { selected++ })
	require.NoError(t, err)
	assert.Equal(t, "reset", fake.menuTitle)
	assert.Equal(t, system.MenuItemRef(0xbeef), item.Ref())
	cabi.Pointer(fake.menu).Call(fake.menuData)
	assert.Equal(t, 1, selected)

	require.NoError(t, item.Remove())
	assert.Equal(t, uintptr(0xbeef), fake.removed)

	s.ClearUpdateHandler()
	assert.Zero(t, fake.update)
	assert.Zero(t, fake.updateData)
}

type (
	volumeLevel int
	speedLevel  int
)

func TestNativeMenuStateTypes(t *testing.T) {
	fake = vendor{}
	s := system.Bootstrap(system.Native(vendorTable()), callback.WithLogLevel("error", io.Discard))
	defer s.Shutdown()

	var got []int
	a, err := system.AddMenuItem(s, "volume", volumeLevel(7), func(_ *system.MenuItem, v *volumeLevel) {
		*v++
		got = append(got, int(*v))
	})
	require.NoError(t, err)
	b, err := system.AddMenuItem(s, "speed", speedLevel(9), func(_ *system.MenuItem, v *speedLevel) {
		*v--
		got = append(got, -int(*v))
	})
	require.NoError(t, err)

	require.Len(t, fake.items, 2)
	va, sb := fake.items[0], fake.items[1]
	assert.NotEqual(t, va.fn, sb.fn, "state types of one shape need their own pointers")

	cabi.Pointer(sb.fn).Call(sb.data)
	cabi.Pointer(va.fn).Call(va.data)
	cabi.Pointer(va.fn).Call(va.data)
	assert.Equal(t, []int{-8, 8, 9}, got)

	require.NoError(t, a.Remove())
	require.NoError(t, b.Remove())
}
