// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package system

import "code.hybscloud.com/callback"

// MenuItemRef is the vendor handle of a system menu item. Zero is the null
// handle.
type MenuItemRef uintptr

// API is the part of the vendor system API that takes callbacks.
//
// Implementations forward to the C SDK, typically through function pointers
// obtained with package cabi. Function arguments are trampolines; a nil
// trampoline unregisters.
type API interface {
	// SetUpdateCallback installs the per-frame callback. The callback returns
	// nonzero when the display must be refreshed.
	SetUpdateCallback(update callback.UnsafeFunc1[callback.Opaque, int32], userdata callback.Opaque)

	// SetSerialMessageCallback installs the listener for messages received
	// on the serial port. The message is a NUL-terminated C string.
	SetSerialMessageCallback(listener callback.Func1[*byte, callback.Void])

	// AddMenuItem adds an entry to the system menu. It returns the null
	// handle when the menu is full.
	AddMenuItem(title string, selected callback.UnsafeFunc1[callback.Opaque, callback.Void], userdata callback.Opaque) MenuItemRef

	// RemoveMenuItem removes and frees a menu item.
	RemoveMenuItem(item MenuItemRef)

	// GetServerTime requests the network time. The vendor calls back exactly
	// once with either the time (RFC 3339) or an error message; the other
	// string is NULL.
	GetServerTime(done callback.Func2[*byte, *byte, callback.Void])
}
