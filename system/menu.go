// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package system

import (
	"github.com/pkg/errors"

	"code.hybscloud.com/callback"
)

type menuSite struct{}

type menuFunc[T any] = callback.FnMut[menuSite, callback.Bound[callback.Tuple1[callback.Opaque], T], callback.Void]

// MenuItem is an entry of the system menu. It owns the vendor handle and the
// registration of its handler; Remove releases both.
type MenuItem struct {
	sys   *System
	title string
	ref   MenuItemRef
	clean func() bool
}

// AddMenuItem adds a menu entry that calls h with a pointer to state each time
// it is selected. Menu items with the same state type coexist: each is keyed
// by its own user data.
func AddMenuItem[T any](s *System, title string, state T, h func(item *MenuItem, state *T)) (*MenuItem, error) {
	item := &MenuItem{sys: s, title: title}

	uf := callback.IntoCallbackMutWith1[callback.Unique, callback.First](
		callback.NewFnMut[menuSite](func(b callback.Bound[callback.Tuple1[callback.Opaque], T]) callback.Void {
			h(item, b.Data)
			return callback.Void{}
		}), state)
	item.clean = func() bool {
		return callback.CleanWith[callback.Unique, menuFunc[T], T](uf.Data)
	}

	ref := s.api.AddMenuItem(title, uf.Func.Unsafe(), uf.Data)
	if ref == 0 {
		item.clean()
		return nil, errors.Errorf("add menu item %q: vendor returned null handle", title)
	}
	item.ref = ref

	s.log.WithField("title", title).Debug("menu item added")
	return item, nil
}

// Title returns the title the item was added with.
func (m *MenuItem) Title() string { return m.title }

// Ref returns the vendor handle, or zero once the item is removed.
func (m *MenuItem) Ref() MenuItemRef { return m.ref }

// Remove removes the item from the menu, frees its vendor handle and drops
// its handler.
func (m *MenuItem) Remove() error {
	if m.ref == 0 {
		return errors.Errorf("remove menu item %q: already removed", m.title)
	}
	m.sys.api.RemoveMenuItem(m.ref)
	m.ref = 0
	if !m.clean() {
		return errors.Errorf("remove menu item %q: handler not registered", m.title)
	}

	m.sys.log.WithField("title", m.title).Debug("menu item removed")
	return nil
}
