// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package system

import "code.hybscloud.com/callback"

type updateSite struct{}

type updateFunc[T any] = callback.FnMut[updateSite, callback.Bound[callback.Tuple1[callback.Opaque], T], int32]

// SetUpdateHandler makes h the per-frame handler. h receives a pointer to
// state, which lives as long as the handler is registered, and reports
// whether the display must be refreshed.
//
// A later call replaces the handler and its state.
func SetUpdateHandler[T any](s *System, state T, h func(state *T) bool) {
	s.ClearUpdateHandler()

	uf := callback.IntoCallbackMutWith1[callback.Deferred, callback.First](
		callback.NewFnMut[updateSite](func(b callback.Bound[callback.Tuple1[callback.Opaque], T]) int32 {
			if h(b.Data) {
				return 1
			}
			return 0
		}), state)

	s.api.SetUpdateCallback(uf.Func.Unsafe(), uf.Data)
	s.clearUpdate = func() bool {
		return callback.CleanWith[callback.Deferred, updateFunc[T], T](uf.Data)
	}
	s.log.Debug("update handler set")
}

// ClearUpdateHandler unregisters the update handler, if any, and releases
// its state.
func (s *System) ClearUpdateHandler() {
	if s.clearUpdate == nil {
		return
	}
	s.api.SetUpdateCallback(nil, nil)
	s.clearUpdate()
	s.clearUpdate = nil
	s.log.Debug("update handler cleared")
}
