// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package system

import "code.hybscloud.com/callback"

type serialSite struct{}

type serialFunc = callback.FnMut[serialSite, string, callback.Void]

// SetSerialMessageHandler makes h the listener for serial messages. The
// message is copied out of C memory, so h may retain it. A nil h removes the
// listener.
func (s *System) SetSerialMessageHandler(h func(msg string)) {
	if h == nil {
		s.api.SetSerialMessageCallback(nil)
		callback.Clean[callback.Deferred, serialFunc]()
		return
	}

	f := callback.AdaptCallbackMut1[callback.Deferred, callback.CStringOwned[callback.Void], *byte, callback.Void](
		serialFunc(func(msg string) callback.Void {
			h(msg)
			return callback.Void{}
		}))
	s.api.SetSerialMessageCallback(f)
}
