// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package system registers Go handlers for the callbacks of the vendor system
// API: the update loop, the serial listener, menu items and network time.
package system

import (
	"github.com/lthibault/log"

	"code.hybscloud.com/callback"
)

// System is the runtime's view of the vendor system API. There is one per
// process; Bootstrap creates it.
type System struct {
	api         API
	log         log.Logger
	clearUpdate func() bool
}

// Bootstrap installs a fresh callback registry configured by opts and
// returns the system bound to api.
func Bootstrap(api API, opts ...callback.Option) *System {
	r := callback.Init(opts...)
	return &System{
		api: api,
		log: r.Log().WithField("api", "system"),
	}
}

// Shutdown unregisters the update handler and drops every registered
// closure. Trampolines the vendor still holds must not be called afterwards.
func (s *System) Shutdown() {
	s.ClearUpdateHandler()
	callback.Teardown()
	s.log.Debug("shut down")
}

// API returns the vendor API s is bound to.
func (s *System) API() API { return s.api }
