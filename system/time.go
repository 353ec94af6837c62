// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package system

import (
	"time"

	"github.com/pkg/errors"

	"code.hybscloud.com/callback"
)

// ServerTimeResult is the outcome of a network time request.
type ServerTimeResult struct {
	Time time.Time
	Err  error
}

// serverTime converts the (time, error) C strings of the vendor callback.
type serverTime struct{ callback.SameResult[callback.Void] }

func (serverTime) Convert(p callback.Tuple2[*byte, *byte]) ServerTimeResult {
	if p.V2 != nil {
		return ServerTimeResult{Err: errors.Errorf("server time: %s", callback.CopyCString(p.V2))}
	}
	if p.V1 == nil {
		return ServerTimeResult{Err: errors.New("server time: empty response")}
	}
	t, err := time.Parse(time.RFC3339, callback.CopyCString(p.V1))
	if err != nil {
		return ServerTimeResult{Err: errors.Wrap(err, "server time")}
	}
	return ServerTimeResult{Time: t}
}

type serverTimeSite struct{}

// ServerTime requests the network time and calls h once with the result.
// A request issued before the previous one completed replaces its handler.
func (s *System) ServerTime(h func(ServerTimeResult)) {
	done := callback.AdaptCallbackOnce2[callback.Deferred, serverTime, *byte, *byte, callback.Void](
		callback.NewFnOnce[serverTimeSite](func(r ServerTimeResult) callback.Void {
			h(r)
			return callback.Void{}
		}))
	s.api.GetServerTime(done)
}
