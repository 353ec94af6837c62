// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"io"
	"testing"

	"github.com/lthibault/log"

	"code.hybscloud.com/callback"
)

// fresh installs an empty default registry for the duration of t.
func fresh(t testing.TB, opts ...callback.Option) *callback.Registry {
	t.Helper()
	quiet := callback.WithLogger(log.New(log.WithWriter(io.Discard)))
	r := callback.Init(append([]callback.Option{quiet}, opts...)...)
	t.Cleanup(callback.Teardown)
	return r
}

// expectPanic runs f and returns the value it panicked with, failing t unless
// that value has type E.
func expectPanic[E any](t *testing.T, f func()) (got E) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %T", got)
		}
		e, ok := r.(E)
		if !ok {
			t.Fatalf("unexpected panic: %v", r)
		}
		got = e
	}()
	f()
	return got
}
