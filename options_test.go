// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"code.hybscloud.com/callback"
)

func TestWithLogLevel(t *testing.T) {
	for _, tt := range []struct {
		level string
		debug bool
		warn  bool
	}{
		{level: "debug", debug: true, warn: true},
		{level: "info", debug: false, warn: true},
		{level: "warn", debug: false, warn: true},
		{level: "error", debug: false, warn: false},
		{level: "bogus", debug: false, warn: true},
	} {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			r := callback.NewRegistry(callback.WithLogLevel(tt.level, &buf))
			s := callback.SlotOf[int](r)

			s.Set(1)
			if got := strings.Contains(buf.String(), "closure registered"); got != tt.debug {
				t.Fatalf("debug entry logged = %v, want %v", got, tt.debug)
			}
			s.Set(2)
			if got := strings.Contains(buf.String(), "closure overwritten"); got != tt.warn {
				t.Fatalf("warn entry logged = %v, want %v", got, tt.warn)
			}
		})
	}
}

func TestWithLogFormatText(t *testing.T) {
	var buf bytes.Buffer
	r := callback.NewRegistry(callback.WithLogFormat("text", &buf))
	callback.SlotOf[int](r).Set(1)
	callback.SlotOf[int](r).Set(2)

	out := buf.String()
	if !strings.Contains(out, "closure overwritten") || strings.HasPrefix(out, "{") {
		t.Fatalf("unexpected text entry: %q", out)
	}
}

func TestLogOptionsCombine(t *testing.T) {
	for name, opts := range map[string][]callback.Option{
		"level first":  {callback.WithLogLevel("debug", nil), callback.WithLogFormat("json", nil)},
		"format first": {callback.WithLogFormat("json", nil), callback.WithLogLevel("debug", nil)},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			all := append([]callback.Option{callback.WithLogLevel("warn", &buf)}, opts...)
			r := callback.NewRegistry(all...)
			callback.SlotOf[int](r).Set(1)

			out := buf.String()
			if !strings.Contains(out, "closure registered") {
				t.Fatalf("debug level lost: %q", out)
			}
			if !strings.HasPrefix(out, "{") {
				t.Fatalf("json format lost: %q", out)
			}
		})
	}
}

func TestWithLoggerNil(t *testing.T) {
	r := callback.NewRegistry(callback.WithLogger(nil))
	if r.Log() == nil {
		t.Fatal("nil logger must fall back to the default")
	}
}

func TestErrorMessages(t *testing.T) {
	typ := reflect.TypeFor[int]()
	for _, tt := range []struct {
		err  error
		want string
	}{
		{&callback.UnregisteredError{Type: typ}, "callback: no closure registered for int"},
		{&callback.OverwriteError{Type: typ}, "callback: slot int already occupied"},
		{&callback.OverwriteError{Type: typ, Key: "k"}, "callback: slot int[k] already occupied"},
		{&callback.OverwriteError{Type: typ, Key: callback.Opaque(nil)}, "callback: slot int already occupied"},
		{&callback.UserDataError{Type: typ, Reason: "bad"}, "callback: user data for int: bad"},
	} {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestUnregisteredLogged(t *testing.T) {
	var buf bytes.Buffer
	fresh(t, callback.WithLogLevel("error", &buf))

	type F = callback.FnMut[counterSite, callback.Tuple0, int]
	tramp := callback.Proxy0[callback.Deferred, callback.Identity[callback.Tuple0, int], F, callback.Tuple0, int, int]{}.FnMut()
	expectPanic[*callback.UnregisteredError](t, func() { tramp() })

	if !strings.Contains(buf.String(), "trampoline invoked without closure") {
		t.Fatalf("fatal condition not logged: %q", buf.String())
	}
}

type strictSite struct{}

func TestStrictUniqueWithoutUserData(t *testing.T) {
	fresh(t, callback.WithStrict(true))

	type F = callback.Fn[strictSite, callback.Tuple0, int]
	f := callback.NewFn[strictSite](func(callback.Tuple0) int { return 1 })
	callback.IntoCallback0[callback.Unique](f)

	err := expectPanic[*callback.OverwriteError](t, func() { callback.IntoCallback0[callback.Unique](f) })
	want := "callback: slot " + reflect.TypeFor[F]().String() + " already occupied"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
