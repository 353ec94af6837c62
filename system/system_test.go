// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package system_test

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/callback"
	mock_system "code.hybscloud.com/callback/internal/mock/system"
	"code.hybscloud.com/callback/system"
)

func bootstrap(t *testing.T) (*system.System, *mock_system.MockAPI) {
	t.Helper()
	api := mock_system.NewMockAPI(gomock.NewController(t))
	return system.Bootstrap(api, callback.WithLogLevel("debug", io.Discard)), api
}

func cstr(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

// requireUnregistered asserts that f panics because its closure is gone.
func requireUnregistered(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		var err *callback.UnregisteredError
		require.True(t, errors.As(asError(recover()), &err), "expected *callback.UnregisteredError")
	}()
	f()
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return nil
}

func TestUpdateHandler(t *testing.T) {
	s, api := bootstrap(t)

	var (
		update callback.UnsafeFunc1[callback.Opaque, int32]
		data   callback.Opaque
	)
	gomock.InOrder(
		api.EXPECT().SetUpdateCallback(gomock.Any(), gomock.Any()).
			Do(func(f callback.UnsafeFunc1[callback.Opaque, int32], ud callback.Opaque) {
				update, data = f, ud
			}),
		api.EXPECT().SetUpdateCallback(gomock.Nil(), gomock.Any()),
	)

	system.SetUpdateHandler(s, 0, func(frame *int) bool {
		*frame++
		return *frame%2 == 0
	})
	require.NotNil(t, update)
	require.NotNil(t, data)

	assert.Equal(t, int32(0), update(data))
	assert.Equal(t, int32(1), update(data))
	assert.Equal(t, int32(0), update(data))

	s.ClearUpdateHandler()
	requireUnregistered(t, func() { update(data) })

	// Clearing twice does not call the vendor again.
	s.ClearUpdateHandler()
	s.Shutdown()
}

func TestUpdateHandlerReplace(t *testing.T) {
	s, api := bootstrap(t)

	var updates []callback.UnsafeFunc1[callback.Opaque, int32]
	var datas []callback.Opaque
	record := func(f callback.UnsafeFunc1[callback.Opaque, int32], ud callback.Opaque) {
		updates = append(updates, f)
		datas = append(datas, ud)
	}
	gomock.InOrder(
		api.EXPECT().SetUpdateCallback(gomock.Any(), gomock.Any()).Do(record),
		api.EXPECT().SetUpdateCallback(gomock.Nil(), gomock.Any()),
		api.EXPECT().SetUpdateCallback(gomock.Any(), gomock.Any()).Do(record),
		api.EXPECT().SetUpdateCallback(gomock.Nil(), gomock.Any()),
	)

	system.SetUpdateHandler(s, "first", func(*string) bool { return false })
	system.SetUpdateHandler(s, "second", func(name *string) bool { return *name == "second" })

	require.Len(t, updates, 2)
	assert.Equal(t, int32(1), updates[1](datas[1]))

	// The first handler's user data was released with its registration.
	defer func() {
		var err *callback.UserDataError
		assert.True(t, errors.As(asError(recover()), &err), "expected *callback.UserDataError")
		s.Shutdown()
	}()
	updates[1](datas[0])
}

func TestSerialMessageHandler(t *testing.T) {
	s, api := bootstrap(t)
	defer s.Shutdown()

	var listener callback.Func1[*byte, callback.Void]
	gomock.InOrder(
		api.EXPECT().SetSerialMessageCallback(gomock.Not(gomock.Nil())).
			Do(func(f callback.Func1[*byte, callback.Void]) { listener = f }),
		api.EXPECT().SetSerialMessageCallback(gomock.Nil()),
	)

	var got []string
	s.SetSerialMessageHandler(func(msg string) { got = append(got, msg) })
	require.NotNil(t, listener)

	buf := []byte("ping\x00")
	listener(&buf[0])
	copy(buf, "pong")
	listener(&buf[0])
	listener(cstr(""))

	assert.Equal(t, []string{"ping", "pong", ""}, got)

	s.SetSerialMessageHandler(nil)
	requireUnregistered(t, func() { listener(cstr("late")) })
}

func TestMenuItems(t *testing.T) {
	s, api := bootstrap(t)
	defer s.Shutdown()

	type entry struct {
		fn   callback.UnsafeFunc1[callback.Opaque, callback.Void]
		data callback.Opaque
	}
	var entries []entry
	record := func(_ string, f callback.UnsafeFunc1[callback.Opaque, callback.Void], ud callback.Opaque) {
		entries = append(entries, entry{f, ud})
	}
	api.EXPECT().AddMenuItem("volume", gomock.Any(), gomock.Any()).Do(record).Return(system.MenuItemRef(1))
	api.EXPECT().AddMenuItem("speed", gomock.Any(), gomock.Any()).Do(record).Return(system.MenuItemRef(2))
	api.EXPECT().RemoveMenuItem(system.MenuItemRef(1))

	var selected []string
	h := func(item *system.MenuItem, n *int) {
		*n++
		selected = append(selected, item.Title())
	}

	volume, err := system.AddMenuItem(s, "volume", 10, h)
	require.NoError(t, err)
	speed, err := system.AddMenuItem(s, "speed", 20, h)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].data, entries[1].data)
	assert.Equal(t, system.MenuItemRef(2), speed.Ref())

	// Both items share one closure type and coexist in the unique scope.
	entries[1].fn(entries[1].data)
	entries[0].fn(entries[0].data)
	entries[1].fn(entries[1].data)
	assert.Equal(t, []string{"speed", "volume", "speed"}, selected)
	assert.Equal(t, 22, *(*int)(entries[1].data))

	require.NoError(t, volume.Remove())
	assert.Zero(t, volume.Ref())
	requireUnregistered(t, func() { entries[0].fn(entries[0].data) })
	entries[1].fn(entries[1].data)
	assert.Len(t, selected, 4)

	assert.Error(t, volume.Remove())
}

func TestMenuItemNullHandle(t *testing.T) {
	s, api := bootstrap(t)
	defer s.Shutdown()

	api.EXPECT().AddMenuItem("full", gomock.Any(), gomock.Any()).Return(system.MenuItemRef(0))

	item, err := system.AddMenuItem(s, "full", struct{}{}, func(*system.MenuItem, *struct{}) {})
	assert.Nil(t, item)
	assert.ErrorContains(t, err, "null handle")
	assert.Zero(t, callback.Default().Len())
}

func TestServerTime(t *testing.T) {
	s, api := bootstrap(t)
	defer s.Shutdown()

	var done callback.Func2[*byte, *byte, callback.Void]
	api.EXPECT().GetServerTime(gomock.Any()).
		Do(func(f callback.Func2[*byte, *byte, callback.Void]) { done = f }).
		Times(2)

	var results []system.ServerTimeResult
	s.ServerTime(func(r system.ServerTimeResult) { results = append(results, r) })
	done(cstr("2026-10-18T09:30:00Z"), nil)
	requireUnregistered(t, func() { done(cstr("2026-10-18T09:30:01Z"), nil) })

	s.ServerTime(func(r system.ServerTimeResult) { results = append(results, r) })
	done(nil, cstr("offline"))

	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	assert.True(t, results[0].Time.Equal(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)))
	assert.EqualError(t, results[1].Err, "server time: offline")
}

func TestServerTimeMalformed(t *testing.T) {
	s, api := bootstrap(t)
	defer s.Shutdown()

	var done callback.Func2[*byte, *byte, callback.Void]
	api.EXPECT().GetServerTime(gomock.Any()).
		Do(func(f callback.Func2[*byte, *byte, callback.Void]) { done = f })

	var got system.ServerTimeResult
	s.ServerTime(func(r system.ServerTimeResult) { got = r })
	done(cstr("yesterday"), nil)

	assert.Error(t, got.Err)
	assert.True(t, got.Time.IsZero())
}
