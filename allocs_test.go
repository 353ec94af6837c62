// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"code.hybscloud.com/callback"
	"testing"
)

type allocSite struct{}

func TestInvokeAllocations(t *testing.T) {
	fresh(t)

	total := 0
	mut := callback.IntoCallbackMut2[callback.Deferred](
		callback.NewFnMut[allocSite](func(p callback.Tuple2[int, int]) int {
			total += p.V1 + p.V2
			return total
		}))
	allocs := testing.AllocsPerRun(100, func() {
		_ = mut(1, 2)
	})
	if allocs > 0 {
		t.Errorf("FnMut trampoline allocs = %v; want 0", allocs)
	}

	fn := callback.IntoCallback1[callback.Deferred](
		callback.NewFn[allocSite](func(p callback.Tuple1[int]) int { return p.V1 + 1 }))
	allocs2 := testing.AllocsPerRun(100, func() {
		_ = fn(41)
	})
	if allocs2 > 0 {
		t.Errorf("Fn trampoline allocs = %v; want 0", allocs2)
	}
}
