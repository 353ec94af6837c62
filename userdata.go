// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"runtime"
	"strconv"
	"sync/atomic"
	"unsafe"
)

// Opaque is the user-data pointer a C API carries alongside a function
// pointer. Wire signatures declare the user-data parameter with this type.
type Opaque unsafe.Pointer

// Pinned is a heap box whose address stays valid and pinned until Release.
// The address is what crosses the boundary as [Opaque] user data; whoever
// created the box must keep it registered until the C side stops calling.
//
// Pinned enforces affine release: Release may be called at most once;
// subsequent attempts panic (Release) or return false (TryRelease).
type Pinned[T any] struct {
	used atomic.Uintptr
	cell *cell[T]
	pin  runtime.Pinner
}

// cell keeps boxes of zero-size values at distinct addresses.
type cell[T any] struct {
	v T
	_ byte
}

// Pin boxes v and pins the box.
func Pin[T any](v T) *Pinned[T] {
	p := &Pinned[T]{cell: &cell[T]{v: v}}
	p.pin.Pin(p.cell)
	return p
}

// Ptr returns the opaque pointer to the boxed value.
func (p *Pinned[T]) Ptr() Opaque { return Opaque(unsafe.Pointer(p.cell)) }

// Value returns the boxed value. Writes through the pointer are visible to
// every later invocation.
func (p *Pinned[T]) Value() *T { return &p.cell.v }

// Release unpins the box.
// Panics if the box has already been released.
func (p *Pinned[T]) Release() {
	if p.used.Add(1) != 1 {
		panic("callback: user data released twice")
	}
	p.pin.Unpin()
}

// TryRelease attempts to unpin the box.
// Returns true on success, or false if already released.
func (p *Pinned[T]) TryRelease() bool {
	if p.used.Add(1) != 1 {
		return false
	}
	p.pin.Unpin()
	return true
}

// Released reports whether the box has been released.
func (p *Pinned[T]) Released() bool { return p.used.Load() != 0 }

// Position selects the wire parameter carrying the user-data pointer.
type Position interface {
	index(arity int) int
}

// First places user data in the first wire parameter.
type First struct{}

// Second places user data in the second wire parameter.
type Second struct{}

// Last places user data in the trailing wire parameter.
type Last struct{}

func (First) index(int) int  { return 0 }
func (Second) index(int) int { return 1 }
func (Last) index(n int) int { return n - 1 }

// Bound is the argument of a closure registered with user data: the adapted
// wire arguments and the registered user-data value.
type Bound[A, Ud any] struct {
	Args A
	Data *Ud
}

// UserFunc pairs a trampoline with the user-data pointer the C side must
// pass back to it. Pos records which wire parameter carries Data.
type UserFunc[Pos Position, Fn any] struct {
	Func Fn
	Data Opaque
}

// Index returns the zero-based wire parameter carrying Data for a signature
// of the given arity.
func (UserFunc[Pos, Fn]) Index(arity int) int {
	var pos Pos
	return pos.index(arity)
}

// bound is the combined payload registered by the user-data conversions:
// the closure and the pinned box of its user data.
type bound[F, Ud any] struct {
	f    F
	data *Pinned[Ud]
}

// Drop releases the user-data box when the payload leaves the registry.
func (b *bound[F, Ud]) Drop() { b.data.TryRelease() }

func userDataAt[P Tuple, Pos Position](p P) Opaque {
	var pos Pos
	return p.Field(pos.index(p.Arity())).(Opaque)
}

// checkPosition rejects, at registration time, a position the wire tuple P
// cannot carry user data in.
func checkPosition[F any, P Tuple, Pos Position](st Store) {
	var (
		p   P
		pos Pos
	)
	n := p.Arity()
	i := pos.index(n)
	if i < 0 || i >= n {
		badUserData[F](st, "position "+strconv.Itoa(i+1)+" out of range for arity "+strconv.Itoa(n))
	}
	if _, ok := p.Field(i).(Opaque); !ok {
		badUserData[F](st, "parameter "+strconv.Itoa(i+1)+" is not callback.Opaque")
	}
}
