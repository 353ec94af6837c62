// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

// Call-arity capability.
//
// A closure is a Go function of one argument. Its capability tier is carried
// by its type: Fn may be called repeatedly and must not mutate captured state,
// FnMut may be called repeatedly and may mutate, FnOnce is called exactly
// once. The method sets form a strict hierarchy, {Once} ⊆ {Mut} ⊆ {Fn}:
// Fn satisfies all three constraints, FnMut satisfies CallableMut and
// CallableOnce, FnOnce satisfies only CallableOnce.
//
// The phantom type parameter K names the call site. Closures of the same
// tier and signature share one slot per scope unless their K differs:
//
//	type onPause struct{}
//	type onResume struct{}
//	callback.NewFnMut[onPause](pause)   // slot FnMut[onPause, Tuple0, Void]
//	callback.NewFnMut[onResume](resume) // slot FnMut[onResume, Tuple0, Void]

// Fn is a closure callable any number of times without mutation.
type Fn[K, A, R any] func(A) R

// FnMut is a closure callable any number of times that may mutate its
// captured state.
type FnMut[K, A, R any] func(A) R

// FnOnce is a closure callable exactly once.
type FnOnce[K, A, R any] func(A) R

// NewFn tags f as an Fn of call site K.
func NewFn[K, A, R any](f func(A) R) Fn[K, A, R] { return f }

// NewFnMut tags f as an FnMut of call site K.
func NewFnMut[K, A, R any](f func(A) R) FnMut[K, A, R] { return f }

// NewFnOnce tags f as an FnOnce of call site K.
func NewFnOnce[K, A, R any](f func(A) R) FnOnce[K, A, R] { return f }

func (f Fn[K, A, R]) Call(a A) R         { return f(a) }
func (f Fn[K, A, R]) CallMut(a A) R      { return f(a) }
func (f Fn[K, A, R]) CallOnce(a A) R     { return f(a) }
func (f FnMut[K, A, R]) CallMut(a A) R   { return f(a) }
func (f FnMut[K, A, R]) CallOnce(a A) R  { return f(a) }
func (f FnOnce[K, A, R]) CallOnce(a A) R { return f(a) }

// Callable is satisfied by closures callable repeatedly without mutation.
type Callable[A, R any] interface {
	~func(A) R
	Call(A) R
}

// CallableMut is satisfied by closures callable repeatedly.
type CallableMut[A, R any] interface {
	~func(A) R
	CallMut(A) R
}

// CallableOnce is satisfied by every closure.
type CallableOnce[A, R any] interface {
	~func(A) R
	CallOnce(A) R
}

// register stores f in the slot of its type in scope S.
// Every conversion performs exactly one such write.
func register[S Scope, F any](f F) {
	var s S
	s.Store().Save(typeOf[F](), nil, &f)
}

// registerWith pins ud and stores the combined payload of f and ud in scope S.
// The payload is keyed by the closure type and, for keyed scopes, by the
// pointer of the pinned box.
func registerWith[S Scope, Pos Position, P Tuple, F, Ud any](f F, ud Ud) *Pinned[Ud] {
	var s S
	st := s.Store()
	checkPosition[F, P, Pos](st)
	data := Pin(ud)
	defer func() {
		if e := recover(); e != nil {
			data.TryRelease()
			panic(e)
		}
	}()
	st.Save(typeOf[bound[F, Ud]](), data.Ptr(), &bound[F, Ud]{f: f, data: data})
	return data
}

// IsRegistered reports whether a closure of type F is registered in scope S.
func IsRegistered[S Scope, F any]() bool {
	var s S
	_, ok := s.Store().Load(typeOf[F](), nil)
	return ok
}

// IsRegisteredWith reports whether a closure of type F with user data of type
// Ud is registered in scope S under the user-data pointer ud.
func IsRegisteredWith[S Scope, F, Ud any](ud Opaque) bool {
	var s S
	_, ok := s.Store().Load(typeOf[bound[F, Ud]](), ud)
	return ok
}

// Clean drops the closure of type F registered in scope S and reports
// whether there was one. Call it when the C side is told to forget the
// callback, so the closure does not linger until overwritten.
func Clean[S Scope, F any]() bool {
	var s S
	return s.Store().Delete(typeOf[F](), nil)
}

// CleanWith drops the closure of type F registered with user data of type Ud
// under the user-data pointer ud, releasing the user-data box.
func CleanWith[S Scope, F, Ud any](ud Opaque) bool {
	var s S
	return s.Store().Delete(typeOf[bound[F, Ud]](), ud)
}
