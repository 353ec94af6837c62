// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

const tupleTemplate = `
{{range .}}{{if eq .N 0}}
// Tuple0 is the empty wire parameter list.
type Tuple0 struct{}

func (Tuple0) Arity() int { return 0 }

func (Tuple0) Field(i int) any { panic(fieldOutOfRange(i, 0)) }
{{else}}
// Tuple{{.N}} is a wire parameter list of arity {{.N}}.
type Tuple{{.N}}[{{.Types}} any] struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}

func ({{.Tuple}}) Arity() int { return {{.N}} }

func (t {{.Tuple}}) Field(i int) any {
	switch i {
{{range .Fields}}	case {{.Index}}:
		return t.{{.Name}}
{{end}}	}
	panic(fieldOutOfRange(i, {{.N}}))
}
{{end}}{{end}}`

const funcTemplate = `
{{range .}}
// Func{{.N}} is a trampoline for a wire signature of arity {{.N}}.
type Func{{.N}}[{{.TypeParams}}R any] func({{.Types}}) R

// UnsafeFunc{{.N}} is Func{{.N}} for APIs that take unchecked function pointers.
type UnsafeFunc{{.N}}[{{.TypeParams}}R any] func({{.Types}}) R

// Unsafe relabels f without changing it.
func (f Func{{.N}}[{{.TypeParams}}R]) Unsafe() UnsafeFunc{{.N}}[{{.TypeParams}}R] {
	return UnsafeFunc{{.N}}[{{.TypeParams}}R](f)
}

// Safe relabels f without changing it.
func (f UnsafeFunc{{.N}}[{{.TypeParams}}R]) Safe() Func{{.N}}[{{.TypeParams}}R] {
	return Func{{.N}}[{{.TypeParams}}R](f)
}
{{end}}`

const proxyTemplate = `
{{range .}}
// Proxy{{.N}} generates trampolines of arity {{.N}} for closures of type F
// registered in scope S, adapted by Ad.
type Proxy{{.N}}[S Scope, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(A) R, {{.TypeParams}}A, R, CR any] struct{}

// FnFn returns the trampoline that calls the closure in place.
func (px Proxy{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR]) FnFn() {{.Func "CR"}} {
	return trampoline(px, fnFnFlavour, fnFn{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR])
}

// FnMut returns the trampoline that calls the closure through its slot.
func (px Proxy{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR]) FnMut() {{.Func "CR"}} {
	return trampoline(px, fnMutFlavour, fnMut{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR])
}

// FnOnce returns the trampoline that removes the closure and calls it.
func (px Proxy{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR]) FnOnce() {{.Func "CR"}} {
	return trampoline(px, fnOnceFlavour, fnOnce{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR])
}

func fnFn{{.N}}[S Scope, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(A) R, {{.TypeParams}}A, R, CR any]({{.Params}}) CR {
	return invokeFn[S, Ad, F, {{.Tuple}}, A, R, CR]({{.Tuple}}{ {{- .Args -}} })
}

func fnMut{{.N}}[S Scope, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(A) R, {{.TypeParams}}A, R, CR any]({{.Params}}) CR {
	return invokeMut[S, Ad, F, {{.Tuple}}, A, R, CR]({{.Tuple}}{ {{- .Args -}} })
}

func fnOnce{{.N}}[S Scope, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(A) R, {{.TypeParams}}A, R, CR any]({{.Params}}) CR {
	return invokeOnce[S, Ad, F, {{.Tuple}}, A, R, CR]({{.Tuple}}{ {{- .Args -}} })
}
{{if gt .N 0}}
// ProxyWith{{.N}} generates trampolines of arity {{.N}} for closures registered
// with user data carried in the wire parameter selected by Pos.
type ProxyWith{{.N}}[S Scope, Pos Position, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(Bound[A, Ud]) R, {{.TypeParams}}A, Ud, R, CR any] struct{}

// FnFn returns the trampoline that calls the closure in place.
func (px ProxyWith{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR]) FnFn() {{.Func "CR"}} {
	return trampoline(px, fnFnFlavour, withFn{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR])
}

// FnMut returns the trampoline that calls the closure through its slot.
func (px ProxyWith{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR]) FnMut() {{.Func "CR"}} {
	return trampoline(px, fnMutFlavour, withMut{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR])
}

// FnOnce returns the trampoline that removes the closure, calls it and
// releases its user data.
func (px ProxyWith{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR]) FnOnce() {{.Func "CR"}} {
	return trampoline(px, fnOnceFlavour, withOnce{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR])
}

func withFn{{.N}}[S Scope, Pos Position, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(Bound[A, Ud]) R, {{.TypeParams}}A, Ud, R, CR any]({{.Params}}) CR {
	return invokeWithFn[S, Pos, Ad, F, {{.Tuple}}, A, Ud, R, CR]({{.Tuple}}{ {{- .Args -}} })
}

func withMut{{.N}}[S Scope, Pos Position, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(Bound[A, Ud]) R, {{.TypeParams}}A, Ud, R, CR any]({{.Params}}) CR {
	return invokeWithMut[S, Pos, Ad, F, {{.Tuple}}, A, Ud, R, CR]({{.Tuple}}{ {{- .Args -}} })
}

func withOnce{{.N}}[S Scope, Pos Position, Ad Adapter[{{.Tuple}}, A, R, CR], F ~func(Bound[A, Ud]) R, {{.TypeParams}}A, Ud, R, CR any]({{.Params}}) CR {
	return invokeWithOnce[S, Pos, Ad, F, {{.Tuple}}, A, Ud, R, CR]({{.Tuple}}{ {{- .Args -}} })
}
{{end}}{{end}}`

const intoTemplate = `
{{range .}}
// IntoCallback{{.N}} registers f in scope S and returns a trampoline of
// arity {{.N}} that calls it in place.
func IntoCallback{{.N}}[S Scope, F Callable[{{.Tuple}}, R], {{.TypeParams}}R any](f F) {{.Func "R"}} {
	register[S](f)
	return Proxy{{.N}}[S, Identity[{{.Tuple}}, R], F, {{.TypeParams}}{{.Tuple}}, R, R]{}.FnFn()
}

// IntoCallbackMut{{.N}} registers f in scope S and returns a trampoline of
// arity {{.N}} that calls it repeatedly through its slot.
func IntoCallbackMut{{.N}}[S Scope, F CallableMut[{{.Tuple}}, R], {{.TypeParams}}R any](f F) {{.Func "R"}} {
	register[S](f)
	return Proxy{{.N}}[S, Identity[{{.Tuple}}, R], F, {{.TypeParams}}{{.Tuple}}, R, R]{}.FnMut()
}

// IntoCallbackOnce{{.N}} registers f in scope S and returns a trampoline of
// arity {{.N}} that removes it and calls it once.
func IntoCallbackOnce{{.N}}[S Scope, F CallableOnce[{{.Tuple}}, R], {{.TypeParams}}R any](f F) {{.Func "R"}} {
	register[S](f)
	return Proxy{{.N}}[S, Identity[{{.Tuple}}, R], F, {{.TypeParams}}{{.Tuple}}, R, R]{}.FnOnce()
}

// AdaptCallback{{.N}} is IntoCallback{{.N}} with wire parameters and result
// converted by Ad.
func AdaptCallback{{.N}}[S Scope, Ad Adapter[{{.Tuple}}, A, R, CR], {{.TypeParams}}CR any, F Callable[A, R], A, R any](f F) {{.Func "CR"}} {
	register[S](f)
	return Proxy{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR]{}.FnFn()
}

// AdaptCallbackMut{{.N}} is IntoCallbackMut{{.N}} with wire parameters and
// result converted by Ad.
func AdaptCallbackMut{{.N}}[S Scope, Ad Adapter[{{.Tuple}}, A, R, CR], {{.TypeParams}}CR any, F CallableMut[A, R], A, R any](f F) {{.Func "CR"}} {
	register[S](f)
	return Proxy{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR]{}.FnMut()
}

// AdaptCallbackOnce{{.N}} is IntoCallbackOnce{{.N}} with wire parameters and
// result converted by Ad.
func AdaptCallbackOnce{{.N}}[S Scope, Ad Adapter[{{.Tuple}}, A, R, CR], {{.TypeParams}}CR any, F CallableOnce[A, R], A, R any](f F) {{.Func "CR"}} {
	register[S](f)
	return Proxy{{.N}}[S, Ad, F, {{.TypeParams}}A, R, CR]{}.FnOnce()
}
{{if gt .N 0}}
// IntoCallbackWith{{.N}} registers f with user data ud in scope S and returns
// a trampoline of arity {{.N}} that calls it in place, paired with the
// user-data pointer to pass at Pos.
func IntoCallbackWith{{.N}}[S Scope, Pos Position, F Callable[Bound[{{.Tuple}}, Ud], R], {{.TypeParams}}Ud, R any](f F, ud Ud) UserFunc[Pos, {{.Func "R"}}] {
	data := registerWith[S, Pos, {{.Tuple}}](f, ud)
	return UserFunc[Pos, {{.Func "R"}}]{
		Func: ProxyWith{{.N}}[S, Pos, Identity[{{.Tuple}}, R], F, {{.TypeParams}}{{.Tuple}}, Ud, R, R]{}.FnFn(),
		Data: data.Ptr(),
	}
}

// IntoCallbackMutWith{{.N}} is IntoCallbackWith{{.N}} for closures called
// repeatedly through their slot.
func IntoCallbackMutWith{{.N}}[S Scope, Pos Position, F CallableMut[Bound[{{.Tuple}}, Ud], R], {{.TypeParams}}Ud, R any](f F, ud Ud) UserFunc[Pos, {{.Func "R"}}] {
	data := registerWith[S, Pos, {{.Tuple}}](f, ud)
	return UserFunc[Pos, {{.Func "R"}}]{
		Func: ProxyWith{{.N}}[S, Pos, Identity[{{.Tuple}}, R], F, {{.TypeParams}}{{.Tuple}}, Ud, R, R]{}.FnMut(),
		Data: data.Ptr(),
	}
}

// IntoCallbackOnceWith{{.N}} is IntoCallbackWith{{.N}} for closures called
// once; the user data is released after the call.
func IntoCallbackOnceWith{{.N}}[S Scope, Pos Position, F CallableOnce[Bound[{{.Tuple}}, Ud], R], {{.TypeParams}}Ud, R any](f F, ud Ud) UserFunc[Pos, {{.Func "R"}}] {
	data := registerWith[S, Pos, {{.Tuple}}](f, ud)
	return UserFunc[Pos, {{.Func "R"}}]{
		Func: ProxyWith{{.N}}[S, Pos, Identity[{{.Tuple}}, R], F, {{.TypeParams}}{{.Tuple}}, Ud, R, R]{}.FnOnce(),
		Data: data.Ptr(),
	}
}

// AdaptCallbackWith{{.N}} is IntoCallbackWith{{.N}} with wire parameters and
// result converted by Ad.
func AdaptCallbackWith{{.N}}[S Scope, Pos Position, Ad Adapter[{{.Tuple}}, A, R, CR], {{.TypeParams}}CR any, F Callable[Bound[A, Ud], R], A, Ud, R any](f F, ud Ud) UserFunc[Pos, {{.Func "CR"}}] {
	data := registerWith[S, Pos, {{.Tuple}}](f, ud)
	return UserFunc[Pos, {{.Func "CR"}}]{
		Func: ProxyWith{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR]{}.FnFn(),
		Data: data.Ptr(),
	}
}

// AdaptCallbackMutWith{{.N}} is IntoCallbackMutWith{{.N}} with wire
// parameters and result converted by Ad.
func AdaptCallbackMutWith{{.N}}[S Scope, Pos Position, Ad Adapter[{{.Tuple}}, A, R, CR], {{.TypeParams}}CR any, F CallableMut[Bound[A, Ud], R], A, Ud, R any](f F, ud Ud) UserFunc[Pos, {{.Func "CR"}}] {
	data := registerWith[S, Pos, {{.Tuple}}](f, ud)
	return UserFunc[Pos, {{.Func "CR"}}]{
		Func: ProxyWith{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR]{}.FnMut(),
		Data: data.Ptr(),
	}
}

// AdaptCallbackOnceWith{{.N}} is IntoCallbackOnceWith{{.N}} with wire
// parameters and result converted by Ad.
func AdaptCallbackOnceWith{{.N}}[S Scope, Pos Position, Ad Adapter[{{.Tuple}}, A, R, CR], {{.TypeParams}}CR any, F CallableOnce[Bound[A, Ud], R], A, Ud, R any](f F, ud Ud) UserFunc[Pos, {{.Func "CR"}}] {
	data := registerWith[S, Pos, {{.Tuple}}](f, ud)
	return UserFunc[Pos, {{.Func "CR"}}]{
		Func: ProxyWith{{.N}}[S, Pos, Ad, F, {{.TypeParams}}A, Ud, R, CR]{}.FnOnce(),
		Data: data.Ptr(),
	}
}
{{end}}{{end}}`
