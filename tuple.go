// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "strconv"

// Tuple is implemented by the wire parameter tuples Tuple0 through Tuple11.
// Trampolines pack their parameters into a tuple before adaptation, so one
// generic body serves every arity.
type Tuple interface {
	// Arity returns the number of parameters.
	Arity() int
	// Field returns parameter i (zero-based).
	Field(i int) any
}

// Void is the result of closures and wire signatures that return nothing.
type Void = struct{}

func fieldOutOfRange(i, n int) string {
	return "callback: tuple field " + strconv.Itoa(i) + " out of range for arity " + strconv.Itoa(n)
}
