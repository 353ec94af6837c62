// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "unsafe"

// Adapter converts wire parameters into the argument a closure expects, and
// the closure's result into the wire result.
//
// Adapters are zero-size types passed as type arguments. Selection is static:
// a conversion that names an adapter whose Convert does not accept the wire
// tuple P does not compile. Both methods must be total; there is no error
// channel.
//
//   - P: wire parameter tuple (e.g. Tuple2[int32, *byte])
//   - A: closure argument
//   - R: closure result
//   - CR: wire result
type Adapter[P, A, R, CR any] interface {
	Convert(P) A
	Result(R) CR
}

// Identity passes wire parameters and results through unchanged.
type Identity[P, R any] struct{}

func (Identity[P, R]) Convert(p P) P { return p }
func (Identity[P, R]) Result(r R) R  { return r }

// SameResult is an embeddable zero-size type providing an identity Result
// method. Embed SameResult[R] in an adapter that only reshapes arguments.
//
// Example:
//
//	type firstOnly struct{ callback.SameResult[int32] }
//	func (firstOnly) Convert(p callback.Tuple2[int32, int32]) int32 { return p.V1 }
type SameResult[R any] struct{}

// Result returns r unchanged.
func (SameResult[R]) Result(r R) R { return r }

// CString converts a NUL-terminated C string parameter into a string that
// borrows the C memory. The string is only valid during the call.
type CString[R any] struct{ SameResult[R] }

func (CString[R]) Convert(p Tuple1[*byte]) string { return BorrowCString(p.V1) }

// CStringOwned converts a NUL-terminated C string parameter into a Go-owned
// copy that outlives the call.
type CStringOwned[R any] struct{ SameResult[R] }

func (CStringOwned[R]) Convert(p Tuple1[*byte]) string { return CopyCString(p.V1) }

// BorrowCString returns the NUL-terminated string at p without copying.
// A nil p yields "".
func BorrowCString(p *byte) string {
	if p == nil {
		return ""
	}
	return unsafe.String(p, cstrlen(p))
}

// CopyCString returns a Go-owned copy of the NUL-terminated string at p.
func CopyCString(p *byte) string {
	if p == nil {
		return ""
	}
	return string(unsafe.Slice(p, cstrlen(p)))
}

func cstrlen(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}
