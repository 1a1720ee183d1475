// ct.go - Constant-time helpers.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

import "crypto/subtle"

// ctVerify reports whether a and b are equal, in constant time with respect
// to their contents (but not their lengths).
func ctVerify(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ctSelect sets dst to x if v == 1, and to y if v == 0, without branching
// on v. v must be 0 or 1; x, y, and dst must have equal length.
func ctSelect(dst, x, y []byte, v int) {
	copy(dst, y)
	subtle.ConstantTimeCopy(v, dst, x)
}
