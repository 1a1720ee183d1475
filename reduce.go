// reduce.go - Montgomery, Barrett, and full reduction mod q=3329.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

const (
	// montR is 2^16 mod q, the Montgomery domain's scaling constant.
	montR = 2285

	// qinv is q^-1 mod 2^16, used by montgomeryReduce.
	qinv = 62209

	// barrettV is round(2^26 / q), used by barrettReduce.
	barrettV = 20159
)

// montgomeryReduce computes a 16-bit integer congruent to a*R^-1 mod q,
// where R=2^16, and a is at most 32 bits. The result lies in
// (-q, q).
func montgomeryReduce(a int32) int16 {
	t := int16(int32(int16(a)) * qinv)
	return int16((a - int32(t)*mkemQ) >> 16)
}

// barrettReduce computes a 16-bit integer congruent to a mod q, in the
// range (-q/2, q/2].
func barrettReduce(a int16) int16 {
	t := int16((int32(barrettV) * int32(a)) >> 26)
	t *= int16(mkemQ)
	return a - t
}

// toMont converts a from the normal domain to the Montgomery domain,
// i.e. computes a*R mod q.
func toMont(a int16) int16 {
	const f = int32(1353) // 2^32 mod q
	return montgomeryReduce(f * int32(a))
}

// csubq conditionally subtracts q from a if a >= q, and nothing otherwise.
// a must lie in (-q, 2*q).
func csubq(a int16) int16 {
	a -= int16(mkemQ)
	a += (a >> 15) & int16(mkemQ)
	return a
}
