// sample.go - Uniform and matrix/vector expansion from a seed.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

// xofBlockBytes is the chunk size read from the XOF per squeeze, one
// SHAKE128 rate's worth. A squeeze yields at most 112 candidates, so
// expandPoly squeezes several times to collect all 256 coefficients.
const xofBlockBytes = 168

// rejUniform rejection-samples buf (a buffer of uniformly random bytes)
// into r, 12 bits at a time, discarding candidates >= q. Returns the number
// of coefficients written, which is min(len(r), <all accepted candidates>).
func rejUniform(r []int16, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(r) && pos+3 <= len(buf) {
		val0 := (uint16(buf[pos]) | (uint16(buf[pos+1]) << 8)) & 0xfff
		val1 := (uint16(buf[pos+1])>>4 | (uint16(buf[pos+2]) << 4)) & 0xfff
		pos += 3

		if val0 < mkemQ {
			r[ctr] = int16(val0)
			ctr++
		}
		if ctr < len(r) && val1 < mkemQ {
			r[ctr] = int16(val1)
			ctr++
		}
	}
	return ctr
}

// expandPoly deterministically samples a uniform-looking polynomial from
// the SHAKE128 XOF absorbed with seed || extra.
func expandPoly(p *poly, seed []byte, extra ...byte) {
	h := xofAbsorb(seed, extra...)

	buf := make([]byte, xofBlockBytes)
	ctr := 0
	for ctr < mkemN {
		h.Read(buf) //nolint:errcheck
		ctr += rejUniform(p.coeffs[ctr:], buf)
	}
}

// genMatrix deterministically generates the public K*K matrix A (or its
// transpose) from a seed; entry (i,j) is expanded from seed||j||i (or
// seed||i||j when transposed), matching the reference's xof_absorb byte
// order.
func genMatrix(seed []byte, k int, transposed bool) []*polyVec {
	a := make([]*polyVec, k)
	for i := 0; i < k; i++ {
		a[i] = newPolyVec(k)
		for j := 0; j < k; j++ {
			if transposed {
				expandPoly(a[i].vec[j], seed, byte(i), byte(j))
			} else {
				expandPoly(a[i].vec[j], seed, byte(j), byte(i))
			}
		}
	}
	return a
}

// genPolyVec deterministically generates a vector of K uniform-looking
// polynomials from a seed ("Expand" in the design notes): entry i is
// expanded from seed||0||i.
func genPolyVec(seed []byte, k int) *polyVec {
	v := newPolyVec(k)
	for i := 0; i < k; i++ {
		expandPoly(v.vec[i], seed, 0, byte(i))
	}
	return v
}
