// zeroize.go - Secret wiping helpers.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

// zeroizeBytes overwrites b with zeros.
func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroizePoly overwrites p's coefficients with zeros.
func zeroizePoly(p *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

// zeroizePolyVec overwrites every element of v with zeros.
func zeroizePolyVec(v *polyVec) {
	for _, p := range v.vec {
		zeroizePoly(p)
	}
}
