// polyvec.go - Vector of mKEM polynomials.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

// polyVec is a vector of K polynomials, an element of R_q^K.
type polyVec struct {
	vec []*poly
}

func newPolyVec(k int) *polyVec {
	v := &polyVec{vec: make([]*poly, k)}
	for i := range v.vec {
		v.vec[i] = new(poly)
	}
	return v
}

// toBytes serializes a vector of polynomials.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polyBytes:])
	}
}

// fromBytes deserializes a vector of polynomials; inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polyBytes:])
	}
}

// compress serializes a lossily-compressed vector of polynomials, d bits
// per coefficient.
func (v *polyVec) compress(r []byte, d int) {
	perPoly := mkemN * d / 8
	for i, p := range v.vec {
		p.compress(r[i*perPoly:(i+1)*perPoly], d)
	}
}

// decompress deserializes a d-bit-per-coefficient compressed vector of
// polynomials; approximate inverse of compress.
func (v *polyVec) decompress(a []byte, d int) {
	perPoly := mkemN * d / 8
	for i, p := range v.vec {
		p.decompress(a[i*perPoly:(i+1)*perPoly], d)
	}
}

// ntt applies the forward NTT to every element.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT (tomont semantics) to every element.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// reduce applies Barrett reduction to every coefficient of every element.
func (v *polyVec) reduce() {
	for _, p := range v.vec {
		p.reduce()
	}
}

// add computes v = a + b.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// sub computes v = a - b.
func (v *polyVec) sub(a, b *polyVec) {
	for i, p := range v.vec {
		p.sub(a.vec[i], b.vec[i])
	}
}

// cmov conditionally overwrites v's coefficients with a's, iff b==1,
// without branching on b.
func (v *polyVec) cmov(a *polyVec, b uint16) {
	for i, p := range v.vec {
		p.cmov(a.vec[i], b)
	}
}

// cswap conditionally swaps the contents of v and a, iff b==1, without
// branching on b.
func (v *polyVec) cswap(a *polyVec, b uint16) {
	mask := int16(-int16(b & 1))
	for i, p := range v.vec {
		for j := range p.coeffs {
			t := mask & (p.coeffs[j] ^ a.vec[i].coeffs[j])
			p.coeffs[j] ^= t
			a.vec[i].coeffs[j] ^= t
		}
	}
}

// basemulAcc computes p = sum_i a[i]*b[i], the NTT-domain dot product of
// two polynomial vectors, in the Montgomery domain.
func (p *poly) basemulAcc(a, b *polyVec) {
	hardwareAccelImpl.basemulAccFn(p, a, b)
}

func basemulAccRef(p *poly, a, b *polyVec) {
	var t poly
	p.basemulAccMontgomery(a.vec[0], b.vec[0])
	for i := 1; i < len(a.vec); i++ {
		t.basemulAccMontgomery(a.vec[i], b.vec[i])
		p.add(p, &t)
	}
	p.reduce()
}

// compressedSize returns the serialized, d-bit-per-coefficient compressed
// size of v in bytes.
func (v *polyVec) compressedSize(d int) int {
	return len(v.vec) * (mkemN * d / 8)
}
