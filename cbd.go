// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

// loadLittleEndian loads up to 8 bytes into a 64-bit integer in
// little-endian order.
func loadLittleEndian(x []byte, bytes int) uint64 {
	var r uint64
	for i, v := range x[:bytes] {
		r |= uint64(v) << (8 * uint(i))
	}
	return r
}

// cbd samples a polynomial with coefficients distributed according to a
// centered binomial distribution with parameter eta, from a buffer of
// eta*mkemN/4 uniformly random bytes.
func (p *poly) cbd(buf []byte, eta int) {
	hardwareAccelImpl.cbdFn(p, buf, eta)
}

func cbdRef(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		for i := 0; i < mkemN/8; i++ {
			t := uint32(loadLittleEndian(buf[4*i:], 4))
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555

			for j := 0; j < 8; j++ {
				a := int16((d >> uint(4*j+0)) & 0x3)
				b := int16((d >> uint(4*j+2)) & 0x3)
				p.coeffs[8*i+j] = a - b
			}
		}
	case 3:
		var a, b [4]uint32
		for i := 0; i < mkemN/4; i++ {
			t := loadLittleEndian(buf[3*i:], 3)
			var d uint32
			for j := 0; j < 3; j++ {
				d += uint32((t >> uint(j)) & 0x249249)
			}

			a[0] = d & 0x7
			b[0] = (d >> 3) & 0x7
			a[1] = (d >> 6) & 0x7
			b[1] = (d >> 9) & 0x7
			a[2] = (d >> 12) & 0x7
			b[2] = (d >> 15) & 0x7
			a[3] = (d >> 18) & 0x7
			b[3] = d >> 21

			p.coeffs[4*i+0] = int16(a[0]) - int16(b[0])
			p.coeffs[4*i+1] = int16(a[1]) - int16(b[1])
			p.coeffs[4*i+2] = int16(a[2]) - int16(b[2])
			p.coeffs[4*i+3] = int16(a[3]) - int16(b[3])
		}
	default:
		panic("mkem: eta must be in {2,3}")
	}
}

// getNoise samples a polynomial deterministically from a seed and a nonce
// via the PRF, with coefficients close to a centered binomial distribution
// with parameter eta.
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	buf := make([]byte, eta*mkemN/4)
	prf(buf, seed, nonce)
	p.cbd(buf, eta)
}
