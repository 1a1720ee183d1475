// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

// zetas holds precomputed powers of the primitive 256th root of unity
// mod q, in bit-reversed order and the Montgomery domain (i.e. each entry
// is zeta*R mod q, centered in (-q/2, q/2]).
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// fqmul computes montgomeryReduce(a*b).
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// nttRef computes the forward negacyclic NTT of a polynomial in place;
// input in normal order, output in bit-reversed order. Coefficients grow to
// at most 7q in absolute value; callers that need a tightly reduced result
// must call poly-level reduce afterwards.
func nttRef(r *[mkemN]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < mkemN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, r[j+length])
				r[j+length] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
}

// invnttRef computes the inverse negacyclic NTT of a polynomial in place;
// input in bit-reversed order, output in normal order. The name follows the
// reference implementation's invntt_tomont: the result is scaled by an
// extra factor of the Montgomery radix R, i.e. it returns poly*R rather
// than poly in the normal domain. Every caller treats the output as still
// being in the Montgomery domain.
func invnttRef(r *[mkemN]int16) {
	const f = int16(1441) // mont^2/128 mod q

	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < mkemN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = barrettReduce(t + r[j+length])
				r[j+length] = r[j+length] - t
				r[j+length] = fqmul(zeta, r[j+length])
			}
		}
	}

	for j := 0; j < mkemN; j++ {
		r[j] = fqmul(r[j], f)
	}
}

// basemul computes (r0,r1) = (a0,a1)*(b0,b1) mod (X^2-zeta), in the
// Montgomery domain.
func basemul(a0, a1, b0, b1, zeta int16) (int16, int16) {
	r0 := fqmul(a1, b1)
	r0 = fqmul(r0, zeta)
	r0 += fqmul(a0, b0)
	r1 := fqmul(a0, b1)
	r1 += fqmul(a1, b0)
	return r0, r1
}
