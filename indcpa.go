// indcpa.go - multi-recipient IND-CPA encryption scheme underlying mKEM.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// indcpaPublicKey is a packed public key together with its cached hash,
// H(pk). The CCA wrapper in kem.go does not read the cached hash.
type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = sha3.Sum256(b)

	return nil
}

// indcpaSecretKey is a packed (polyvec || flip-bit) IND-CPA secret key.
type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// packPublicKey serializes pkpv || fakeseed.
func packPublicKey(r []byte, pkpv *polyVec, fakeseed []byte) {
	pkpv.toBytes(r)
	copy(r[len(pkpv.vec)*polyBytes:], fakeseed[:SymSize])
}

// unpackPublicKey reconstructs the two halves of the derandomized public
// key: pk0 is the stored polyvec, and pk1 = pk0 + Expand(H(fakeseed)), the
// "fake" offset polyvec. Both are left in the canonical [0,q) range.
func unpackPublicKey(pk0, pk1 *polyVec, packedPk []byte, k int) {
	pk0.fromBytes(packedPk)

	fake := genPolyVec(packedPk[k*polyBytes:k*polyBytes+SymSize], k)
	pk1.add(fake, pk0)
	pk1.reduce()
}

// packSecretKey serializes skpv || b (the flip bit).
func packSecretKey(r []byte, skpv *polyVec, b byte) {
	skpv.toBytes(r)
	r[len(r)-1] = b
}

// unpackSecretKey deserializes skpv and the flip bit b; inverse of
// packSecretKey.
func unpackSecretKey(skpv *polyVec, packedSk []byte) (b byte) {
	skpv.fromBytes(packedSk)
	return packedSk[len(packedSk)-1]
}

// indcpaKeyPair generates a derandomized multi-recipient IND-CPA keypair.
// publicSeed is the batch-wide matrix seed shared by every recipient.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader, publicSeed []byte) (*indcpaPublicKey, *indcpaSecretKey, error) {
	noiseSeed := make([]byte, SymSize+1)
	if _, err := io.ReadFull(rng, noiseSeed); err != nil {
		return nil, nil, err
	}

	a := genMatrix(publicSeed, p.k, false)

	skpv := newPolyVec(p.k)
	defer zeroizePolyVec(skpv)
	var nonce byte
	for _, pv := range skpv.vec {
		pv.getNoise(noiseSeed[:SymSize], nonce, p.eta1)
		nonce++
	}
	e := newPolyVec(p.k)
	defer zeroizePolyVec(e)
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed[:SymSize], nonce, p.eta1)
		nonce++
	}

	skpv.ntt()
	skpv.reduce()
	e.ntt()

	pkpv := newPolyVec(p.k)
	for i, pv := range pkpv.vec {
		pv.basemulAcc(a[i], skpv)
		pv.toMont()
	}
	pkpv.add(pkpv, e)
	pkpv.reduce()

	fakeSeed := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, fakeSeed); err != nil {
		return nil, nil, err
	}
	// Hash the random fake seed before ever using or storing it; the
	// packed public key stores H(fakeSeed), never the raw seed (see
	// Open Question resolution #3 in DESIGN.md).
	hashH(fakeSeed, fakeSeed)

	fakePkpv := genPolyVec(fakeSeed, p.k)
	defer zeroizePolyVec(fakePkpv)
	fakePkpv.sub(pkpv, fakePkpv)
	fakePkpv.reduce()

	flip := noiseSeed[SymSize] & 1
	pkpv.cmov(fakePkpv, uint16(flip))

	sk := &indcpaSecretKey{packed: make([]byte, p.indcpaSecretKeySize)}
	pk := &indcpaPublicKey{packed: make([]byte, p.indcpaPublicKeySize)}

	packSecretKey(sk.packed, skpv, flip)
	packPublicKey(pk.packed, pkpv, fakeSeed)
	pk.h = sha3.Sum256(pk.packed)

	return pk, sk, nil
}

// indcpaEncC1 generates the batch-shared ciphertext component c1, and the
// ephemeral secret state fwd that EncapsulateC2 needs to derive each
// recipient's c2 without re-deriving (sp0, sp1) from scratch.
func (p *ParameterSet) indcpaEncC1(c1, fwd []byte, seed, coins []byte) {
	at := genMatrix(seed, p.k, true)

	sp0, sp1 := newPolyVec(p.k), newPolyVec(p.k)
	ep0, ep1 := newPolyVec(p.k), newPolyVec(p.k)
	defer zeroizePolyVec(sp0)
	defer zeroizePolyVec(sp1)
	defer zeroizePolyVec(ep0)
	defer zeroizePolyVec(ep1)

	var nonce byte
	for _, pv := range sp0.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}
	for _, pv := range sp1.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}
	for _, pv := range ep0.vec {
		pv.getNoise(coins, nonce, eta2)
		nonce++
	}
	for _, pv := range ep1.vec {
		pv.getNoise(coins, nonce, eta2)
		nonce++
	}

	sp0.ntt()
	sp1.ntt()
	sp0.reduce()
	sp1.reduce()

	b0, b1 := newPolyVec(p.k), newPolyVec(p.k)
	for i := range b0.vec {
		b0.vec[i].basemulAcc(at[i], sp0)
	}
	for i := range b1.vec {
		b1.vec[i].basemulAcc(at[i], sp1)
	}

	b0.invntt()
	b0.add(b0, ep0)
	b0.reduce()
	b0.compress(c1, p.polyVecCompressedD)

	b1.invntt()
	b1.add(b1, ep1)
	b1.reduce()
	b1.compress(c1[b0.compressedSize(p.polyVecCompressedD):], p.polyVecCompressedD)

	sp0.toBytes(fwd)
	sp1.toBytes(fwd[p.polyVecBytes:])
}

// indcpaEncC2 derives the recipient-specific ciphertext component c2 for a
// single public key pk, given the ephemeral state fwd forwarded from
// indcpaEncC1 and public-key-dependent coins2. The low bit of coins2[0]
// selects whether the two derandomized public-key halves are swapped before
// use; it is stripped before use and recorded as the trailing flip byte of
// c2.
func (p *ParameterSet) indcpaEncC2(c2, msg []byte, pk *indcpaPublicKey, fwd, coins2 []byte) {
	sp0, sp1 := newPolyVec(p.k), newPolyVec(p.k)
	defer zeroizePolyVec(sp0)
	defer zeroizePolyVec(sp1)
	sp0.fromBytes(fwd)
	sp1.fromBytes(fwd[p.polyVecBytes:])

	tcoins2 := make([]byte, SymSize)
	copy(tcoins2, coins2)
	flip := tcoins2[0] & 1
	tcoins2[0] &^= 1

	var epp0, epp1 poly
	defer zeroizePoly(&epp0)
	defer zeroizePoly(&epp1)
	epp0.getNoise(tcoins2, 0, eta2)
	epp1.getNoise(tcoins2, 1, eta2)

	var k poly
	defer zeroizePoly(&k)
	k.fromMsg(msg)

	pkpv0, pkpv1 := newPolyVec(p.k), newPolyVec(p.k)
	unpackPublicKey(pkpv0, pkpv1, pk.packed, p.k)
	pkpv0.cswap(pkpv1, uint16(flip))

	var v0 poly
	v0.basemulAcc(pkpv0, sp0)
	v0.invntt()
	v0.add(&v0, &epp0)
	v0.add(&v0, &k)
	v0.reduce()
	v0.compress(c2, p.polyCompressedD)

	var v1 poly
	v1.basemulAcc(pkpv1, sp1)
	v1.invntt()
	v1.add(&v1, &epp1)
	v1.add(&v1, &k)
	v1.reduce()
	v1.compress(c2[p.polyCompressedBytes:], p.polyCompressedD)

	c2[len(c2)-1] = flip
}

// indcpaDecrypt recovers the message from a (c1, c2) pair using sk.
func (p *ParameterSet) indcpaDecrypt(m, c1, c2 []byte, sk *indcpaSecretKey) {
	b0, b1 := newPolyVec(p.k), newPolyVec(p.k)
	b0.decompress(c1, p.polyVecCompressedD)
	b1.decompress(c1[b0.compressedSize(p.polyVecCompressedD):], p.polyVecCompressedD)

	flip := c2[len(c2)-1]
	skpv := newPolyVec(p.k)
	defer zeroizePolyVec(skpv)
	b := unpackSecretKey(skpv, sk.packed)
	b0.cmov(b1, uint16(b^flip))

	var v0, v1 poly
	v0.decompress(c2, p.polyCompressedD)
	v1.decompress(c2[p.polyCompressedBytes:], p.polyCompressedD)
	v0.cmov(&v1, uint16(b^flip))

	b0.ntt()
	var mp poly
	defer zeroizePoly(&mp)
	mp.basemulAcc(skpv, b0)
	mp.invntt()

	mp.sub(&v0, &mp)
	mp.reduce()

	mp.toMsg(m)
}
