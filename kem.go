// kem.go - mKEM key encapsulation mechanism.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

import (
	"io"
)

// PublicKey is an mKEM public key, one recipient's entry in a batch that
// shares a common matrix seed.
type PublicKey struct {
	pk   *indcpaPublicKey
	p    *ParameterSet
	seed []byte // the batch-wide public matrix seed
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.packed
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey. seed is the
// batch-wide public matrix seed associated with this key (not part of the
// serialized public key itself, since every recipient in a batch shares
// it); it is stored with the key. EncapsulateC1 and Encapsulate take the
// seed as their own argument and do not read it from the key.
func (p *ParameterSet) PublicKeyFromBytes(b, seed []byte) (*PublicKey, error) {
	if len(seed) != SymSize {
		return nil, ErrSeedSize
	}

	pk := &PublicKey{
		pk:   new(indcpaPublicKey),
		p:    p,
		seed: append([]byte(nil), seed...),
	}
	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// PrivateKey is an mKEM private key.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey: the packed IND-CPA
// secret key, the packed public key, the batch-wide seed, and the implicit
// rejection value z.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.seed...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidPrivateKey
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p
	sk.PublicKey.seed = make([]byte, SymSize)

	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	copy(sk.PublicKey.seed, b[off:off+SymSize])
	off += SymSize
	copy(sk.z, b[off:off+SymSize])

	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet. seed is the batch-wide public matrix seed shared by
// every recipient intended to be encapsulated to together; callers that
// want a single-recipient KEM can generate a fresh random seed per key.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader, seed []byte) (*PublicKey, *PrivateKey, error) {
	if len(seed) != SymSize {
		return nil, nil, ErrSeedSize
	}

	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng, seed); err != nil {
		return nil, nil, err
	}

	kp.PublicKey.p = p
	kp.PublicKey.seed = append([]byte(nil), seed...)
	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// EncapsulateC1 generates the batch-shared ciphertext component, the
// resulting shared secret, and an opaque forwarded state that must be
// passed to EncapsulateC2 for every recipient in the batch.
func (p *ParameterSet) EncapsulateC1(rng io.Reader, seed []byte) (c1, fwd, sharedSecret []byte, err error) {
	if len(seed) != SymSize {
		return nil, nil, nil, ErrSeedSize
	}

	r := make([]byte, SymSize)
	if _, err = io.ReadFull(rng, r); err != nil {
		return nil, nil, nil, err
	}
	defer zeroizeBytes(r)

	msg := make([]byte, SymSize)
	hashH(msg, r) // don't release system RNG output directly as the message
	defer zeroizeBytes(msg)

	coins := make([]byte, SymSize)
	hashH(coins, msg)
	defer zeroizeBytes(coins)

	sharedSecret = make([]byte, SymSize)
	kdf(sharedSecret, msg)

	c1 = make([]byte, p.c1Size)
	indcpaFwd := make([]byte, p.fwdSize-SymSize)
	p.indcpaEncC1(c1, indcpaFwd, seed, coins)
	defer zeroizeBytes(indcpaFwd)

	fwd = make([]byte, p.fwdSize)
	copy(fwd, msg)
	copy(fwd[SymSize:], indcpaFwd)

	return c1, fwd, sharedSecret, nil
}

// EncapsulateC2 derives the ciphertext component for a single recipient pk,
// given the forwarded state produced by EncapsulateC1.
func (p *ParameterSet) EncapsulateC2(pk *PublicKey, fwd []byte) (c2 []byte, err error) {
	if len(fwd) != p.fwdSize {
		return nil, ErrInvalidForwardState
	}

	msg := fwd[:SymSize]
	indcpaFwd := fwd[SymSize:]

	coins2 := make([]byte, SymSize)
	buf := make([]byte, len(pk.pk.packed)+SymSize)
	copy(buf, pk.pk.packed)
	copy(buf[len(pk.pk.packed):], msg)
	hashH(coins2, buf)

	c2 = make([]byte, p.c2Size)
	p.indcpaEncC2(c2, msg, pk.pk, indcpaFwd, coins2)

	return c2, nil
}

// Encapsulate runs EncapsulateC1 followed by EncapsulateC2 for every
// recipient in pks, which must all share the same batch-wide seed. All
// recipients receive the same c1 and sharedSecret; each gets its own c2.
func (p *ParameterSet) Encapsulate(rng io.Reader, seed []byte, pks []*PublicKey) (c1 []byte, c2s [][]byte, sharedSecret []byte, err error) {
	var fwd []byte
	if c1, fwd, sharedSecret, err = p.EncapsulateC1(rng, seed); err != nil {
		return nil, nil, nil, err
	}

	c2s = make([][]byte, len(pks))
	for i, pk := range pks {
		if c2s[i], err = p.EncapsulateC2(pk, fwd); err != nil {
			return nil, nil, nil, err
		}
	}

	return c1, c2s, sharedSecret, nil
}

// Decapsulate recovers the shared secret from a (c1, c2) ciphertext pair
// using sk. On a malformed ciphertext (failed re-encryption check), the
// returned shared secret is a pseudorandom value derived from sk's implicit
// rejection value z rather than an error, per the FO transform with
// implicit rejection; callers cannot distinguish rejection from success by
// timing or by the returned error.
func (sk *PrivateKey) Decapsulate(c1, c2 []byte) ([]byte, error) {
	p := sk.PublicKey.p
	if len(c1) != p.c1Size {
		return nil, ErrInvalidCipherTextSize
	}
	if len(c2) != p.c2Size {
		return nil, ErrInvalidCipherTextSize
	}

	msg := make([]byte, SymSize)
	p.indcpaDecrypt(msg, c1, c2, sk.sk)
	defer zeroizeBytes(msg)

	t := make([]byte, SymSize)
	kdf(t, msg)

	coins := make([]byte, SymSize)
	hashH(coins, msg)
	defer zeroizeBytes(coins)

	cmp1 := make([]byte, p.c1Size)
	indcpaFwd := make([]byte, p.fwdSize-SymSize)
	p.indcpaEncC1(cmp1, indcpaFwd, sk.PublicKey.seed, coins)
	defer zeroizeBytes(indcpaFwd)

	coins2 := make([]byte, SymSize)
	buf := make([]byte, len(sk.PublicKey.pk.packed)+SymSize)
	copy(buf, sk.PublicKey.pk.packed)
	copy(buf[len(sk.PublicKey.pk.packed):], msg)
	hashH(coins2, buf)
	defer zeroizeBytes(buf)
	defer zeroizeBytes(coins2)

	cmp2 := make([]byte, p.c2Size)
	p.indcpaEncC2(cmp2, msg, sk.PublicKey.pk, indcpaFwd, coins2)

	fail := 0
	if !ctVerify(c1, cmp1) {
		fail = 1
	}
	if !ctVerify(c2, cmp2) {
		fail = 1
	}

	rejectKeyIn := make([]byte, SymSize+len(c1)+len(c2))
	copy(rejectKeyIn, sk.z)
	copy(rejectKeyIn[SymSize:], c1)
	copy(rejectKeyIn[SymSize+len(c1):], c2)
	defer zeroizeBytes(rejectKeyIn)

	ss := make([]byte, SymSize)
	kdf(ss, rejectKeyIn)

	// Overwrite the pseudorandom rejection key with t iff re-encryption
	// succeeded.
	ctSelect(ss, t, ss, 1-fail)
	defer zeroizeBytes(t)

	return ss, nil
}
