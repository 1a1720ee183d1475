// params.go - mKEM parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	mkemN = 256
	mkemQ = 3329

	// eta2 is fixed across every parameter set; only eta1 varies with K.
	eta2 = 2

	// polyBytes is the size of a poly packed 12 bits/coefficient.
	polyBytes = 384
)

var (
	// MKEM512 is the K=2 parameter set, aiming for AES-128-equivalent
	// security.
	MKEM512 = newParameterSet("MKEM-512", 2, 3, 4, 10)

	// MKEM768 is the K=3 parameter set, aiming for AES-192-equivalent
	// security.
	MKEM768 = newParameterSet("MKEM-768", 3, 2, 4, 10)

	// MKEM1024 is the K=4 parameter set, aiming for AES-256-equivalent
	// security.
	MKEM1024 = newParameterSet("MKEM-1024", 4, 2, 5, 11)
)

// ParameterSet is an mKEM parameter set, selecting K (module rank) and the
// derived noise/compression parameters. The zero value is not valid; use
// one of MKEM512, MKEM768, or MKEM1024.
type ParameterSet struct {
	name string

	k    int
	eta1 int

	polyCompressedD    int
	polyVecCompressedD int

	polyVecBytes           int
	polyVecCompressedBytes int
	polyCompressedBytes    int

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int

	publicKeySize  int
	secretKeySize  int
	c1Size         int
	c2Size         int
	cipherTextSize int
	fwdSize        int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of a given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// C1Size returns the size, in bytes, of the shared (per-batch) ciphertext
// component.
func (p *ParameterSet) C1Size() int {
	return p.c1Size
}

// C2Size returns the size, in bytes, of a per-recipient ciphertext
// component.
func (p *ParameterSet) C2Size() int {
	return p.c2Size
}

// CipherTextSize returns the size, in bytes, of a single-recipient
// ciphertext (C1Size + C2Size), as produced by the monolithic Encapsulate.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

// ForwardStateSize returns the size, in bytes, of the serialized forwarded
// ephemeral state ("fwd") produced by EncapsulateC1 and consumed by
// EncapsulateC2.
func (p *ParameterSet) ForwardStateSize() int {
	return p.fwdSize
}

func newParameterSet(name string, k, eta1, polyD, polyVecD int) *ParameterSet {
	var p ParameterSet

	if k < 2 || k > 4 {
		panic("mkem: k must be in {2,3,4}")
	}

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.polyCompressedD = polyD
	p.polyVecCompressedD = polyVecD

	p.polyVecBytes = k * polyBytes
	p.polyVecCompressedBytes = k * (mkemN * polyVecD / 8)
	p.polyCompressedBytes = mkemN * polyD / 8

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecBytes + SymSize // packed polyvec || fakepkseed
	p.indcpaSecretKeySize = p.polyVecBytes + 1        // packed polyvec || flip byte b

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // + seed + z
	p.c1Size = 2 * p.polyVecCompressedBytes                                    // u0 || u1
	p.c2Size = 2*p.polyCompressedBytes + 1                                     // v0 || v1 || flip
	p.cipherTextSize = p.c1Size + p.c2Size
	p.fwdSize = SymSize + 2*p.polyVecBytes // msg || sp0 || sp1, forwarded to EncapsulateC2

	return &p
}
