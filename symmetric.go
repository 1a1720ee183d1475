// symmetric.go - Symmetric primitives (XOF, PRF, hash, KDF).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

import "golang.org/x/crypto/sha3"

// xofAbsorb returns a SHAKE128 XOF state absorbed with seed || extra,
// ready for squeezing. Used to expand a public seed into matrix/vector
// entries (see sample.go).
func xofAbsorb(seed []byte, extra ...byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(seed) //nolint:errcheck
	if len(extra) > 0 {
		h.Write(extra) //nolint:errcheck
	}
	return h
}

// prf fills dst with SHAKE256(seed || nonce), the pseudorandom function
// used to derive CBD-sampler input from a seed and a small nonce.
func prf(dst, seed []byte, nonce byte) {
	h := sha3.NewShake256()
	h.Write(seed)     //nolint:errcheck
	h.Write([]byte{nonce}) //nolint:errcheck
	h.Read(dst)       //nolint:errcheck
}

// hashH returns SHA3-256(in), truncated/extended implicitly by the digest
// size (32 bytes), used throughout the CCA transform as the collision
// resistant hash "H".
func hashH(dst, in []byte) {
	h := sha3.Sum256(in)
	copy(dst, h[:])
}

// kdf fills dst with SHAKE256(in) squeezed to len(dst) bytes, the key
// derivation function used to turn the FO-transform's pre-key into the
// final shared secret.
func kdf(dst, in []byte) {
	h := sha3.NewShake256()
	h.Write(in)  //nolint:errcheck
	h.Read(dst) //nolint:errcheck
}
