// kdf.go - HKDF convenience layer over the raw shared secret.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey expands a raw shared secret (as returned by Decapsulate or one
// of the Encapsulate* functions) into outLen bytes of labeled key material
// via HKDF-SHA256, using info as the HKDF "info" parameter.
//
// The raw shared secret returned by this package is already the output of
// a KDF (SHAKE256 over the FO-transform's pre-key) and is safe to use
// directly as a symmetric key; DeriveKey exists for callers that need
// multiple independent subkeys (e.g. separate AEAD keys per recipient) from
// a single encapsulation, or that want to bind the key to an application
// label.
func DeriveKey(sharedSecret, info []byte, outLen int) ([]byte, error) {
	r := hkdf.New(sha256.New, sharedSecret, nil, info)
	out := make([]byte, outLen)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
