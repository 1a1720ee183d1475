// errors.go - Sentinel errors.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

import "errors"

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("mkem: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// ciphertext component is an invalid size.
	ErrInvalidCipherTextSize = errors.New("mkem: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("mkem: invalid private key")

	// ErrInvalidForwardState is the error returned when a byte serialized
	// forwarded ephemeral state (as produced by EncapsulateC1) is an
	// invalid size.
	ErrInvalidForwardState = errors.New("mkem: invalid forwarded state")

	// ErrSeedSize is the error returned when a caller-supplied seed is not
	// exactly SymSize bytes.
	ErrSeedSize = errors.New("mkem: seed must be SymSize bytes")
)
