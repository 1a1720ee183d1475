// doc.go - package documentation.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mkem implements a multi-recipient, IND-CCA2-secure key
// encapsulation mechanism (mKEM) built on the Module-LWE problem, in the
// style of the Kyber/ML-KEM family of lattice schemes.
//
// A batch of recipients share a single public matrix seed. Encapsulating a
// shared secret against the whole batch produces one ciphertext component
// c1 shared by every recipient and one c2 component per recipient; any
// recipient can recover the shared secret from (c1, c2) using only its own
// private key.
//
// This is a research variant of Kyber (see cryptojedi/kyber-mkem) and is
// not wire-compatible with standardized ML-KEM. It deliberately omits
// side-channel and fault-injection hardening; see the constant-time helpers
// in ct.go for the properties that are provided.
package mkem
