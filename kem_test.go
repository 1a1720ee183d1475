// kem_test.go - mKEM tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTests = 50

var allParams = []*ParameterSet{
	MKEM512,
	MKEM768,
	MKEM1024,
}

func randomSeed(t *testing.T) []byte {
	seed := make([]byte, SymSize)
	_, err := rand.Read(seed)
	require.NoError(t, err, "rand.Read(seed)")
	return seed
}

func TestKEM(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name()+"_Keys", func(t *testing.T) { doTestKEMKeys(t, p) })
		t.Run(p.Name()+"_Batch", func(t *testing.T) { doTestKEMBatch(t, p) })
		t.Run(p.Name()+"_Invalid_SecretKey", func(t *testing.T) { doTestKEMInvalidSk(t, p) })
		t.Run(p.Name()+"_Invalid_CipherText", func(t *testing.T) { doTestKEMInvalidCipherText(t, p) })
	}
}

func doTestKEMKeys(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("K(): %v", p.K())
	t.Logf("PrivateKeySize(): %v", p.PrivateKeySize())
	t.Logf("PublicKeySize(): %v", p.PublicKeySize())
	t.Logf("CipherTextSize(): %v", p.CipherTextSize())
	t.Logf("ForwardStateSize(): %v", p.ForwardStateSize())

	require.Contains([]int{2, 3, 4}, p.K(), "%s: K() must be 2, 3, or 4", p.Name())

	_, err := p.PrivateKeyFromBytes(make([]byte, p.PrivateKeySize()-1))
	require.Equal(ErrInvalidPrivateKey, err, "PrivateKeyFromBytes(): truncated")

	seed := randomSeed(t)

	for i := 0; i < nTests; i++ {
		pk, sk, err := p.GenerateKeyPair(rand.Reader, seed)
		require.NoError(err, "GenerateKeyPair()")

		b := sk.Bytes()
		require.Len(b, p.PrivateKeySize(), "sk.Bytes(): Length")
		sk2, err := p.PrivateKeyFromBytes(b)
		require.NoError(err, "PrivateKeyFromBytes(b)")
		requirePrivateKeyEqual(require, sk, sk2)

		b = pk.Bytes()
		require.Len(b, p.PublicKeySize(), "pk.Bytes(): Length")
		pk2, err := p.PublicKeyFromBytes(b, seed)
		require.NoError(err, "PublicKeyFromBytes(b)")
		requirePublicKeyEqual(require, pk, pk2)

		c1, fwd, ssEnc, err := p.EncapsulateC1(rand.Reader, seed)
		require.NoError(err, "EncapsulateC1()")
		require.Len(c1, p.C1Size(), "EncapsulateC1(): c1 Length")
		require.Len(ssEnc, SymSize, "EncapsulateC1(): ss Length")

		c2, err := p.EncapsulateC2(pk, fwd)
		require.NoError(err, "EncapsulateC2()")
		require.Len(c2, p.C2Size(), "EncapsulateC2(): c2 Length")

		ssDec, err := sk.Decapsulate(c1, c2)
		require.NoError(err, "Decapsulate()")
		require.Equal(ssEnc, ssDec, "Decapsulate(): ss")
	}
}

func doTestKEMBatch(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	const nRecipients = 4

	seed := randomSeed(t)

	pks := make([]*PublicKey, nRecipients)
	sks := make([]*PrivateKey, nRecipients)
	for i := range pks {
		var err error
		pks[i], sks[i], err = p.GenerateKeyPair(rand.Reader, seed)
		require.NoError(err, "GenerateKeyPair()")
	}

	c1, c2s, ssEnc, err := p.Encapsulate(rand.Reader, seed, pks)
	require.NoError(err, "Encapsulate()")
	require.Len(c1, p.C1Size(), "Encapsulate(): c1 Length")
	require.Len(c2s, nRecipients, "Encapsulate(): c2s count")

	for i, sk := range sks {
		ssDec, err := sk.Decapsulate(c1, c2s[i])
		require.NoError(err, "Decapsulate()")
		require.Equal(ssEnc, ssDec, "Decapsulate(): ss for recipient %d", i)
	}
}

func doTestKEMInvalidSk(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	seed := randomSeed(t)

	for i := 0; i < nTests; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader, seed)
		require.NoError(err, "GenerateKeyPair()")

		c1, fwd, keyB, err := p.EncapsulateC1(rand.Reader, seed)
		require.NoError(err, "EncapsulateC1()")
		c2, err := p.EncapsulateC2(pk, fwd)
		require.NoError(err, "EncapsulateC2()")

		_, err = rand.Read(skA.sk.packed)
		require.NoError(err, "rand.Read()")

		keyA, err := skA.Decapsulate(c1, c2)
		require.NoError(err, "Decapsulate()")
		require.NotEqual(keyA, keyB, "Decapsulate(): ss")
	}
}

func doTestKEMInvalidCipherText(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	var rawPos [2]byte

	seed := randomSeed(t)
	ciphertextSize := p.CipherTextSize()

	for i := 0; i < nTests; i++ {
		_, err := rand.Read(rawPos[:])
		require.NoError(err, "rand.Read()")
		pos := (int(rawPos[0]) << 8) | int(rawPos[1])

		pk, skA, err := p.GenerateKeyPair(rand.Reader, seed)
		require.NoError(err, "GenerateKeyPair()")

		c1, fwd, keyB, err := p.EncapsulateC1(rand.Reader, seed)
		require.NoError(err, "EncapsulateC1()")
		c2, err := p.EncapsulateC2(pk, fwd)
		require.NoError(err, "EncapsulateC2()")

		idx := pos % ciphertextSize
		if idx < len(c1) {
			c1[idx] ^= 23
		} else {
			c2[idx-len(c1)] ^= 23
		}

		keyA, err := skA.Decapsulate(c1, c2)
		require.NoError(err, "Decapsulate()")
		require.NotEqual(keyA, keyB, "Decapsulate(): ss")
	}
}

func requirePrivateKeyEqual(require *require.Assertions, a, b *PrivateKey) {
	require.EqualValues(a.sk, b.sk, "sk (indcpaSecretKey)")
	require.Equal(a.z, b.z, "z (random bytes)")
	requirePublicKeyEqual(require, &a.PublicKey, &b.PublicKey)
}

func requirePublicKeyEqual(require *require.Assertions, a, b *PublicKey) {
	require.EqualValues(a.pk, b.pk, "pk (indcpaPublicKey)")
	require.Equal(a.seed, b.seed, "seed")
}

func BenchmarkKEM(b *testing.B) {
	for _, p := range allParams {
		b.Run(p.Name()+"_GenerateKeyPair", func(b *testing.B) { doBenchKEMGenerateKeyPair(b, p) })
		b.Run(p.Name()+"_Encapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, true) })
		b.Run(p.Name()+"_Decapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, false) })
	}
}

func doBenchKEMGenerateKeyPair(b *testing.B, p *ParameterSet) {
	seed := make([]byte, SymSize)
	_, _ = rand.Read(seed)
	for i := 0; i < b.N; i++ {
		_, _, err := p.GenerateKeyPair(rand.Reader, seed)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}
	}
}

func doBenchKEMEncDec(b *testing.B, p *ParameterSet, isEnc bool) {
	b.StopTimer()
	seed := make([]byte, SymSize)
	_, _ = rand.Read(seed)
	for i := 0; i < b.N; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader, seed)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}

		if isEnc {
			b.StartTimer()
		}

		c1, fwd, keyB, err := p.EncapsulateC1(rand.Reader, seed)
		if err != nil {
			b.Fatalf("EncapsulateC1(): %v", err)
		}
		c2, err := p.EncapsulateC2(pk, fwd)
		if err != nil {
			b.Fatalf("EncapsulateC2(): %v", err)
		}
		if isEnc {
			b.StopTimer()
		} else {
			b.StartTimer()
		}

		keyA, err := skA.Decapsulate(c1, c2)
		if err != nil {
			b.Fatalf("Decapsulate(): %v", err)
		}
		if !isEnc {
			b.StopTimer()
		}

		if string(keyA) != string(keyB) {
			b.Fatalf("Decapsulate(): key mismatch")
		}
	}
}
