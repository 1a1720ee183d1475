// sample_test.go - uniform sampling and matrix expansion tests.
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

func TestRejUniformInRange(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 3*mkemN)
	_, err := rand.Read(buf)
	require.NoError(err)

	r := make([]int16, mkemN)
	n := rejUniform(r, buf)
	for i := 0; i < n; i++ {
		require.True(r[i] >= 0 && r[i] < mkemQ, "rejUniform must only emit values in [0,q)")
	}
}

func TestExpandPolyDeterministic(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	_, err := rand.Read(seed)
	require.NoError(err)

	var p, q poly
	expandPoly(&p, seed, 1, 2)
	expandPoly(&q, seed, 1, 2)
	require.Equal(p.coeffs, q.coeffs, "expandPoly is a pure function of seed||extra")

	var r poly
	expandPoly(&r, seed, 2, 1)
	require.NotEqual(p.coeffs, r.coeffs, "byte order of extra must matter")
}

func TestGenMatrixTranspose(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	_, err := rand.Read(seed)
	require.NoError(err)

	const k = 3
	a := genMatrix(seed, k, false)
	at := genMatrix(seed, k, true)

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			require.Equal(a[i].vec[j].coeffs, at[j].vec[i].coeffs, "at[%d][%d] must equal a[%d][%d]", j, i, i, j)
		}
	}
}
