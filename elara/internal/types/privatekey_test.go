package types

import (
	"encoding/hex"
	"testing"

	"github.com/elaranetwork/elara/elara/common"
	"github.com/elaranetwork/elara/elara/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors from ethereum/tests BasicTests/txtest.json.
const (
	testKeyHex1  = "c85ef7d79691fe79573b1a7064c19c1a9819ebdbd1faaab1a8ec92344438aaf4"
	testAddrHex1 = "cd2a3d9f938e13cd947ec05abc7fe734df8dd826"
	testKeyHex2  = "c87f65ff3f271bf5dc8643484f66b200109caffe4bf98c4cb393dc35740b28c0"
	testAddrHex2 = "13978aee95f38490e9769c39b2773ed763d9cd5f"
)

func TestPrivateKeyFromHex(t *testing.T) {
	t.Parallel()

	key, err := PrivateKeyFromHex(testKeyHex1)
	require.NoError(t, err)
	assert.Equal(t, testKeyHex1, hex.EncodeToString(key.Bytes()))

	prefixed, err := PrivateKeyFromHex("0x" + testKeyHex1)
	require.NoError(t, err)
	assert.Equal(t, key, prefixed)
}

func TestPrivateKeyFromHex_InvalidLength(t *testing.T) {
	t.Parallel()

	_, err := PrivateKeyFromHex("abcdef")
	require.ErrorIs(t, err, ErrInvalidLength)

	// 63 characters
	_, err = PrivateKeyFromHex(testKeyHex1[:63])
	require.ErrorIs(t, err, ErrInvalidLength)

	// 65 characters
	_, err = PrivateKeyFromHex(testKeyHex1 + "0")
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestPrivateKeyFromHex_InvalidData(t *testing.T) {
	t.Parallel()

	bad := "z" + testKeyHex1[1:]
	require.Len(t, bad, 64)

	_, err := PrivateKeyFromHex(bad)
	require.ErrorIs(t, err, hexutil.ErrSyntax)
	require.NotErrorIs(t, err, ErrInvalidLength)
}

func TestPrivateKeyFromBytes(t *testing.T) {
	t.Parallel()

	raw, err := hex.DecodeString(testKeyHex1)
	require.NoError(t, err)

	key, err := PrivateKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, key.Bytes())

	_, err = PrivateKeyFromBytes(raw[:31])
	require.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = PrivateKeyFromBytes(append(raw, 0))
	require.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestPublicKeyAddress(t *testing.T) {
	t.Parallel()

	for _, vector := range []struct{ key, addr string }{
		{testKeyHex1, testAddrHex1},
		{testKeyHex2, testAddrHex2},
	} {
		key, err := PrivateKeyFromHex(vector.key)
		require.NoError(t, err)

		addr, err := key.PublicKeyAddress()
		require.NoError(t, err)
		assert.Equal(t, vector.addr, hex.EncodeToString(addr.Bytes()))
		assert.Len(t, addr.Bytes(), AddrSize)

		// Derivation is deterministic.
		again, err := key.PublicKeyAddress()
		require.NoError(t, err)
		assert.Equal(t, addr, again)
	}
}

func TestPublicKeyAddress_ZeroKey(t *testing.T) {
	t.Parallel()

	_, err := EmptyPrivateKey.PublicKeyAddress()
	require.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestGeneratePrivateKey(t *testing.T) {
	t.Parallel()

	key, err := GeneratePrivateKey()
	require.NoError(t, err)
	require.False(t, key.IsZero())

	addr, err := key.PublicKeyAddress()
	require.NoError(t, err)
	require.NotEqual(t, EmptyAddress, addr)
}

func TestSignDigestAndRecover(t *testing.T) {
	t.Parallel()

	key, err := PrivateKeyFromHex(testKeyHex1)
	require.NoError(t, err)

	digest := common.Keccak256Hash([]byte("arbitrary signing payload"))
	sig, err := key.SignDigest(digest)
	require.NoError(t, err)

	require.True(t, sig.IsValid())
	require.NoError(t, sig.CheckLowSHomestead())
	v := sig.V.Uint64()
	require.True(t, v == 27 || v == 28)
	require.Nil(t, sig.NetworkID())

	recovered, err := sig.RecoverAddress(digest)
	require.NoError(t, err)
	assert.Equal(t, HexToAddress(testAddrHex1), recovered)
}

func TestSignDigest_ZeroKey(t *testing.T) {
	t.Parallel()

	digest := common.Keccak256Hash([]byte("payload"))
	_, err := EmptyPrivateKey.SignDigest(digest)
	require.ErrorIs(t, err, ErrInvalidPrivateKey)
}
