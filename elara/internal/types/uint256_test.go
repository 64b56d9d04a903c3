package types

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint256Json(t *testing.T) {
	t.Parallel()

	str, err := json.Marshal(*NewUint256(111))
	require.NoError(t, err)
	assert.JSONEq(t, "\"111\"", string(str))

	var parsed Uint256
	require.NoError(t, json.Unmarshal(str, &parsed))
	assert.True(t, parsed.Eq(NewUint256(111)))
}

func TestUint256FromDecimal(t *testing.T) {
	t.Parallel()

	v, err := NewUint256FromDecimal("102030")
	require.NoError(t, err)
	assert.Equal(t, uint64(102030), v.Uint64())

	_, err = NewUint256FromDecimal("not a number")
	require.Error(t, err)
}

func TestUint256Bytes32(t *testing.T) {
	t.Parallel()

	v := NewUint256(0x0203)
	fixed := v.Bytes32()
	assert.Equal(t,
		"0000000000000000000000000000000000000000000000000000000000000203",
		hex.EncodeToString(fixed[:]))

	// The variable-width form drops the padding.
	assert.Equal(t, "0203", hex.EncodeToString(v.Bytes()))
}

func TestUint256FromBytes(t *testing.T) {
	t.Parallel()

	v := NewUint256FromBytes([]byte{0x01, 0x00, 0xff})
	assert.Equal(t, uint64(0x0100ff), v.Uint64())
	assert.Equal(t, "65791", v.String())
}

func TestUint256NilSafety(t *testing.T) {
	t.Parallel()

	var v *Uint256
	assert.True(t, v.IsZero())
	assert.True(t, v.Eq(NewUint256(0)))
	assert.Zero(t, v.Int().Uint64())
}
