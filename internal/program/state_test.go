package program

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeState(t *testing.T) {
	mint := newTestKey(t)
	vault := newTestKey(t)

	data := make([]byte, StateSize)
	data[0] = 1
	copy(data[1:33], mint.Bytes())
	copy(data[33:65], vault.Bytes())
	binary.LittleEndian.PutUint64(data[65:73], 120)

	state, err := DecodeState(data)
	require.NoError(t, err)
	assert.True(t, state.Initialized)
	assert.Equal(t, mint, state.TokenMint)
	assert.Equal(t, vault, state.Vault)
	assert.Equal(t, uint64(120), state.TotalDeposited)
}

func TestDecodeStateErrors(t *testing.T) {
	_, err := DecodeState(make([]byte, StateSize-1))
	assert.Error(t, err)

	data := make([]byte, StateSize)
	data[0] = 2
	_, err = DecodeState(data)
	assert.Error(t, err)
}

func TestDecodeSequence(t *testing.T) {
	data := make([]byte, LoggerStateSize)
	binary.LittleEndian.PutUint64(data, 7)

	seq, err := DecodeSequence(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), seq)

	_, err = DecodeSequence([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestDecodeMessage(t *testing.T) {
	from := newTestKey(t)
	to := newTestKey(t)

	data := make([]byte, MessageSize)
	copy(data[0:32], from.Bytes())
	copy(data[32:64], to.Bytes())
	binary.LittleEndian.PutUint64(data[64:72], 50)
	binary.LittleEndian.PutUint64(data[72:80], 1700000000)
	binary.LittleEndian.PutUint64(data[80:88], 3)

	message, err := DecodeMessage(data)
	require.NoError(t, err)
	assert.Equal(t, from, message.From)
	assert.Equal(t, to, message.To)
	assert.Equal(t, uint64(50), message.Amount)
	assert.Equal(t, uint64(1700000000), message.Timestamp)
	assert.Equal(t, uint64(3), message.Sequence)

	_, err = DecodeMessage(data[:MessageSize-1])
	assert.Error(t, err)
}
