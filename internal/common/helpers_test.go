package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLamportsToSOL(t *testing.T) {
	assert.Equal(t, "0.000000000", LamportsToSOL(0))
	assert.Equal(t, "0.024981836", LamportsToSOL(24981836))
	assert.Equal(t, "1.000000000", LamportsToSOL(1000000000))
	assert.Equal(t, "2.500000000", LamportsToSOL(2500000000))
}

func TestSOLToLamports(t *testing.T) {
	n, err := SOLToLamports("1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000000), n)

	n, err = SOLToLamports("0.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(500000000), n)

	n, err = SOLToLamports("2.000000001")
	require.NoError(t, err)
	assert.Equal(t, uint64(2000000001), n)
}

func TestSOLToLamportsErrors(t *testing.T) {
	_, err := SOLToLamports("")
	assert.Error(t, err)

	_, err = SOLToLamports("1.2.3")
	assert.Error(t, err)

	_, err = SOLToLamports("abc")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, lamports := range []uint64{0, 1, 999999999, 1000000000, 123456789012} {
		parsed, err := SOLToLamports(LamportsToSOL(lamports))
		require.NoError(t, err)
		assert.Equal(t, lamports, parsed)
	}
}

func TestParseWithDecimalsTruncatesExcess(t *testing.T) {
	// More fractional digits than decimals are truncated, not rounded
	n, err := ParseWithDecimals("1.23456", 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(123), n)
}
