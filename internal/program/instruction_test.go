package program

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDeposit(t *testing.T) {
	data := EncodeDeposit(50)
	assert.Equal(t, []byte{0x00, 0x32, 0, 0, 0, 0, 0, 0, 0}, data)
}

func TestEncodeWithdraw(t *testing.T) {
	data := EncodeWithdraw(30)
	assert.Equal(t, []byte{0x01, 0x1e, 0, 0, 0, 0, 0, 0, 0}, data)
}

func TestEncodeAmountLittleEndian(t *testing.T) {
	data := EncodeDeposit(0x0102030405060708)
	assert.Equal(t, []byte{0x00, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, data)
}

func testAccounts(t *testing.T) TransferAccounts {
	t.Helper()
	newKey := func() solana.PublicKey {
		key, err := solana.NewRandomPrivateKey()
		require.NoError(t, err)
		return key.PublicKey()
	}
	return TransferAccounts{
		User:          newKey(),
		UserToken:     newKey(),
		EscrowState:   newKey(),
		Vault:         newKey(),
		LoggerProgram: newKey(),
		LoggerState:   newKey(),
		Message:       newKey(),
		Mint:          newKey(),
	}
}

func TestNewDepositInstruction(t *testing.T) {
	programID := solana.TokenProgramID // any fixed key works as a stand-in
	accounts := testAccounts(t)

	ix := NewDepositInstruction(programID, accounts, 50)

	assert.Equal(t, programID, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, EncodeDeposit(50), data)

	metas := ix.Accounts()
	require.Len(t, metas, 13)

	want := []solana.PublicKey{
		accounts.User,
		accounts.UserToken,
		accounts.EscrowState,
		accounts.Vault,
		solana.SystemProgramID,
		solana.TokenProgramID,
		solana.SysVarRentPubkey,
		accounts.LoggerProgram,
		accounts.LoggerState,
		accounts.Message,
		accounts.User,
		solana.SystemProgramID,
		accounts.Mint,
	}
	for i, meta := range metas {
		assert.Equal(t, want[i], meta.PublicKey, "account %d", i)
	}

	// The wallet signs both as user and as message rent payer
	assert.True(t, metas[0].IsSigner)
	assert.True(t, metas[0].IsWritable)
	assert.True(t, metas[10].IsSigner)
	assert.False(t, metas[4].IsWritable)
	assert.False(t, metas[5].IsSigner)
}

func TestNewWithdrawInstruction(t *testing.T) {
	programID := solana.TokenProgramID
	accounts := testAccounts(t)

	ix := NewWithdrawInstruction(programID, accounts, 30)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, EncodeWithdraw(30), data)

	metas := ix.Accounts()
	require.Len(t, metas, 11)

	want := []solana.PublicKey{
		accounts.User,
		accounts.UserToken,
		accounts.EscrowState,
		accounts.Vault,
		solana.TokenProgramID,
		accounts.LoggerProgram,
		accounts.LoggerState,
		accounts.Vault, // vault authority shares the vault derivation
		accounts.Message,
		accounts.User,
		solana.SystemProgramID,
	}
	for i, meta := range metas {
		assert.Equal(t, want[i], meta.PublicKey, "account %d", i)
	}

	assert.True(t, metas[0].IsSigner)
	assert.True(t, metas[3].IsWritable)
	assert.False(t, metas[7].IsWritable, "vault authority is read-only")
	assert.True(t, metas[9].IsSigner)
}
