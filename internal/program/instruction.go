package program

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// Instruction tags understood by the escrow program.
const (
	TagDeposit  byte = 0
	TagWithdraw byte = 1
)

// Payload is 1 tag byte followed by an 8-byte little-endian amount.
const instructionDataLen = 9

func encodeInstruction(tag byte, amount uint64) []byte {
	data := make([]byte, instructionDataLen)
	data[0] = tag
	binary.LittleEndian.PutUint64(data[1:], amount)
	return data
}

// EncodeDeposit builds the instruction payload for a deposit of amount base units.
func EncodeDeposit(amount uint64) []byte {
	return encodeInstruction(TagDeposit, amount)
}

// EncodeWithdraw builds the instruction payload for a withdrawal of amount base units.
func EncodeWithdraw(amount uint64) []byte {
	return encodeInstruction(TagWithdraw, amount)
}

// TransferAccounts collects the accounts referenced by a deposit or withdraw
// instruction. The builders below put them in the exact order the escrow
// program reads them.
type TransferAccounts struct {
	User          solana.PublicKey // wallet: transaction signer, fee payer, logger rent payer
	UserToken     solana.PublicKey // wallet's associated token account for the mint
	EscrowState   solana.PublicKey // PDA ["escrow", mint]
	Vault         solana.PublicKey // PDA ["vault", mint], SPL token account holding escrowed funds
	LoggerProgram solana.PublicKey
	LoggerState   solana.PublicKey // sequence counter account owned by the logger program
	Message       solana.PublicKey // PDA ["logger", next sequence]
	Mint          solana.PublicKey
}

// NewDepositInstruction builds the deposit instruction, creating the escrow
// state and vault accounts on chain if this is the first deposit for the mint.
func NewDepositInstruction(programID solana.PublicKey, accounts TransferAccounts, amount uint64) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.Meta(accounts.User).WRITE().SIGNER(),
		solana.Meta(accounts.UserToken).WRITE(),
		solana.Meta(accounts.EscrowState).WRITE(),
		solana.Meta(accounts.Vault).WRITE(),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SysVarRentPubkey),
		solana.Meta(accounts.LoggerProgram),
		solana.Meta(accounts.LoggerState).WRITE(),
		solana.Meta(accounts.Message).WRITE(),
		solana.Meta(accounts.User).WRITE().SIGNER(), // rent payer for the message account
		solana.Meta(solana.SystemProgramID),
		solana.Meta(accounts.Mint),
	}
	return solana.NewInstruction(programID, metas, EncodeDeposit(amount))
}

// NewWithdrawInstruction builds the withdraw instruction. The vault address
// appears twice: once as the token account being drained and once as the
// transfer authority, since the program derives both from the same seeds.
func NewWithdrawInstruction(programID solana.PublicKey, accounts TransferAccounts, amount uint64) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.Meta(accounts.User).WRITE().SIGNER(),
		solana.Meta(accounts.UserToken).WRITE(),
		solana.Meta(accounts.EscrowState).WRITE(),
		solana.Meta(accounts.Vault).WRITE(),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(accounts.LoggerProgram),
		solana.Meta(accounts.LoggerState).WRITE(),
		solana.Meta(accounts.Vault),
		solana.Meta(accounts.Message).WRITE(),
		solana.Meta(accounts.User).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}
	return solana.NewInstruction(programID, metas, EncodeWithdraw(amount))
}
