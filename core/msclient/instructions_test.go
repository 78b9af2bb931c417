package msclient

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meanfi/msp-sdk-go/core/layout"
	"github.com/meanfi/msp-sdk-go/core/types"
)

func newSigningClient(t *testing.T) *Client {
	t.Helper()
	payer, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return newTestClient(t, &mockTransport{}, WithPayer(payer))
}

func instructionData(t *testing.T, ix solana.Instruction) []byte {
	t.Helper()
	data, err := ix.Data()
	require.NoError(t, err)
	return data
}

func TestCreateStreamAccount(t *testing.T) {
	c := newSigningClient(t)

	ix, err := c.CreateStreamAccount(types.CreateAccountInput{
		NewAccount: makeKey(0x42),
		Lamports:   2_039_280,
		Space:      uint64(layout.StreamAccountSize),
	})
	require.NoError(t, err)

	assert.Equal(t, solana.SystemProgramID, ix.ProgramID())

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, c.Payer.PublicKey(), accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.True(t, accounts[0].IsWritable)
	assert.Equal(t, makeKey(0x42), accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)
}

func TestCreateStreamAccountRequiresPayer(t *testing.T) {
	c := newTestClient(t, &mockTransport{})
	_, err := c.CreateStreamAccount(types.CreateAccountInput{
		NewAccount: makeKey(0x42),
		Lamports:   1,
		Space:      uint64(layout.StreamAccountSize),
	})
	require.Error(t, err)
}

func validCreateStreamInput() types.CreateStreamInput {
	return types.CreateStreamInput{
		Treasurer:             makeKey(1),
		TreasurerToken:        makeKey(2),
		BeneficiaryToken:      makeKey(3),
		Treasury:              makeKey(4),
		TreasuryToken:         makeKey(5),
		StreamAccount:         makeKey(6),
		Mint:                  makeKey(7),
		OpsAccount:            makeKey(8),
		Beneficiary:           makeKey(9),
		StreamName:            "payroll",
		FundingAmount:         10_000,
		RateAmount:            1000,
		RateIntervalInSeconds: 60,
		StartUTC:              1700000000,
		RateCliffInSeconds:    3600,
		CliffVestAmount:       250,
		CliffVestPercent:      10,
		AutoPauseInSeconds:    86400,
	}
}

func TestBuildCreateStream(t *testing.T) {
	c := newSigningClient(t)
	input := validCreateStreamInput()

	ix, err := c.BuildCreateStream(input)
	require.NoError(t, err)
	assert.Equal(t, testProgramID, ix.ProgramID())

	data := instructionData(t, ix)
	// tag + beneficiary + name slot + 8 u64 fields
	require.Len(t, data, 1+32+32+8*8)
	assert.Equal(t, uint8(0), data[0])
	assert.Equal(t, input.Beneficiary.Bytes(), data[1:33])
	assert.Equal(t, input.StreamName, layout.DecodeString16(data[33:65]))
	assert.Equal(t, input.FundingAmount, binary.LittleEndian.Uint64(data[65:73]))
	assert.Equal(t, input.RateAmount, binary.LittleEndian.Uint64(data[73:81]))
	assert.Equal(t, input.RateIntervalInSeconds, binary.LittleEndian.Uint64(data[81:89]))
	assert.Equal(t, input.StartUTC, binary.LittleEndian.Uint64(data[89:97]))
	assert.Equal(t, input.RateCliffInSeconds, binary.LittleEndian.Uint64(data[97:105]))
	assert.Equal(t, input.CliffVestAmount, binary.LittleEndian.Uint64(data[105:113]))
	assert.Equal(t, input.CliffVestPercent, binary.LittleEndian.Uint64(data[113:121]))
	assert.Equal(t, input.AutoPauseInSeconds, binary.LittleEndian.Uint64(data[121:129]))

	accounts := ix.Accounts()
	require.Len(t, accounts, 12)
	assert.Equal(t, input.Treasurer, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.False(t, accounts[0].IsWritable)
	assert.Equal(t, input.StreamAccount, accounts[5].PublicKey)
	assert.True(t, accounts[5].IsWritable)
	assert.Equal(t, testProgramID, accounts[8].PublicKey)
	assert.Equal(t, solana.TokenProgramID, accounts[9].PublicKey)
	assert.Equal(t, solana.SystemProgramID, accounts[10].PublicKey)
	assert.Equal(t, solana.SysVarRentPubkey, accounts[11].PublicKey)
}

func TestBuildCreateStreamInvalidInput(t *testing.T) {
	c := newSigningClient(t)
	input := validCreateStreamInput()
	input.Beneficiary = solana.PublicKey{}

	_, err := c.BuildCreateStream(input)
	require.Error(t, err)
}

func TestBuildAddFunds(t *testing.T) {
	c := newSigningClient(t)

	ix, err := c.BuildAddFunds(types.AddFundsInput{
		ContributorToken:   makeKey(1),
		StreamAccount:      makeKey(2),
		Treasury:           makeKey(3),
		ContributionAmount: 5000,
		Resume:             true,
	})
	require.NoError(t, err)

	data := instructionData(t, ix)
	require.Len(t, data, 1+8+1)
	assert.Equal(t, uint8(1), data[0])
	assert.Equal(t, uint64(5000), binary.LittleEndian.Uint64(data[1:9]))
	assert.Equal(t, uint8(1), data[9])

	accounts := ix.Accounts()
	require.Len(t, accounts, 3)
	assert.True(t, accounts[0].IsSigner)
	assert.True(t, accounts[0].IsWritable)
	assert.True(t, accounts[1].IsWritable)
	assert.False(t, accounts[2].IsWritable)
}

func TestBuildWithdraw(t *testing.T) {
	c := newSigningClient(t)

	ix, err := c.BuildWithdraw(types.WithdrawInput{
		Beneficiary:      makeKey(1),
		StreamAccount:    makeKey(2),
		Treasury:         makeKey(3),
		WithdrawalAmount: 750,
	})
	require.NoError(t, err)

	data := instructionData(t, ix)
	require.Len(t, data, 1+8)
	assert.Equal(t, uint8(3), data[0])
	assert.Equal(t, uint64(750), binary.LittleEndian.Uint64(data[1:9]))
}

func TestBuildProposeUpdate(t *testing.T) {
	c := newSigningClient(t)

	input := types.ProposeUpdateInput{
		Initializer:           makeKey(1),
		StreamTerms:           makeKey(2),
		Counterparty:          makeKey(3),
		StreamAccount:         makeKey(4),
		ProposedBy:            makeKey(1),
		StreamName:            "new terms",
		TreasurerAddress:      makeKey(5),
		BeneficiaryAddress:    makeKey(6),
		AssociatedToken:       makeKey(7),
		RateAmount:            2000,
		RateIntervalInSeconds: 120,
		RateCliffInSeconds:    600,
		CliffVestAmount:       100,
		CliffVestPercent:      5,
		AutoPauseInSeconds:    3600,
	}
	ix, err := c.BuildProposeUpdate(input)
	require.NoError(t, err)

	data := instructionData(t, ix)
	// tag + 5 keys/name slots of 32 + 6 u64 fields
	require.Len(t, data, 1+5*32+6*8)
	assert.Equal(t, uint8(6), data[0])
	assert.Equal(t, input.ProposedBy.Bytes(), data[1:33])
	assert.Equal(t, input.StreamName, layout.DecodeString16(data[33:65]))
	assert.Equal(t, input.TreasurerAddress.Bytes(), data[65:97])
	assert.Equal(t, input.BeneficiaryAddress.Bytes(), data[97:129])
	assert.Equal(t, input.AssociatedToken.Bytes(), data[129:161])
	assert.Equal(t, input.RateAmount, binary.LittleEndian.Uint64(data[161:169]))
	assert.Equal(t, input.AutoPauseInSeconds, binary.LittleEndian.Uint64(data[201:209]))

	accounts := ix.Accounts()
	require.Len(t, accounts, 5)
	assert.True(t, accounts[0].IsSigner)
	assert.Equal(t, solana.SystemProgramID, accounts[4].PublicKey)
}

func TestBuildAnswerUpdate(t *testing.T) {
	c := newSigningClient(t)

	for _, approve := range []bool{true, false} {
		ix, err := c.BuildAnswerUpdate(types.AnswerUpdateInput{
			Initializer:   makeKey(1),
			StreamTerms:   makeKey(2),
			Counterparty:  makeKey(3),
			StreamAccount: makeKey(4),
			Approve:       approve,
		})
		require.NoError(t, err)

		data := instructionData(t, ix)
		require.Len(t, data, 2)
		assert.Equal(t, uint8(7), data[0])
		if approve {
			assert.Equal(t, uint8(1), data[1])
		} else {
			assert.Equal(t, uint8(0), data[1])
		}
	}
}

func TestBuildCloseStream(t *testing.T) {
	c := newSigningClient(t)

	ix, err := c.BuildCloseStream(types.CloseStreamInput{
		Initializer:   makeKey(1),
		StreamAccount: makeKey(2),
		Counterparty:  makeKey(3),
		Treasury:      makeKey(4),
	})
	require.NoError(t, err)

	data := instructionData(t, ix)
	assert.Equal(t, []byte{8}, data)

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assert.True(t, accounts[0].IsSigner)
	assert.True(t, accounts[0].IsWritable)
	assert.True(t, accounts[1].IsWritable)
}
