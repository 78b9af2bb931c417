package msclient

import (
	"encoding/binary"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/pkg/errors"

	"github.com/meanfi/msp-sdk-go/core/layout"
	"github.com/meanfi/msp-sdk-go/core/types"
)

// On-chain instruction tags of the deployed program. These are the wire
// discriminants the program's dispatcher matches on, distinct from the
// client-side action taxonomy in core/types.
const (
	wireCreateStream  uint8 = 0
	wireAddFunds      uint8 = 1
	wireWithdraw      uint8 = 3
	wireProposeUpdate uint8 = 6
	wireAnswerUpdate  uint8 = 7
	wireCloseStream   uint8 = 8
)

const streamNameSlotBytes = 32

// CreateStreamAccount builds the system-program instruction that funds
// a new program-owned account sized to hold a stream record. The
// client's payer is the funding identity.
func (c *Client) CreateStreamAccount(input types.CreateAccountInput) (solana.Instruction, error) {
	if c.Payer == nil {
		return nil, errors.New("payer key is required to fund account creation")
	}
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return system.NewCreateAccountInstruction(
		input.Lamports,
		input.Space,
		c.ProgramID,
		c.Payer.PublicKey(),
		input.NewAccount,
	).Build(), nil
}

// BuildCreateStream builds the createStream program instruction.
func (c *Client) BuildCreateStream(input types.CreateStreamInput) (solana.Instruction, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	data := []byte{wireCreateStream}
	data = append(data, input.Beneficiary.Bytes()...)
	data, err := appendNameSlot(data, input.StreamName)
	if err != nil {
		return nil, err
	}
	// User-supplied amounts travel through the arbitrary-precision
	// path; counters and timestamps use the native one.
	if data, err = appendBigAmount(data, input.FundingAmount); err != nil {
		return nil, err
	}
	if data, err = appendBigAmount(data, input.RateAmount); err != nil {
		return nil, err
	}
	data = appendUint64(data, input.RateIntervalInSeconds)
	data = appendUint64(data, input.StartUTC)
	data = appendUint64(data, input.RateCliffInSeconds)
	if data, err = appendBigAmount(data, input.CliffVestAmount); err != nil {
		return nil, err
	}
	if data, err = appendBigAmount(data, input.CliffVestPercent); err != nil {
		return nil, err
	}
	data = appendUint64(data, input.AutoPauseInSeconds)

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(input.Treasurer, false, true),
		solana.NewAccountMeta(input.TreasurerToken, true, false),
		solana.NewAccountMeta(input.BeneficiaryToken, true, false),
		solana.NewAccountMeta(input.Treasury, false, false),
		solana.NewAccountMeta(input.TreasuryToken, true, false),
		solana.NewAccountMeta(input.StreamAccount, true, false),
		solana.NewAccountMeta(input.Mint, true, false),
		solana.NewAccountMeta(input.OpsAccount, true, false),
		solana.NewAccountMeta(c.ProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}
	return solana.NewInstruction(c.ProgramID, accounts, data), nil
}

// BuildAddFunds builds the addFunds program instruction.
func (c *Client) BuildAddFunds(input types.AddFundsInput) (solana.Instruction, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	data := []byte{wireAddFunds}
	data, err := appendBigAmount(data, input.ContributionAmount)
	if err != nil {
		return nil, err
	}
	data = appendBool(data, input.Resume)

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(input.ContributorToken, true, true),
		solana.NewAccountMeta(input.StreamAccount, true, false),
		solana.NewAccountMeta(input.Treasury, false, false),
	}
	return solana.NewInstruction(c.ProgramID, accounts, data), nil
}

// BuildWithdraw builds the withdraw program instruction.
func (c *Client) BuildWithdraw(input types.WithdrawInput) (solana.Instruction, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	data := []byte{wireWithdraw}
	data, err := appendBigAmount(data, input.WithdrawalAmount)
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(input.Beneficiary, false, false),
		solana.NewAccountMeta(input.StreamAccount, true, false),
		solana.NewAccountMeta(input.Treasury, false, false),
	}
	return solana.NewInstruction(c.ProgramID, accounts, data), nil
}

// BuildProposeUpdate builds the proposeUpdate program instruction.
func (c *Client) BuildProposeUpdate(input types.ProposeUpdateInput) (solana.Instruction, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	data := []byte{wireProposeUpdate}
	data = append(data, input.ProposedBy.Bytes()...)
	data, err := appendNameSlot(data, input.StreamName)
	if err != nil {
		return nil, err
	}
	data = append(data, input.TreasurerAddress.Bytes()...)
	data = append(data, input.BeneficiaryAddress.Bytes()...)
	data = append(data, input.AssociatedToken.Bytes()...)
	if data, err = appendBigAmount(data, input.RateAmount); err != nil {
		return nil, err
	}
	data = appendUint64(data, input.RateIntervalInSeconds)
	data = appendUint64(data, input.RateCliffInSeconds)
	if data, err = appendBigAmount(data, input.CliffVestAmount); err != nil {
		return nil, err
	}
	if data, err = appendBigAmount(data, input.CliffVestPercent); err != nil {
		return nil, err
	}
	data = appendUint64(data, input.AutoPauseInSeconds)

	accounts := proposalAccounts(input.Initializer, input.StreamTerms, input.Counterparty, input.StreamAccount)
	return solana.NewInstruction(c.ProgramID, accounts, data), nil
}

// BuildAnswerUpdate builds the answerUpdate program instruction.
func (c *Client) BuildAnswerUpdate(input types.AnswerUpdateInput) (solana.Instruction, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	data := []byte{wireAnswerUpdate}
	data = appendBool(data, input.Approve)

	accounts := proposalAccounts(input.Initializer, input.StreamTerms, input.Counterparty, input.StreamAccount)
	return solana.NewInstruction(c.ProgramID, accounts, data), nil
}

// BuildCloseStream builds the closeStream program instruction.
func (c *Client) BuildCloseStream(input types.CloseStreamInput) (solana.Instruction, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	data := []byte{wireCloseStream}
	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(input.Initializer, true, true),
		solana.NewAccountMeta(input.StreamAccount, true, false),
		solana.NewAccountMeta(input.Counterparty, false, false),
		solana.NewAccountMeta(input.Treasury, false, false),
	}
	return solana.NewInstruction(c.ProgramID, accounts, data), nil
}

// proposalAccounts is shared by proposeUpdate and answerUpdate: both
// address the proposal account, the counterparty and the stream.
func proposalAccounts(initializer, streamTerms, counterparty, stream solana.PublicKey) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(initializer, false, true),
		solana.NewAccountMeta(streamTerms, true, false),
		solana.NewAccountMeta(counterparty, false, false),
		solana.NewAccountMeta(stream, true, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}
}

func appendNameSlot(buf []byte, name string) ([]byte, error) {
	slot := make([]byte, streamNameSlotBytes)
	if err := layout.EncodeString16(name, slot); err != nil {
		return nil, err
	}
	return append(buf, slot...), nil
}

func appendBigAmount(buf []byte, v uint64) ([]byte, error) {
	enc, err := layout.EncodeBigUint64(new(big.Int).SetUint64(v))
	if err != nil {
		return nil, err
	}
	return append(buf, enc...), nil
}

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendBool(buf []byte, b bool) []byte {
	if b {
		return append(buf, 1)
	}
	return append(buf, 0)
}
