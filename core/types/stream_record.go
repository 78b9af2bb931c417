package types

import (
	"github.com/gagliardetto/solana-go"
)

// StreamRecord is the structured form of a money stream account as the
// on-chain program stores it. The packed wire shape (field order, widths,
// encodings) lives in core/layout; this struct only carries the decoded
// values and never mutates program state.
type StreamRecord struct {
	Tag                          uint8
	Initialized                  bool
	StreamID                     solana.PublicKey
	StreamName                   string
	TreasurerAddress             solana.PublicKey
	RateAmount                   uint64
	RateIntervalInSeconds        uint64
	StartUTC                     uint64
	RateCliffInSeconds           uint64
	CliffVestAmount              uint64
	CliffVestPercent             uint64
	BeneficiaryWithdrawalAddress solana.PublicKey
	EscrowTokenAddress           solana.PublicKey
	EscrowVestedAmount           uint64
	EscrowUnvestedAmount         uint64
	TreasuryAddress              solana.PublicKey
	EscrowEstimatedDepletionUTC  uint64
	TotalDeposits                uint64
	TotalWithdrawals             uint64
}

// KeyedStream pairs a decoded stream record with the address of the
// account it was read from.
type KeyedStream struct {
	Address solana.PublicKey
	StreamRecord
}

// ListStreamsInput narrows a program-account scan to streams owned by a
// treasurer and/or paying a beneficiary. Nil filters match everything.
type ListStreamsInput struct {
	Treasurer   *solana.PublicKey
	Beneficiary *solana.PublicKey
}
