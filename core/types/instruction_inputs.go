package types

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// StreamNameCapacity is the number of characters the stream name slot
// holds: 32 bytes of 16-bit code units.
const StreamNameCapacity = 16

// CreateAccountInput contains the parameters for funding a new
// program-owned account sized for a stream record.
type CreateAccountInput struct {
	NewAccount solana.PublicKey // address of the account to create
	Lamports   uint64           // balance to fund, usually rent exemption
	Space      uint64           // account data size, expected to be the stream record size
}

// Validate checks if the input is valid
func (c *CreateAccountInput) Validate() error {
	if c.NewAccount.IsZero() {
		return fmt.Errorf("new_account is required")
	}
	if c.Space == 0 {
		return fmt.Errorf("space must be positive")
	}
	return nil
}

// CreateStreamInput contains all parameters for the createStream
// instruction: the accounts the program expects plus the stream terms.
type CreateStreamInput struct {
	// Accounts, in the order the program documents them
	Treasurer        solana.PublicKey // signer, the creator of the money stream
	TreasurerToken   solana.PublicKey
	BeneficiaryToken solana.PublicKey
	Treasury         solana.PublicKey
	TreasuryToken    solana.PublicKey
	StreamAccount    solana.PublicKey // the stream contract account
	Mint             solana.PublicKey // associated token mint
	OpsAccount       solana.PublicKey // protocol operating account

	// Instruction data
	Beneficiary           solana.PublicKey
	StreamName            string
	FundingAmount         uint64 // optional
	RateAmount            uint64
	RateIntervalInSeconds uint64
	StartUTC              uint64
	RateCliffInSeconds    uint64
	CliffVestAmount       uint64 // optional
	CliffVestPercent      uint64 // optional
	AutoPauseInSeconds    uint64
}

// Validate checks if the input is valid
func (c *CreateStreamInput) Validate() error {
	if c.Treasurer.IsZero() {
		return fmt.Errorf("treasurer is required")
	}
	if c.StreamAccount.IsZero() {
		return fmt.Errorf("stream_account is required")
	}
	if c.Beneficiary.IsZero() {
		return fmt.Errorf("beneficiary is required")
	}
	if n := len([]rune(c.StreamName)); n > StreamNameCapacity {
		return fmt.Errorf("stream_name must be at most %d characters, got %d", StreamNameCapacity, n)
	}
	if c.RateIntervalInSeconds == 0 {
		return fmt.Errorf("rate_interval_in_seconds must be positive")
	}
	return nil
}

// AddFundsInput contains the parameters for the addFunds instruction.
type AddFundsInput struct {
	ContributorToken   solana.PublicKey // signer
	StreamAccount      solana.PublicKey
	Treasury           solana.PublicKey
	ContributionAmount uint64
	Resume             bool // resume a paused stream along with the contribution
}

// Validate checks if the input is valid
func (a *AddFundsInput) Validate() error {
	if a.ContributorToken.IsZero() {
		return fmt.Errorf("contributor_token is required")
	}
	if a.StreamAccount.IsZero() {
		return fmt.Errorf("stream_account is required")
	}
	if a.ContributionAmount == 0 {
		return fmt.Errorf("contribution_amount must be positive")
	}
	return nil
}

// WithdrawInput contains the parameters for the withdraw instruction.
type WithdrawInput struct {
	Beneficiary      solana.PublicKey
	StreamAccount    solana.PublicKey
	Treasury         solana.PublicKey
	WithdrawalAmount uint64
}

// Validate checks if the input is valid
func (w *WithdrawInput) Validate() error {
	if w.Beneficiary.IsZero() {
		return fmt.Errorf("beneficiary is required")
	}
	if w.StreamAccount.IsZero() {
		return fmt.Errorf("stream_account is required")
	}
	if w.WithdrawalAmount == 0 {
		return fmt.Errorf("withdrawal_amount must be positive")
	}
	return nil
}

// ProposeUpdateInput contains the parameters for the proposeUpdate
// instruction. The initializer is either the treasurer or the
// beneficiary; the counterparty is the other one.
type ProposeUpdateInput struct {
	Initializer  solana.PublicKey // signer
	StreamTerms  solana.PublicKey // the update proposal account
	Counterparty solana.PublicKey
	StreamAccount solana.PublicKey

	ProposedBy            solana.PublicKey
	StreamName            string
	TreasurerAddress      solana.PublicKey
	BeneficiaryAddress    solana.PublicKey
	AssociatedToken       solana.PublicKey // optional
	RateAmount            uint64
	RateIntervalInSeconds uint64
	RateCliffInSeconds    uint64
	CliffVestAmount       uint64 // optional
	CliffVestPercent      uint64 // optional
	AutoPauseInSeconds    uint64
}

// Validate checks if the input is valid
func (p *ProposeUpdateInput) Validate() error {
	if p.Initializer.IsZero() {
		return fmt.Errorf("initializer is required")
	}
	if p.StreamTerms.IsZero() {
		return fmt.Errorf("stream_terms is required")
	}
	if p.StreamAccount.IsZero() {
		return fmt.Errorf("stream_account is required")
	}
	if n := len([]rune(p.StreamName)); n > StreamNameCapacity {
		return fmt.Errorf("stream_name must be at most %d characters, got %d", StreamNameCapacity, n)
	}
	return nil
}

// AnswerUpdateInput contains the parameters for the answerUpdate
// instruction.
type AnswerUpdateInput struct {
	Initializer   solana.PublicKey // signer
	StreamTerms   solana.PublicKey
	Counterparty  solana.PublicKey
	StreamAccount solana.PublicKey
	Approve       bool
}

// Validate checks if the input is valid
func (a *AnswerUpdateInput) Validate() error {
	if a.Initializer.IsZero() {
		return fmt.Errorf("initializer is required")
	}
	if a.StreamTerms.IsZero() {
		return fmt.Errorf("stream_terms is required")
	}
	if a.StreamAccount.IsZero() {
		return fmt.Errorf("stream_account is required")
	}
	return nil
}

// CloseStreamInput contains the parameters for the closeStream
// instruction.
type CloseStreamInput struct {
	Initializer   solana.PublicKey // signer
	StreamAccount solana.PublicKey
	Counterparty  solana.PublicKey
	Treasury      solana.PublicKey
}

// Validate checks if the input is valid
func (c *CloseStreamInput) Validate() error {
	if c.Initializer.IsZero() {
		return fmt.Errorf("initializer is required")
	}
	if c.StreamAccount.IsZero() {
		return fmt.Errorf("stream_account is required")
	}
	return nil
}
