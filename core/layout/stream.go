package layout

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/meanfi/msp-sdk-go/core/types"
)

// StreamSchema declares the packed shape of a stream account record.
// Field order and widths are byte-for-byte compatible with the deployed
// program's account layout; any reordering breaks the wire format.
var StreamSchema = Schema{
	{Name: "tag", Kind: Uint8, Width: 1},
	{Name: "initialized", Kind: Uint8, Width: 1},
	{Name: "stream_id", Kind: Bytes, Width: 32},
	{Name: "stream_name", Kind: String16, Width: 32},
	{Name: "treasurer_address", Kind: Bytes, Width: 32},
	{Name: "rate_amount", Kind: Uint64, Width: 8},
	{Name: "rate_interval_in_seconds", Kind: Uint64, Width: 8},
	{Name: "start_utc", Kind: Uint64, Width: 8},
	{Name: "rate_cliff_in_seconds", Kind: Uint64, Width: 8},
	{Name: "cliff_vest_amount", Kind: Uint64, Width: 8},
	{Name: "cliff_vest_percent", Kind: Uint64, Width: 8},
	{Name: "beneficiary_withdrawal_address", Kind: Bytes, Width: 32},
	{Name: "escrow_token_address", Kind: Bytes, Width: 32},
	{Name: "escrow_vested_amount", Kind: Uint64, Width: 8},
	{Name: "escrow_unvested_amount", Kind: Uint64, Width: 8},
	{Name: "treasury_address", Kind: Bytes, Width: 32},
	{Name: "escrow_estimated_depletion_utc", Kind: Uint64, Width: 8},
	{Name: "total_deposits", Kind: Uint64, Width: 8},
	{Name: "total_withdrawals", Kind: Uint64, Width: 8},
}

// StreamAccountSize is the packed size of a stream account record.
var StreamAccountSize = StreamSchema.Size()

// DecodeStream unpacks a stream account record. buf must hold at least
// StreamAccountSize bytes; longer buffers are read from offset 0.
func DecodeStream(buf []byte) (*types.StreamRecord, error) {
	values, err := StreamSchema.Unpack(buf)
	if err != nil {
		return nil, err
	}

	return &types.StreamRecord{
		Tag:                          values[0].(uint8),
		Initialized:                  values[1].(uint8) != 0,
		StreamID:                     solana.PublicKeyFromBytes(values[2].([]byte)),
		StreamName:                   values[3].(string),
		TreasurerAddress:             solana.PublicKeyFromBytes(values[4].([]byte)),
		RateAmount:                   values[5].(uint64),
		RateIntervalInSeconds:        values[6].(uint64),
		StartUTC:                     values[7].(uint64),
		RateCliffInSeconds:           values[8].(uint64),
		CliffVestAmount:              values[9].(uint64),
		CliffVestPercent:             values[10].(uint64),
		BeneficiaryWithdrawalAddress: solana.PublicKeyFromBytes(values[11].([]byte)),
		EscrowTokenAddress:           solana.PublicKeyFromBytes(values[12].([]byte)),
		EscrowVestedAmount:           values[13].(uint64),
		EscrowUnvestedAmount:         values[14].(uint64),
		TreasuryAddress:              solana.PublicKeyFromBytes(values[15].([]byte)),
		EscrowEstimatedDepletionUTC:  values[16].(uint64),
		TotalDeposits:                values[17].(uint64),
		TotalWithdrawals:             values[18].(uint64),
	}, nil
}

// EncodeStream packs a stream record into exactly StreamAccountSize
// bytes, in schema order.
func EncodeStream(rec *types.StreamRecord) ([]byte, error) {
	if rec == nil {
		return nil, errors.Wrap(ErrorInvalidField, "record is nil")
	}

	initialized := uint8(0)
	if rec.Initialized {
		initialized = 1
	}

	values := []any{
		rec.Tag,
		initialized,
		rec.StreamID.Bytes(),
		rec.StreamName,
		rec.TreasurerAddress.Bytes(),
		rec.RateAmount,
		rec.RateIntervalInSeconds,
		rec.StartUTC,
		rec.RateCliffInSeconds,
		rec.CliffVestAmount,
		rec.CliffVestPercent,
		rec.BeneficiaryWithdrawalAddress.Bytes(),
		rec.EscrowTokenAddress.Bytes(),
		rec.EscrowVestedAmount,
		rec.EscrowUnvestedAmount,
		rec.TreasuryAddress.Bytes(),
		rec.EscrowEstimatedDepletionUTC,
		rec.TotalDeposits,
		rec.TotalWithdrawals,
	}
	return StreamSchema.Pack(values)
}
