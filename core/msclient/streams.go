package msclient

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meanfi/msp-sdk-go/core/layout"
	"github.com/meanfi/msp-sdk-go/core/types"
)

// GetStream fetches the account at address and decodes it as a stream
// record.
func (c *Client) GetStream(ctx context.Context, address solana.PublicKey) (*types.StreamRecord, error) {
	res, err := c.transport.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: c.commitment,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, errors.Wrapf(ErrorStreamNotFound, "%s", address)
		}
		return nil, errors.Wrapf(ErrorConnection, "get account %s: %v", address, err)
	}
	if res == nil || res.Value == nil {
		return nil, errors.Wrapf(ErrorStreamNotFound, "%s", address)
	}

	rec, err := layout.DecodeStream(res.Value.Data.GetBinary())
	if err != nil {
		return nil, err
	}
	c.logger.Debug("decoded stream account",
		zap.String("address", address.String()),
		zap.String("name", rec.StreamName))
	return rec, nil
}

// ListStreams scans the program's accounts for stream records,
// optionally narrowed by treasurer and/or beneficiary. Accounts that do
// not decode as stream records are skipped.
func (c *Client) ListStreams(ctx context.Context, input types.ListStreamsInput) ([]types.KeyedStream, error) {
	filters := []rpc.RPCFilter{{DataSize: uint64(layout.StreamAccountSize)}}
	if input.Treasurer != nil {
		filters = append(filters, memcmpFilter("treasurer_address", input.Treasurer.Bytes()))
	}
	if input.Beneficiary != nil {
		filters = append(filters, memcmpFilter("beneficiary_withdrawal_address", input.Beneficiary.Bytes()))
	}

	res, err := c.transport.GetProgramAccountsWithOpts(ctx, c.ProgramID, &rpc.GetProgramAccountsOpts{
		Commitment: c.commitment,
		Encoding:   solana.EncodingBase64,
		Filters:    filters,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrorConnection, "get program accounts: %v", err)
	}

	streams := make([]types.KeyedStream, 0, len(res))
	for _, acc := range res {
		if acc == nil || acc.Account == nil {
			continue
		}
		rec, err := layout.DecodeStream(acc.Account.Data.GetBinary())
		if err != nil {
			c.logger.Warn("skipping undecodable program account",
				zap.String("address", acc.Pubkey.String()),
				zap.Error(err))
			continue
		}
		streams = append(streams, types.KeyedStream{Address: acc.Pubkey, StreamRecord: *rec})
	}
	return streams, nil
}

// memcmpFilter matches a 32-byte key at its schema offset.
func memcmpFilter(field string, needle []byte) rpc.RPCFilter {
	return rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: uint64(layout.StreamSchema.Offset(field)),
			Bytes:  solana.Base58(needle),
		},
	}
}
