package msclient

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Transport is the subset of the Solana JSON-RPC surface the client
// uses. *rpc.Client satisfies it directly; tests substitute a mock.
type Transport interface {
	GetHealth(ctx context.Context) (string, error)
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetProgramAccountsWithOpts(ctx context.Context, program solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

var _ Transport = (*rpc.Client)(nil)
