// Package msclient is the client glue around the Money Streaming
// Program: RPC connection, key material loading and instruction
// construction. The heavy lifting — the account record codec — lives in
// core/layout; everything here is thin pass-through over external
// collaborators.
package msclient

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meanfi/msp-sdk-go/core/logging"
)

var (
	// ErrorConnection indicates the RPC endpoint is unreachable. It is
	// surfaced as-is; the client never retries.
	ErrorConnection = errors.New("rpc endpoint unreachable")
	// ErrorStreamNotFound indicates no account exists at the requested
	// address.
	ErrorStreamNotFound = errors.New("stream not found")
)

// Client talks to one RPC endpoint about one deployed program. The
// program id and payer key are explicit configuration, not process-wide
// constants.
type Client struct {
	ProgramID solana.PublicKey `validate:"required"`
	Payer     solana.PrivateKey

	transport  Transport
	commitment rpc.CommitmentType
	logger     *zap.Logger
}

type Option func(*Client)

// NewClient creates a client bound to the given endpoint. The endpoint
// is probed once so an unreachable node fails fast with ErrorConnection.
func NewClient(ctx context.Context, endpoint string, options ...Option) (*Client, error) {
	c := &Client{
		commitment: rpc.CommitmentConfirmed,
		logger:     logging.Logger,
	}
	for _, option := range options {
		option(c)
	}
	if c.transport == nil {
		c.transport = rpc.New(endpoint)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	if _, err := c.transport.GetHealth(ctx); err != nil {
		return nil, errors.Wrapf(ErrorConnection, "%s: %v", endpoint, err)
	}

	return c, nil
}

func (c *Client) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// WithProgramID sets the deployed program the client addresses.
func WithProgramID(programID solana.PublicKey) Option {
	return func(c *Client) {
		c.ProgramID = programID
	}
}

// WithPayer sets the signing identity that funds account creation.
func WithPayer(payer solana.PrivateKey) Option {
	return func(c *Client) {
		c.Payer = payer
	}
}

// WithCommitment overrides the confirmation level used for reads.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *Client) {
		c.commitment = commitment
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		logging.SetLogger(logger)
	}
}

// WithTransport substitutes the RPC transport. Used by tests.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}
