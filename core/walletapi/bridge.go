package walletapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/meshwallet/sdk-go/core/types"
	"github.com/meshwallet/sdk-go/core/util"
)

// BridgeAPI implements cross-chain transfer endpoints.
type BridgeAPI struct {
	transport Transport
	baseURL   string
}

var _ types.IBridgeAPI = (*BridgeAPI)(nil)

// LoadBridgeAPI creates the bridge request surface.
func LoadBridgeAPI(opts APIOptions) (types.IBridgeAPI, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	return &BridgeAPI{transport: opts.Transport, baseURL: opts.BaseURL}, nil
}

// Transfer starts a cross-chain transfer. The returned operation tracks the
// whole transfer: it stays non-terminal until funds land on the destination
// chain, so the usual wait flow applies.
//
// Example:
//
//	op, err := bridgeAPI.Transfer(ctx, types.TransferInput{
//	    WalletID:    "wallet-123",
//	    FromChainID: 1,
//	    ToChainID:   8453,
//	    Token:       "usdc",
//	    Amount:      "2500000",
//	    Recipient:   "0x1234...",
//	})
func (b *BridgeAPI) Transfer(ctx context.Context, input types.TransferInput) (*types.Operation, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	var op types.Operation
	u := fmt.Sprintf("%s/api/bridge/transfers", b.baseURL)
	if err := b.transport.Post(ctx, u, &input, &op); err != nil {
		return nil, errors.Wrap(err, "failed to start transfer")
	}
	return &op, nil
}

// GetHistory returns bridge transfer records for a wallet. Limit defaults
// to 20, offset to 0.
func (b *BridgeAPI) GetHistory(ctx context.Context, input types.GetBridgeHistoryInput) ([]types.BridgeHistory, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	limit := util.OrDefault(input.Limit, 20)
	offset := util.OrDefault(input.Offset, 0)

	q := url.Values{}
	q.Set("wallet", input.Wallet)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var history []types.BridgeHistory
	u := fmt.Sprintf("%s/api/bridge/history?%s", b.baseURL, q.Encode())
	if err := b.transport.Get(ctx, u, &history); err != nil {
		return nil, errors.Wrap(err, "failed to fetch bridge history")
	}
	return history, nil
}

// GetWithdrawalProof returns the proof bundle needed to claim a withdrawal
// on the destination chain.
func (b *BridgeAPI) GetWithdrawalProof(ctx context.Context, input types.GetWithdrawalProofInput) (*types.WithdrawalProof, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	q := url.Values{}
	q.Set("wallet", input.Wallet)
	q.Set("chainId", strconv.FormatInt(input.ChainID, 10))

	var proof types.WithdrawalProof
	u := fmt.Sprintf("%s/api/bridge/withdrawal-proof?%s", b.baseURL, q.Encode())
	if err := b.transport.Get(ctx, u, &proof); err != nil {
		return nil, err
	}
	return &proof, nil
}
