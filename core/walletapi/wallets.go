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

// WalletAPI implements wallet management endpoints.
type WalletAPI struct {
	transport Transport
	baseURL   string
}

var _ types.IWalletAPI = (*WalletAPI)(nil)

// LoadWalletAPI creates the wallet request surface.
func LoadWalletAPI(opts APIOptions) (types.IWalletAPI, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	return &WalletAPI{transport: opts.Transport, baseURL: opts.BaseURL}, nil
}

// Create creates a new smart account.
func (w *WalletAPI) Create(ctx context.Context, input types.CreateWalletInput) (*types.Wallet, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	var wallet types.Wallet
	u := fmt.Sprintf("%s/api/wallets", w.baseURL)
	if err := w.transport.Post(ctx, u, &input, &wallet); err != nil {
		return nil, errors.Wrap(err, "failed to create wallet")
	}
	return &wallet, nil
}

// Get fetches a wallet by ID.
func (w *WalletAPI) Get(ctx context.Context, walletID string) (*types.Wallet, error) {
	if walletID == "" {
		return nil, types.NewFormatError("wallet id is required")
	}

	var wallet types.Wallet
	u := fmt.Sprintf("%s/api/wallets/%s", w.baseURL, walletID)
	if err := w.transport.Get(ctx, u, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// List returns a page of wallets. Limit defaults to 20.
func (w *WalletAPI) List(ctx context.Context, input types.ListWalletsInput) (*types.WalletPage, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	limit := util.OrDefault(input.Limit, 20)

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if input.Cursor != "" {
		q.Set("cursor", input.Cursor)
	}
	if input.OwnerID != "" {
		q.Set("ownerId", input.OwnerID)
	}

	var page types.WalletPage
	u := fmt.Sprintf("%s/api/wallets?%s", w.baseURL, q.Encode())
	if err := w.transport.Get(ctx, u, &page); err != nil {
		return nil, errors.Wrap(err, "failed to list wallets")
	}
	return &page, nil
}
