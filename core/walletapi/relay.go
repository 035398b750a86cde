package walletapi

import (
	"context"
	"fmt"

	"github.com/meshwallet/sdk-go/core/types"
)

// RelayAPI implements the alternate relay status endpoint. Relay
// identifiers are free-form tokens, not UUIDs, and a missing operation
// comes back as a 404 that the transport maps to a distinct not-found
// error.
type RelayAPI struct {
	transport Transport
	relayURL  string
}

var _ types.IRelayAPI = (*RelayAPI)(nil)

// RelayAPIOptions contains options for creating a RelayAPI.
type RelayAPIOptions struct {
	Transport Transport
	RelayURL  string
}

// LoadRelayAPI creates the relay request surface.
func LoadRelayAPI(opts RelayAPIOptions) (types.IRelayAPI, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if opts.RelayURL == "" {
		return nil, fmt.Errorf("relay url is required")
	}
	return &RelayAPI{transport: opts.Transport, relayURL: opts.RelayURL}, nil
}

// GetOp fetches an operation by its relay token.
func (r *RelayAPI) GetOp(ctx context.Context, token string) (*types.Operation, error) {
	if token == "" {
		return nil, types.NewFormatError("relay token is required")
	}

	var op types.Operation
	url := fmt.Sprintf("%s/op/%s", r.relayURL, token)
	if err := r.transport.Get(ctx, url, &op); err != nil {
		return nil, err
	}
	return &op, nil
}
