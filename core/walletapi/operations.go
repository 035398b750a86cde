package walletapi

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/meshwallet/sdk-go/core/contracts"
	"github.com/meshwallet/sdk-go/core/types"
	"github.com/meshwallet/sdk-go/core/util"
)

// OperationAPI implements the primary operation endpoints.
type OperationAPI struct {
	transport  Transport
	baseURL    string
	signer     types.Signer
	entrypoint *contracts.Entrypoint
}

var _ types.IOperationAPI = (*OperationAPI)(nil)

// OperationAPIOptions contains options for creating an OperationAPI.
type OperationAPIOptions struct {
	Transport Transport
	BaseURL   string
	// Signer enables SubmitSigned. Nil leaves the surface in unsigned mode.
	Signer types.Signer
	// EntrypointAddress overrides the default entrypoint used for
	// user-operation hashing.
	EntrypointAddress string
}

// LoadOperationAPI creates the operation request surface.
func LoadOperationAPI(opts OperationAPIOptions) (types.IOperationAPI, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	entrypointAddr := opts.EntrypointAddress
	if entrypointAddr == "" {
		entrypointAddr = contracts.DefaultEntrypointAddress
	}
	entrypoint, err := contracts.NewEntrypointAt(entrypointAddr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load entrypoint binding")
	}

	return &OperationAPI{
		transport:  opts.Transport,
		baseURL:    opts.BaseURL,
		signer:     opts.Signer,
		entrypoint: entrypoint,
	}, nil
}

// Submit submits a user operation for execution.
//
// The service executes asynchronously: the returned operation starts in the
// queued state and should be followed with the client's WaitForOperation.
//
// Example:
//
//	op, err := opAPI.Submit(ctx, types.SubmitOperationInput{
//	    WalletID: "wallet-123",
//	    ChainID:  8453,
//	    UserOp:   userOp,
//	})
func (o *OperationAPI) Submit(ctx context.Context, input types.SubmitOperationInput) (*types.Operation, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	var op types.Operation
	url := fmt.Sprintf("%s/api/op", o.baseURL)
	if err := o.transport.Post(ctx, url, &input, &op); err != nil {
		return nil, errors.Wrap(err, "failed to submit operation")
	}
	return &op, nil
}

// SubmitSigned signs the user operation with the configured signer before
// submitting. The signature covers the entrypoint user-operation hash for
// the target chain. Requires a signer; fails before any I/O without one.
func (o *OperationAPI) SubmitSigned(ctx context.Context, input types.SubmitOperationInput) (*types.Operation, error) {
	if o.signer == nil {
		return nil, types.NewFormatError("no signer configured: SubmitSigned requires a client built with WithSigner")
	}
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	hash, err := o.entrypoint.UserOpHash(&input.UserOp, input.ChainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash user operation")
	}
	sig, err := o.signer.SignUserOperationHash(ctx, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign user operation")
	}
	input.UserOp.Signature = hexutil.Encode(sig)

	return o.Submit(ctx, input)
}

// Get fetches an operation by its UUID identifier. The identifier is
// shape-checked before any network call; anything that is not a canonical
// 8-4-4-4-12 UUID fails fast with a format error.
func (o *OperationAPI) Get(ctx context.Context, input types.GetOperationInput) (*types.Operation, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := util.ValidateOperationID(input.ID); err != nil {
		return nil, err
	}

	var op types.Operation
	url := fmt.Sprintf("%s/api/op/%s", o.baseURL, input.ID)
	if err := o.transport.Get(ctx, url, &op); err != nil {
		return nil, err
	}
	return &op, nil
}
