package types

import (
	"context"
)

// Client is the SDK-facing surface of the wallet service.
type Client interface {
	// SubmitOperation submits a user operation and returns the accepted
	// operation record with its server-assigned ID.
	SubmitOperation(ctx context.Context, input SubmitOperationInput) (*Operation, error)
	// GetOperation fetches the current status of an operation by ID.
	GetOperation(ctx context.Context, id string) (*Operation, error)
	// WaitForOperation polls the operation until it reaches a terminal
	// state or a configured bound trips.
	WaitForOperation(ctx context.Context, id string, opts WaitOptions) (*Operation, error)
	// WaitForOp is the relay flavor of WaitForOperation: free-form token
	// identifiers, no UUID pre-check.
	WaitForOp(ctx context.Context, token string, opts WaitOptions) (*Operation, error)
	// LoadOperationAPI returns the operation request surface.
	LoadOperationAPI() (IOperationAPI, error)
	// LoadRelayAPI returns the relay request surface.
	LoadRelayAPI() (IRelayAPI, error)
	// LoadWalletAPI returns the wallet request surface.
	LoadWalletAPI() (IWalletAPI, error)
	// LoadBridgeAPI returns the cross-chain bridge request surface.
	LoadBridgeAPI() (IBridgeAPI, error)
	// Signer returns the configured signer, or nil in unsigned mode.
	Signer() Signer
}

// IOperationAPI defines the primary operation endpoints.
type IOperationAPI interface {
	// Submit submits a user operation for execution.
	Submit(ctx context.Context, input SubmitOperationInput) (*Operation, error)
	// SubmitSigned signs the user operation with the configured signer
	// before submitting. Fails up front when no signer is configured.
	SubmitSigned(ctx context.Context, input SubmitOperationInput) (*Operation, error)
	// Get fetches an operation by its UUID identifier. The identifier is
	// shape-checked before any network call.
	Get(ctx context.Context, input GetOperationInput) (*Operation, error)
}

// IRelayAPI defines the alternate relay status endpoint, which uses
// free-form operation tokens and reports missing operations as 404.
type IRelayAPI interface {
	// GetOp fetches an operation by its relay token.
	GetOp(ctx context.Context, token string) (*Operation, error)
}

// IWalletAPI defines wallet management endpoints.
type IWalletAPI interface {
	// Create creates a new smart account.
	Create(ctx context.Context, input CreateWalletInput) (*Wallet, error)
	// Get fetches a wallet by ID.
	Get(ctx context.Context, walletID string) (*Wallet, error)
	// List returns a page of wallets.
	List(ctx context.Context, input ListWalletsInput) (*WalletPage, error)
}

// IBridgeAPI defines cross-chain transfer endpoints.
type IBridgeAPI interface {
	// Transfer starts a cross-chain transfer and returns the operation
	// tracking it.
	Transfer(ctx context.Context, input TransferInput) (*Operation, error)
	// GetHistory returns bridge transfer records for a wallet.
	GetHistory(ctx context.Context, input GetBridgeHistoryInput) ([]BridgeHistory, error)
	// GetWithdrawalProof returns the proof bundle needed to claim a
	// withdrawal on the destination chain.
	GetWithdrawalProof(ctx context.Context, input GetWithdrawalProofInput) (*WithdrawalProof, error)
}
