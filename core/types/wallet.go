package types

import (
	"fmt"
)

// Wallet is a smart account managed by the wallet service.
type Wallet struct {
	ID        string   `json:"id"`
	Address   string   `json:"address"`
	ChainType string   `json:"chainType"`
	ChainIDs  []int64  `json:"chainIds,omitempty"` // chains the account is deployed on
	OwnerID   *string  `json:"ownerId,omitempty"`
	PolicyIDs []string `json:"policyIds,omitempty"`
	CreatedAt int64    `json:"createdAt"` // unix milliseconds
}

// CreateWalletInput is input for CreateWallet
type CreateWalletInput struct {
	ChainType      string   `json:"chainType" validate:"required,oneof=ethereum solana"`
	OwnerID        string   `json:"ownerId,omitempty"`
	PolicyIDs      []string `json:"policyIds,omitempty"`
	IdempotencyKey string   `json:"idempotencyKey,omitempty"`
}

// ListWalletsInput is input for ListWallets
type ListWalletsInput struct {
	Cursor  string `validate:"omitempty"`
	Limit   *int   `validate:"omitempty,min=1,max=100"`
	OwnerID string `validate:"omitempty"`
}

// WalletPage is one page of a wallet listing.
type WalletPage struct {
	Wallets    []Wallet `json:"wallets"`
	NextCursor string   `json:"nextCursor,omitempty"`
}

// Validate validates CreateWalletInput
func (c *CreateWalletInput) Validate() error {
	if c.ChainType == "" {
		return fmt.Errorf("chain_type is required")
	}
	validChainTypes := map[string]bool{
		"ethereum": true,
		"solana":   true,
	}
	if !validChainTypes[c.ChainType] {
		return fmt.Errorf("chain_type must be one of: ethereum, solana")
	}
	return nil
}

// Validate validates ListWalletsInput
func (l *ListWalletsInput) Validate() error {
	if l.Limit != nil {
		if *l.Limit <= 0 {
			return fmt.Errorf("limit must be positive")
		}
		if *l.Limit > 100 {
			return fmt.Errorf("limit cannot exceed 100")
		}
	}
	return nil
}
