package types

import (
	"fmt"
)

// BridgeHistory represents a cross-chain transfer record from the bridge.
type BridgeHistory struct {
	Type                string  `json:"type"`
	Amount              string  `json:"amount"` // base units as string, no precision loss
	FromAddress         string  `json:"fromAddress"`
	ToAddress           string  `json:"toAddress"`
	SourceTxHash        *string `json:"sourceTxHash,omitempty"`
	DestinationTxHash   *string `json:"destinationTxHash,omitempty"`
	Status              string  `json:"status"`
	BlockHeight         uint64  `json:"blockHeight"`
	BlockTimestamp      int64   `json:"blockTimestamp"`
	ExternalBlockHeight *int64  `json:"externalBlockHeight,omitempty"`
}

// TransferInput is input for Transfer
type TransferInput struct {
	WalletID       string `json:"walletId" validate:"required"`
	FromChainID    int64  `json:"fromChainId" validate:"required,gt=0"`
	ToChainID      int64  `json:"toChainId" validate:"required,gt=0"`
	Token          string `json:"token" validate:"required"`
	Amount         string `json:"amount" validate:"required"` // base units as string
	Recipient      string `json:"recipient" validate:"required"`
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// GetBridgeHistoryInput is input for GetHistory
type GetBridgeHistoryInput struct {
	Wallet string `validate:"required"`
	Limit  *int   `validate:"omitempty,min=1"`
	Offset *int   `validate:"omitempty,min=0"`
}

// WithdrawalProof represents the proofs and signatures needed to claim a
// withdrawal on the destination chain.
type WithdrawalProof struct {
	ChainID     string   `json:"chainId"`
	Contract    string   `json:"contract"`
	CreatedAt   int64    `json:"createdAt"`
	BlockHeight uint64   `json:"blockHeight"`
	Recipient   string   `json:"recipient"`
	Amount      string   `json:"amount"` // base units as string
	Root        string   `json:"root"`
	Proofs      []string `json:"proofs"`
	Signatures  []string `json:"signatures"`
}

// GetWithdrawalProofInput is input for GetWithdrawalProof
type GetWithdrawalProofInput struct {
	Wallet  string `validate:"required"`
	ChainID int64  `validate:"required,gt=0"`
}

// Validate validates TransferInput
func (t *TransferInput) Validate() error {
	if t.WalletID == "" {
		return fmt.Errorf("wallet_id is required")
	}
	if t.FromChainID <= 0 || t.ToChainID <= 0 {
		return fmt.Errorf("chain ids must be positive")
	}
	if t.FromChainID == t.ToChainID {
		return fmt.Errorf("from_chain_id and to_chain_id must differ")
	}
	if t.Token == "" {
		return fmt.Errorf("token is required")
	}
	if t.Amount == "" {
		return fmt.Errorf("amount is required")
	}
	if t.Recipient == "" {
		return fmt.Errorf("recipient is required")
	}
	return nil
}

// Validate validates GetBridgeHistoryInput
func (g *GetBridgeHistoryInput) Validate() error {
	if g.Wallet == "" {
		return fmt.Errorf("wallet is required")
	}
	if g.Limit != nil && *g.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}
	if g.Offset != nil && *g.Offset < 0 {
		return fmt.Errorf("offset cannot be negative")
	}
	return nil
}

// Validate validates GetWithdrawalProofInput
func (g *GetWithdrawalProofInput) Validate() error {
	if g.Wallet == "" {
		return fmt.Errorf("wallet is required")
	}
	if g.ChainID <= 0 {
		return fmt.Errorf("chain_id must be positive")
	}
	return nil
}
