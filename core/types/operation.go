package types

import (
	"fmt"
	"time"
)

// OperationState is the lifecycle state of a submitted operation.
type OperationState string

const (
	// OperationStateQueued means the operation was accepted but not yet broadcast.
	OperationStateQueued OperationState = "queued"
	// OperationStateSent means the operation was broadcast and awaits confirmation.
	OperationStateSent OperationState = "sent"
	// OperationStateSuccess is a terminal state: the operation confirmed on-chain.
	OperationStateSuccess OperationState = "success"
	// OperationStateFailed is a terminal state: the operation reverted or was dropped.
	OperationStateFailed OperationState = "failed"
)

// IsTerminal reports whether the state will not transition further.
func (s OperationState) IsTerminal() bool {
	return s == OperationStateSuccess || s == OperationStateFailed
}

// Valid reports whether the state is one of the known lifecycle states.
func (s OperationState) Valid() bool {
	switch s {
	case OperationStateQueued, OperationStateSent, OperationStateSuccess, OperationStateFailed:
		return true
	}
	return false
}

// Operation is the status payload tracked by ID through
// queued -> sent -> success/failed.
type Operation struct {
	ID        string         `json:"id"`
	State     OperationState `json:"state"`
	TxHash    *string        `json:"txHash,omitempty"` // nil until broadcast
	ChainID   int64          `json:"chainId,omitempty"`
	Error     *string        `json:"error,omitempty"`     // failure detail, nil unless failed
	CreatedAt int64          `json:"createdAt,omitempty"` // unix milliseconds
}

// SubmitOperationInput is input for SubmitOperation
type SubmitOperationInput struct {
	WalletID       string        `json:"walletId" validate:"required"`
	ChainID        int64         `json:"chainId" validate:"required,gt=0"`
	UserOp         UserOperation `json:"userOp" validate:"required"`
	IdempotencyKey string        `json:"idempotencyKey,omitempty"`
}

// GetOperationInput is input for GetOperation
type GetOperationInput struct {
	ID string `validate:"required,uuid"`
}

// WaitOptions configures the operation poller.
//
// Both bounds are enforced simultaneously: polling stops with a timeout
// error on whichever of Deadline or MaxAttempts trips first. Nil fields
// take the documented defaults (interval 2s, 60 attempts, 120s deadline).
// An explicit zero Interval is legal and means poll with no delay.
type WaitOptions struct {
	Interval    *time.Duration // delay between polls (default 2s)
	MaxAttempts *int           // poll count cap (default 60)
	Deadline    *time.Duration // wall-clock cap (default 120s)
	// OnPoll, when set, is invoked synchronously with the payload of every
	// completed poll, terminal or not, before the terminal check.
	OnPoll func(*Operation)
}

// Validate validates SubmitOperationInput
func (s *SubmitOperationInput) Validate() error {
	if s.WalletID == "" {
		return fmt.Errorf("wallet_id is required")
	}
	if s.ChainID <= 0 {
		return fmt.Errorf("chain_id must be positive")
	}
	return s.UserOp.Validate()
}

// Validate validates GetOperationInput
func (g *GetOperationInput) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}
