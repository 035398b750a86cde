package types

import (
	"context"
	"fmt"
	"strings"
)

// UserOperation is an ERC-4337 user operation as the wallet service accepts
// it: all numeric fields are 0x-prefixed hex strings, byte fields are
// 0x-prefixed hex data.
type UserOperation struct {
	Sender               string `json:"sender" validate:"required"`
	Nonce                string `json:"nonce" validate:"required"`
	InitCode             string `json:"initCode"`
	CallData             string `json:"callData" validate:"required"`
	CallGasLimit         string `json:"callGasLimit"`
	VerificationGasLimit string `json:"verificationGasLimit"`
	PreVerificationGas   string `json:"preVerificationGas"`
	MaxFeePerGas         string `json:"maxFeePerGas"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas"`
	PaymasterAndData     string `json:"paymasterAndData"`
	Signature            string `json:"signature"`
}

// Signed reports whether the operation already carries a signature.
func (op *UserOperation) Signed() bool {
	sig := strings.TrimPrefix(op.Signature, "0x")
	return sig != ""
}

// Validate validates UserOperation
func (op *UserOperation) Validate() error {
	if op.Sender == "" {
		return fmt.Errorf("sender is required")
	}
	if !strings.HasPrefix(op.Sender, "0x") {
		return fmt.Errorf("sender must be a 0x-prefixed address")
	}
	if op.Nonce == "" {
		return fmt.Errorf("nonce is required")
	}
	if op.CallData == "" {
		return fmt.Errorf("callData is required")
	}
	return nil
}

// Signer produces signatures over user-operation hashes. Submission paths
// that need a signature require a Signer up front rather than failing at
// runtime once the unsigned payload reaches the service.
type Signer interface {
	// SignUserOperationHash signs the 32-byte user-operation hash.
	SignUserOperationHash(ctx context.Context, hash []byte) ([]byte, error)
	// Address returns the 0x-prefixed address of the signing key.
	Address() string
}
