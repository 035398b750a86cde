package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperationState_IsTerminal(t *testing.T) {
	require.False(t, OperationStateQueued.IsTerminal())
	require.False(t, OperationStateSent.IsTerminal())
	require.True(t, OperationStateSuccess.IsTerminal())
	require.True(t, OperationStateFailed.IsTerminal())
}

func TestOperationState_Valid(t *testing.T) {
	require.True(t, OperationStateQueued.Valid())
	require.False(t, OperationState("exploded").Valid())
	require.False(t, OperationState("").Valid())
}

func TestOperation_TxHashAbsentBeforeBroadcast(t *testing.T) {
	var op Operation
	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc","state":"queued"}`), &op))
	require.Nil(t, op.TxHash)
	require.Equal(t, OperationStateQueued, op.State)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc","state":"sent","txHash":"0xdead"}`), &op))
	require.NotNil(t, op.TxHash)
	require.Equal(t, "0xdead", *op.TxHash)
}

func TestSubmitOperationInput_Validate(t *testing.T) {
	validOp := UserOperation{
		Sender:   "0x1234567890abcdef1234567890abcdef12345678",
		Nonce:    "0x0",
		CallData: "0xb61d27f6",
	}

	tests := []struct {
		name    string
		input   SubmitOperationInput
		wantErr string
	}{
		{
			name:  "Valid",
			input: SubmitOperationInput{WalletID: "wallet-1", ChainID: 1, UserOp: validOp},
		},
		{
			name:    "Missing wallet id",
			input:   SubmitOperationInput{ChainID: 1, UserOp: validOp},
			wantErr: "wallet_id is required",
		},
		{
			name:    "Bad chain id",
			input:   SubmitOperationInput{WalletID: "wallet-1", ChainID: 0, UserOp: validOp},
			wantErr: "chain_id must be positive",
		},
		{
			name:    "Missing sender",
			input:   SubmitOperationInput{WalletID: "wallet-1", ChainID: 1, UserOp: UserOperation{Nonce: "0x0", CallData: "0x"}},
			wantErr: "sender is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestUserOperation_Signed(t *testing.T) {
	op := UserOperation{Signature: ""}
	require.False(t, op.Signed())

	op.Signature = "0x"
	require.False(t, op.Signed())

	op.Signature = "0xdeadbeef"
	require.True(t, op.Signed())
}
