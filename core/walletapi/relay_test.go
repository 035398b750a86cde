package walletapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshwallet/sdk-go/core/types"
)

func TestRelayAPI_GetOp(t *testing.T) {
	hash := "0xbeef"
	transport := &fakeTransport{
		response: types.Operation{ID: "tok_8f2k1", State: types.OperationStateSuccess, TxHash: &hash},
	}
	api, err := LoadRelayAPI(RelayAPIOptions{Transport: transport, RelayURL: "https://relay.test.invalid"})
	require.NoError(t, err)

	op, err := api.GetOp(context.Background(), "tok_8f2k1")
	require.NoError(t, err)
	require.Equal(t, "https://relay.test.invalid/op/tok_8f2k1", transport.lastURL)
	require.Equal(t, types.OperationStateSuccess, op.State)
}

func TestRelayAPI_GetOp_RequiresToken(t *testing.T) {
	transport := &fakeTransport{}
	api, err := LoadRelayAPI(RelayAPIOptions{Transport: transport, RelayURL: "https://relay.test.invalid"})
	require.NoError(t, err)

	_, err = api.GetOp(context.Background(), "")
	require.Error(t, err)
	require.True(t, types.IsFormat(err))
	require.Equal(t, 0, transport.calls)
}

func TestRelayAPI_GetOp_NotFoundPassthrough(t *testing.T) {
	transport := &fakeTransport{err: types.NewNotFoundError()}
	api, err := LoadRelayAPI(RelayAPIOptions{Transport: transport, RelayURL: "https://relay.test.invalid"})
	require.NoError(t, err)

	_, err = api.GetOp(context.Background(), "tok_missing")
	require.True(t, types.IsNotFound(err))
}
