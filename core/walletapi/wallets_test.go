package walletapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshwallet/sdk-go/core/types"
)

func loadTestWalletAPI(t *testing.T, transport *fakeTransport) types.IWalletAPI {
	t.Helper()
	api, err := LoadWalletAPI(APIOptions{Transport: transport, BaseURL: "https://api.test.invalid"})
	require.NoError(t, err)
	return api
}

func TestWalletAPI_Create(t *testing.T) {
	transport := &fakeTransport{
		response: types.Wallet{ID: "wallet-1", Address: "0x1234567890abcdef1234567890abcdef12345678", ChainType: "ethereum"},
	}
	api := loadTestWalletAPI(t, transport)

	wallet, err := api.Create(context.Background(), types.CreateWalletInput{ChainType: "ethereum"})
	require.NoError(t, err)
	require.Equal(t, "wallet-1", wallet.ID)
	require.Equal(t, "https://api.test.invalid/api/wallets", transport.lastURL)
}

func TestWalletAPI_Create_InvalidChainType(t *testing.T) {
	transport := &fakeTransport{}
	api := loadTestWalletAPI(t, transport)

	tests := []struct {
		name      string
		chainType string
		wantErr   string
	}{
		{
			name:      "Empty chain type",
			chainType: "",
			wantErr:   "chain_type is required",
		},
		{
			name:      "Unknown chain type",
			chainType: "dogecoin",
			wantErr:   "chain_type must be one of",
		},
		{
			name:      "Wrong case",
			chainType: "Ethereum",
			wantErr:   "chain_type must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := api.Create(context.Background(), types.CreateWalletInput{ChainType: tt.chainType})
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
	require.Equal(t, 0, transport.calls)
}

func TestWalletAPI_Get_RequiresID(t *testing.T) {
	transport := &fakeTransport{}
	api := loadTestWalletAPI(t, transport)

	_, err := api.Get(context.Background(), "")
	require.Error(t, err)
	require.True(t, types.IsFormat(err))
	require.Equal(t, 0, transport.calls)
}

func TestWalletAPI_List_DefaultsAndParams(t *testing.T) {
	transport := &fakeTransport{
		response: types.WalletPage{Wallets: []types.Wallet{{ID: "wallet-1"}}, NextCursor: "cur-2"},
	}
	api := loadTestWalletAPI(t, transport)

	page, err := api.List(context.Background(), types.ListWalletsInput{})
	require.NoError(t, err)
	require.Len(t, page.Wallets, 1)
	require.Equal(t, "cur-2", page.NextCursor)
	require.Equal(t, "https://api.test.invalid/api/wallets?limit=20", transport.lastURL)

	limit := 5
	_, err = api.List(context.Background(), types.ListWalletsInput{Limit: &limit, Cursor: "cur-2", OwnerID: "user-9"})
	require.NoError(t, err)
	require.Equal(t, "https://api.test.invalid/api/wallets?cursor=cur-2&limit=5&ownerId=user-9", transport.lastURL)
}

func TestWalletAPI_List_InvalidLimit(t *testing.T) {
	transport := &fakeTransport{}
	api := loadTestWalletAPI(t, transport)

	limit := 0
	_, err := api.List(context.Background(), types.ListWalletsInput{Limit: &limit})
	require.Error(t, err)

	limit = 101
	_, err = api.List(context.Background(), types.ListWalletsInput{Limit: &limit})
	require.Error(t, err)
	require.Equal(t, 0, transport.calls)
}
