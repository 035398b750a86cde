package contracts

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshwallet/sdk-go/core/types"
)

func testBig(n int64) *big.Int {
	return big.NewInt(n)
}

func testUserOp() types.UserOperation {
	return types.UserOperation{
		Sender:               "0x1234567890abcdef1234567890abcdef12345678",
		Nonce:                "0x1",
		InitCode:             "0x",
		CallData:             "0xb61d27f6",
		CallGasLimit:         "0x30d40",
		VerificationGasLimit: "0x186a0",
		PreVerificationGas:   "0xc350",
		MaxFeePerGas:         "0x3b9aca00",
		MaxPriorityFeePerGas: "0x3b9aca00",
		PaymasterAndData:     "0x",
		Signature:            "0x",
	}
}

func TestNewEntrypoint(t *testing.T) {
	e, err := NewEntrypoint()
	require.NoError(t, err)
	require.Equal(t, DefaultEntrypointAddress, e.Address().Hex())
}

func TestNewEntrypointAt_InvalidAddress(t *testing.T) {
	_, err := NewEntrypointAt("not-an-address")
	require.Error(t, err)
}

func TestPackHandleOps(t *testing.T) {
	e, err := NewEntrypoint()
	require.NoError(t, err)

	data, err := e.PackHandleOps([]types.UserOperation{testUserOp()}, "0x1234567890abcdef1234567890abcdef12345678")
	require.NoError(t, err)

	// calldata starts with the handleOps selector
	require.Greater(t, len(data), 4)
	require.Equal(t, e.abi.Methods["handleOps"].ID, data[:4])
}

func TestPackHandleOps_InvalidBeneficiary(t *testing.T) {
	e, err := NewEntrypoint()
	require.NoError(t, err)

	_, err = e.PackHandleOps([]types.UserOperation{testUserOp()}, "beneficiary")
	require.Error(t, err)
}

func TestUserOpHash(t *testing.T) {
	e, err := NewEntrypoint()
	require.NoError(t, err)

	op := testUserOp()
	hash, err := e.UserOpHash(&op, 8453)
	require.NoError(t, err)
	require.Len(t, hash, 32)

	// deterministic for identical input
	again, err := e.UserOpHash(&op, 8453)
	require.NoError(t, err)
	require.Equal(t, hash, again)

	// sensitive to every hashed field and the chain id
	op.Nonce = "0x2"
	changed, err := e.UserOpHash(&op, 8453)
	require.NoError(t, err)
	require.NotEqual(t, hash, changed)

	op.Nonce = "0x1"
	otherChain, err := e.UserOpHash(&op, 1)
	require.NoError(t, err)
	require.NotEqual(t, hash, otherChain)

	// the signature is not part of the hash
	op.Signature = "0xdeadbeef"
	unsignedEqual, err := e.UserOpHash(&op, 8453)
	require.NoError(t, err)
	require.Equal(t, hash, unsignedEqual)
}

func TestUserOpHash_InvalidQuantity(t *testing.T) {
	e, err := NewEntrypoint()
	require.NoError(t, err)

	op := testUserOp()
	op.Nonce = "1" // not 0x-prefixed
	_, err = e.UserOpHash(&op, 1)
	require.Error(t, err)
}

func TestUnpackRevert(t *testing.T) {
	e, err := NewEntrypoint()
	require.NoError(t, err)

	failedOp := e.abi.Errors["FailedOp"]
	packed, err := failedOp.Inputs.Pack(testBig(0), "AA21 didn't pay prefund")
	require.NoError(t, err)
	data := append(failedOp.ID.Bytes()[:4], packed...)

	reason, err := e.UnpackRevert(data)
	require.NoError(t, err)
	require.Equal(t, "AA21 didn't pay prefund", reason)
}

func TestUnpackRevert_TooShort(t *testing.T) {
	e, err := NewEntrypoint()
	require.NoError(t, err)

	_, err = e.UnpackRevert([]byte{0x01})
	require.Error(t, err)
}
