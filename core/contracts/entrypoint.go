// Package contracts provides thin bindings over the on-chain entrypoint
// contract ABI: calldata packing, user-operation hashing and revert
// decoding. Execution itself happens server-side; nothing here talks to a
// node.
package contracts

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/meshwallet/sdk-go/core/types"
)

// DefaultEntrypointAddress is the canonical v0.6 entrypoint deployment.
const DefaultEntrypointAddress = "0x5FF137D4b0FDCD49DcA30c7CF57E578a026d2789"

// Entrypoint wraps the parsed entrypoint ABI.
type Entrypoint struct {
	abi     abi.ABI
	address common.Address
}

// packedUserOp mirrors the ABI tuple layout of a user operation.
type packedUserOp struct {
	Sender               common.Address
	Nonce                *big.Int
	InitCode             []byte
	CallData             []byte
	CallGasLimit         *big.Int
	VerificationGasLimit *big.Int
	PreVerificationGas   *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	PaymasterAndData     []byte
	Signature            []byte
}

// NewEntrypoint parses the embedded ABI for the default entrypoint address.
func NewEntrypoint() (*Entrypoint, error) {
	return NewEntrypointAt(DefaultEntrypointAddress)
}

// NewEntrypointAt parses the embedded ABI for a custom entrypoint address.
func NewEntrypointAt(address string) (*Entrypoint, error) {
	if !common.IsHexAddress(address) {
		return nil, errors.Errorf("invalid entrypoint address: %s", address)
	}
	parsed, err := abi.JSON(strings.NewReader(entrypointABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse entrypoint ABI")
	}
	return &Entrypoint{abi: parsed, address: common.HexToAddress(address)}, nil
}

// Address returns the entrypoint contract address.
func (e *Entrypoint) Address() common.Address {
	return e.address
}

// PackHandleOps encodes handleOps calldata for the given operations.
func (e *Entrypoint) PackHandleOps(ops []types.UserOperation, beneficiary string) ([]byte, error) {
	if !common.IsHexAddress(beneficiary) {
		return nil, errors.Errorf("invalid beneficiary address: %s", beneficiary)
	}
	packed := make([]packedUserOp, len(ops))
	for i := range ops {
		p, err := packUserOp(&ops[i])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to pack operation %d", i)
		}
		packed[i] = *p
	}
	data, err := e.abi.Pack("handleOps", packed, common.HexToAddress(beneficiary))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack handleOps")
	}
	return data, nil
}

// UserOpHash computes the entrypoint's user-operation hash:
// keccak(abi.encode(keccak(packedOp), entrypoint, chainId)).
func (e *Entrypoint) UserOpHash(op *types.UserOperation, chainID int64) ([]byte, error) {
	p, err := packUserOp(op)
	if err != nil {
		return nil, err
	}

	uint256Ty, err := abi.NewType("uint256", "", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	addressTy, err := abi.NewType("address", "", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	bytes32Ty, err := abi.NewType("bytes32", "", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// The inner hash covers every field except the signature; dynamic
	// byte fields enter as their keccak hashes.
	inner := abi.Arguments{
		{Type: addressTy}, {Type: uint256Ty}, {Type: bytes32Ty}, {Type: bytes32Ty},
		{Type: uint256Ty}, {Type: uint256Ty}, {Type: uint256Ty}, {Type: uint256Ty},
		{Type: uint256Ty}, {Type: bytes32Ty},
	}
	innerEncoded, err := inner.Pack(
		p.Sender, p.Nonce,
		toBytes32(crypto.Keccak256(p.InitCode)),
		toBytes32(crypto.Keccak256(p.CallData)),
		p.CallGasLimit, p.VerificationGasLimit, p.PreVerificationGas,
		p.MaxFeePerGas, p.MaxPriorityFeePerGas,
		toBytes32(crypto.Keccak256(p.PaymasterAndData)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode user operation")
	}

	outer := abi.Arguments{{Type: bytes32Ty}, {Type: addressTy}, {Type: uint256Ty}}
	outerEncoded, err := outer.Pack(
		toBytes32(crypto.Keccak256(innerEncoded)),
		e.address,
		big.NewInt(chainID),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode hash envelope")
	}

	return crypto.Keccak256(outerEncoded), nil
}

// UnpackRevert decodes a FailedOp revert payload into its reason string.
func (e *Entrypoint) UnpackRevert(data []byte) (string, error) {
	failedOp, ok := e.abi.Errors["FailedOp"]
	if !ok {
		return "", errors.New("FailedOp error not present in ABI")
	}
	if len(data) < 4 {
		return "", errors.New("revert data too short")
	}
	values, err := failedOp.Inputs.Unpack(data[4:])
	if err != nil {
		return "", errors.Wrap(err, "failed to unpack FailedOp")
	}
	if len(values) != 2 {
		return "", errors.Errorf("unexpected FailedOp arity: %d", len(values))
	}
	reason, ok := values[1].(string)
	if !ok {
		return "", errors.Errorf("unexpected FailedOp reason type: %T", values[1])
	}
	return reason, nil
}

func packUserOp(op *types.UserOperation) (*packedUserOp, error) {
	if !common.IsHexAddress(op.Sender) {
		return nil, errors.Errorf("invalid sender address: %s", op.Sender)
	}

	nonce, err := opBig(op.Nonce)
	if err != nil {
		return nil, errors.Wrap(err, "invalid nonce")
	}
	callGas, err := opBig(op.CallGasLimit)
	if err != nil {
		return nil, errors.Wrap(err, "invalid callGasLimit")
	}
	verificationGas, err := opBig(op.VerificationGasLimit)
	if err != nil {
		return nil, errors.Wrap(err, "invalid verificationGasLimit")
	}
	preVerificationGas, err := opBig(op.PreVerificationGas)
	if err != nil {
		return nil, errors.Wrap(err, "invalid preVerificationGas")
	}
	maxFee, err := opBig(op.MaxFeePerGas)
	if err != nil {
		return nil, errors.Wrap(err, "invalid maxFeePerGas")
	}
	maxPriorityFee, err := opBig(op.MaxPriorityFeePerGas)
	if err != nil {
		return nil, errors.Wrap(err, "invalid maxPriorityFeePerGas")
	}

	initCode, err := opBytes(op.InitCode)
	if err != nil {
		return nil, errors.Wrap(err, "invalid initCode")
	}
	callData, err := opBytes(op.CallData)
	if err != nil {
		return nil, errors.Wrap(err, "invalid callData")
	}
	paymasterAndData, err := opBytes(op.PaymasterAndData)
	if err != nil {
		return nil, errors.Wrap(err, "invalid paymasterAndData")
	}
	signature, err := opBytes(op.Signature)
	if err != nil {
		return nil, errors.Wrap(err, "invalid signature")
	}

	return &packedUserOp{
		Sender:               common.HexToAddress(op.Sender),
		Nonce:                nonce,
		InitCode:             initCode,
		CallData:             callData,
		CallGasLimit:         callGas,
		VerificationGasLimit: verificationGas,
		PreVerificationGas:   preVerificationGas,
		MaxFeePerGas:         maxFee,
		MaxPriorityFeePerGas: maxPriorityFee,
		PaymasterAndData:     paymasterAndData,
		Signature:            signature,
	}, nil
}

// opBig parses a 0x-prefixed quantity field; empty means zero. Unlike
// hexutil quantities, leading zeros are tolerated since bundlers emit them.
func opBig(s string) (*big.Int, error) {
	if s == "" || s == "0x" {
		return new(big.Int), nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, errors.Errorf("quantity %q must be 0x-prefixed", s)
	}
	n, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, errors.Errorf("invalid hex quantity %q", s)
	}
	return n, nil
}

// opBytes parses a 0x-prefixed data field; empty means no data.
func opBytes(s string) ([]byte, error) {
	if s == "" || s == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(s)
}

func toBytes32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}
