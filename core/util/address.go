package util

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// HexAddress is a checksummed 0x-prefixed EVM address.
type HexAddress struct {
	address common.Address
}

// NewHexAddressFromString parses and checksums a hex address string.
func NewHexAddressFromString(s string) (HexAddress, error) {
	if !common.IsHexAddress(s) {
		return HexAddress{}, errors.Errorf("invalid hex address: %s", s)
	}
	return HexAddress{address: common.HexToAddress(s)}, nil
}

// Address returns the EIP-55 checksummed string form.
func (a HexAddress) Address() string {
	return a.address.Hex()
}

// Bytes returns the raw 20-byte address.
func (a HexAddress) Bytes() []byte {
	return a.address.Bytes()
}
