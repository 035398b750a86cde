package util

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshwallet/sdk-go/core/types"
)

func TestValidateOperationID_Valid(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"00000000-0000-0000-0000-000000000000",
		"A9F0B2C1-4D5E-4F60-8A7B-9C0D1E2F3A4B", // uppercase hex is canonical too
	}

	for _, id := range valid {
		t.Run(id, func(t *testing.T) {
			require.NoError(t, ValidateOperationID(id))
		})
	}
}

func TestValidateOperationID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{
			name: "Empty string",
			id:   "",
		},
		{
			name: "Not a UUID",
			id:   "not-a-uuid",
		},
		{
			name: "Invalid hex digit",
			id:   "123e4567-e89b-12d3-a456-42661417400g",
		},
		{
			name: "Trailing suffix",
			id:   "123e4567-e89b-12d3-a456-426614174000x",
		},
		{
			name: "Missing group separator",
			id:   "123e4567e89b-12d3-a456-426614174000",
		},
		{
			name: "Braced flavor",
			id:   "{123e4567-e89b-12d3-a456-426614174000}",
		},
		{
			name: "URN flavor",
			id:   "urn:uuid:123e4567-e89b-12d3-a456-426614174000",
		},
		{
			name: "Dashless flavor",
			id:   "123e4567e89b12d3a456426614174000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperationID(tt.id)
			require.Error(t, err)
			require.True(t, types.IsFormat(err))
		})
	}
}
