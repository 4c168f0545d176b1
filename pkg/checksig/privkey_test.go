package checksig

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePrivateKey(t *testing.T) {
	vectors, err := loadTestVectors()
	require.NoError(t, err)
	require.NotEmpty(t, vectors.Keys)

	for _, kv := range vectors.Keys {
		t.Run(kv.PrivateKey, func(t *testing.T) {
			key, err := DecodePrivateKey(kv.PrivateKey)
			require.NoError(t, err)

			assert.Equal(t, kv.Compressed, key.Compressed())
			assert.Equal(t, kv.PrivateKey, key.Encode())

			addr, err := key.Address(&PktMainNetParams)
			require.NoError(t, err)
			if kv.Compressed {
				assert.Equal(t, kv.AddressCompressed, addr.EncodeAddress())
				assert.Len(t, key.SerializePubKey(), 33)
			} else {
				assert.Equal(t, kv.AddressUncompressed, addr.EncodeAddress())
				assert.Len(t, key.SerializePubKey(), 65)
			}
		})
	}
}

func TestDecodePrivateKey_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want error
	}{
		{"bad checksum", "aFMZowhWGibSVLz88KHKjZ4hwafHeVdCS5US9WhFSY9yUxAQNRbD", ErrDecode},
		{"bad alphabet", "aFMZowhWGibSVLz88KHKjZ4hwafHeVdCS5US9WhFSY9yUxAQNRIC", ErrDecode},
		{"32 byte payload", "2henCmXczqpk6PF3WRFTf2RoUYFhEzGSSBqxt6ukCWLhB8kGyA", ErrFormat},
		{"address", referenceAddress, ErrFormat},
		{"zero scalar", "a8tF59iWDSDoGuy4syR3KzC6kL17zjjqTxYCLkcCzBpS59mJ4eFd", ErrKey},
		{"scalar equal to curve order", "aHTseK5QPb8wFRyqS3ow8AHEzWvVxEUJyW4BBdXuxpS5HcbxwEqP", ErrKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DecodePrivateKey(tt.key)
			require.Error(t, err)
			assert.Nil(t, key)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewPrivateKey_Encode(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	for _, compressed := range []bool{true, false} {
		key := NewPrivateKey(priv, 0xe0, compressed)

		decoded, err := DecodePrivateKey(key.Encode())
		require.NoError(t, err)
		assert.Equal(t, compressed, decoded.Compressed())
		assert.Equal(t, byte(0xe0), decoded.Version())
		assert.True(t, decoded.PubKey().IsEqual(priv.PubKey()))
	}
}
