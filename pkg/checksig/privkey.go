package checksig

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

const (
	privKeyBytesLen = 32

	// compressMagic is appended to the scalar of a key whose public key
	// is serialized in compressed form.
	compressMagic byte = 0x01

	uncompressedPayloadSize = 1 + privKeyBytesLen
	compressedPayloadSize   = 1 + privKeyBytesLen + 1
)

// PrivateKey is a decoded wallet-import-format private key.
type PrivateKey struct {
	key        *secp256k1.PrivateKey
	version    byte
	compressed bool
}

// DecodePrivateKey decodes a base58check private key. A 33 byte payload is an
// uncompressed key, a 34 byte payload carries a trailing compression marker.
// Neither the version byte nor the marker value is checked.
func DecodePrivateKey(text string) (*PrivateKey, error) {
	payload, err := decodeCheck(text)
	if err != nil {
		return nil, errors.Wrap(err, "decoding private key")
	}

	var compressed bool
	switch len(payload) {
	case uncompressedPayloadSize:
		compressed = false
	case compressedPayloadSize:
		compressed = true
	default:
		return nil, errors.Wrapf(ErrFormat, "private key decodes to %d bytes", len(payload))
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(payload[1 : 1+privKeyBytesLen])
	if overflow || scalar.IsZero() {
		return nil, errors.Wrap(ErrKey, "scalar is zero or not below the curve order")
	}

	return &PrivateKey{
		key:        secp256k1.NewPrivateKey(&scalar),
		version:    payload[0],
		compressed: compressed,
	}, nil
}

// NewPrivateKey wraps a secp256k1 key so it can be encoded and used for
// signing.
func NewPrivateKey(key *secp256k1.PrivateKey, version byte, compressed bool) *PrivateKey {
	return &PrivateKey{key: key, version: version, compressed: compressed}
}

// Encode returns the base58check form of the key.
func (k *PrivateKey) Encode() string {
	payload := make([]byte, 0, privKeyBytesLen+1)
	payload = append(payload, k.key.Serialize()...)
	if k.compressed {
		payload = append(payload, compressMagic)
	}
	return base58.CheckEncode(payload, k.version)
}

// Version returns the version byte the key was encoded with.
func (k *PrivateKey) Version() byte {
	return k.version
}

// Compressed reports whether the key declares a compressed public key.
func (k *PrivateKey) Compressed() bool {
	return k.compressed
}

// PubKey returns the public key of k.
func (k *PrivateKey) PubKey() *secp256k1.PublicKey {
	return k.key.PubKey()
}

// SerializePubKey serializes the public key the way the key declares it.
func (k *PrivateKey) SerializePubKey() []byte {
	if k.compressed {
		return k.key.PubKey().SerializeCompressed()
	}
	return k.key.PubKey().SerializeUncompressed()
}

// Address returns the P2PKH address of the key on the given network.
func (k *PrivateKey) Address(params *Params) (*Address, error) {
	return NewAddressPubKey(k.SerializePubKey(), params)
}
