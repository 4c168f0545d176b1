package checksig

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

const (
	// MessageSignatureSize is the length of a decoded message signature:
	// a flag byte followed by 32-byte R and S values.
	MessageSignatureSize = 65

	// flagMagicOffset is added to the recovery id in the flag byte.
	flagMagicOffset = 27

	// flagCompressed is added to the flag byte when the signer's public key
	// is serialized compressed.
	flagCompressed = 4

	maxRecoveryID = 3
)

// MessageSignature is a compact recoverable ECDSA signature over a
// signed-message digest.
type MessageSignature struct {
	raw [MessageSignatureSize]byte
}

// ParseMessageSignature decodes the base64 transport form of a message
// signature.
func ParseMessageSignature(text string) (*MessageSignature, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.Wrapf(ErrSignatureFormat, "malformed base64 encoding: %v", err)
	}
	return NewMessageSignature(raw)
}

// NewMessageSignature validates the 65 raw bytes of a message signature.
func NewMessageSignature(raw []byte) (*MessageSignature, error) {
	if len(raw) != MessageSignatureSize {
		return nil, errors.Wrapf(ErrSignatureFormat, "signature is %d bytes, want %d", len(raw), MessageSignatureSize)
	}
	flag := raw[0]
	if flag < flagMagicOffset || flag > flagMagicOffset+flagCompressed+maxRecoveryID {
		return nil, errors.Wrapf(ErrSignatureFormat, "invalid recovery flag %d", flag)
	}
	sig := &MessageSignature{}
	copy(sig.raw[:], raw)
	return sig, nil
}

// RecoveryID returns the public key recovery id, 0 through 3.
func (s *MessageSignature) RecoveryID() int {
	return int(s.raw[0]-flagMagicOffset) & maxRecoveryID
}

// Compressed reports whether the signer's key is to be serialized compressed
// when deriving its address.
func (s *MessageSignature) Compressed() bool {
	return (s.raw[0]-flagMagicOffset)&flagCompressed != 0
}

// Bytes returns a copy of the 65 raw signature bytes.
func (s *MessageSignature) Bytes() []byte {
	out := make([]byte, MessageSignatureSize)
	copy(out, s.raw[:])
	return out
}

// String returns the base64 transport form of the signature.
func (s *MessageSignature) String() string {
	return base64.StdEncoding.EncodeToString(s.raw[:])
}
