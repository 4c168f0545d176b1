package checksig

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Sign produces a deterministic (RFC6979) recoverable signature of message on
// the PKT network.
func Sign(key *PrivateKey, message string) *MessageSignature {
	return SignWithParams(key, message, &PktMainNetParams)
}

// SignWithParams is Sign using the message magic of params.
//
// The flag byte always marks the signer's key as compressed, whatever the
// key itself declares.
func SignWithParams(key *PrivateKey, message string, params *Params) *MessageSignature {
	digest := params.MessageDigest(message)
	sig := &MessageSignature{}
	copy(sig.raw[:], ecdsa.SignCompact(key.key, digest[:], true))
	return sig
}
