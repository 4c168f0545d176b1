package checksig

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Verify reports whether sig is a valid signature of message by the key
// behind addr.
//
// The public key is recovered from the signature and the message digest,
// serialized according to the signature's compression flag and hashed. The
// signature is valid only if recovery succeeds and that hash equals the one
// the address commits to.
func Verify(addr *Address, sig *MessageSignature, message string) bool {
	hash, ok := recoverAddressHash(addr.params, sig, message)
	if !ok {
		return false
	}
	return bytes.Equal(hash, addr.hash[:])
}

// recoverAddressHash returns the public key hash of the signer of message.
func recoverAddressHash(params *Params, sig *MessageSignature, message string) ([]byte, bool) {
	digest := params.MessageDigest(message)
	pubKey, wasCompressed, err := ecdsa.RecoverCompact(sig.raw[:], digest[:])
	if err != nil {
		return nil, false
	}

	var serialized []byte
	if wasCompressed {
		serialized = pubKey.SerializeCompressed()
	} else {
		serialized = pubKey.SerializeUncompressed()
	}
	return btcutil.Hash160(serialized), true
}
