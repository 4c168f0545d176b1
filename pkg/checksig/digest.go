package checksig

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// DigestSize is the length of a signed-message digest.
const DigestSize = chainhash.HashSize

// MessageDigest returns the signed-message digest of message on the PKT
// network.
func MessageDigest(message string) [DigestSize]byte {
	return PktMainNetParams.MessageDigest(message)
}

// MessageDigest hashes message the way message signatures expect:
// double-SHA256 of the var-string encoded magic followed by the var-string
// encoded message.
func (p *Params) MessageDigest(message string) [DigestSize]byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = wire.WriteVarString(&buf, 0, p.MessageMagic)
	_ = wire.WriteVarString(&buf, 0, message)
	return chainhash.DoubleHashH(buf.Bytes())
}
