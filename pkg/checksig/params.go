package checksig

// Params identifies the chain an address belongs to.
type Params struct {
	Name string

	// PubKeyHashAddrID is the version byte of base58check P2PKH addresses.
	PubKeyHashAddrID byte

	// MessageMagic is prepended to every message before it is hashed for
	// signing, so a message signature can never double as a transaction
	// signature.
	MessageMagic string
}

// PktMainNetParams are the parameters of the PKT main network. PKT kept the
// Bitcoin message prefix and changed only the address version byte.
var PktMainNetParams = Params{
	Name:             "pkt",
	PubKeyHashAddrID: 0x75,
	MessageMagic:     "Bitcoin Signed Message:\n",
}
