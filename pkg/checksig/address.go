package checksig

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"
)

const (
	// hash160Size is the length of a RIPEMD160(SHA256(pubkey)) digest.
	hash160Size = 20

	// addressPayloadSize is the decoded size of an address without its
	// checksum: one version byte followed by the public key hash.
	addressPayloadSize = 1 + hash160Size
)

// Address is a pay-to-pubkey-hash address bound to the network it was
// decoded for.
type Address struct {
	hash   [hash160Size]byte
	params *Params
}

// DecodeAddress decodes a base58check P2PKH address and checks that it
// belongs to the network described by params.
func DecodeAddress(text string, params *Params) (*Address, error) {
	payload, err := decodeCheck(text)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding address %s", text)
	}
	if len(payload) != addressPayloadSize {
		return nil, errors.Wrapf(ErrFormat, "address %s decodes to %d bytes, want %d", text, len(payload), addressPayloadSize)
	}
	if payload[0] != params.PubKeyHashAddrID {
		return nil, errors.Wrapf(ErrVersion, "not a %s address, begins with byte %#02x", params.Name, payload[0])
	}
	return NewAddressPubKeyHash(payload[1:], params)
}

// NewAddressPubKeyHash returns the address of a 20-byte public key hash.
func NewAddressPubKeyHash(pkHash []byte, params *Params) (*Address, error) {
	if len(pkHash) != hash160Size {
		return nil, errors.Wrapf(ErrFormat, "public key hash is %d bytes, want %d", len(pkHash), hash160Size)
	}
	addr := &Address{params: params}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressPubKey returns the address of a serialized public key. The
// serialization (compressed or not) determines the address.
func NewAddressPubKey(serializedPubKey []byte, params *Params) (*Address, error) {
	return NewAddressPubKeyHash(btcutil.Hash160(serializedPubKey), params)
}

// EncodeAddress returns the base58check form of the address.
func (a *Address) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.params.PubKeyHashAddrID)
}

func (a *Address) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the public key hash the address commits to.
func (a *Address) Hash160() *[hash160Size]byte {
	return &a.hash
}

// Params returns the network the address was decoded or derived for.
func (a *Address) Params() *Params {
	return a.params
}

// IsForNet reports whether the address belongs to the given network.
func (a *Address) IsForNet(params *Params) bool {
	return a.params.PubKeyHashAddrID == params.PubKeyHashAddrID
}

// decodeCheck undoes base58check and returns the payload with its leading
// version byte still attached.
func decodeCheck(text string) ([]byte, error) {
	payload, version, err := base58.CheckDecode(text)
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	return append([]byte{version}, payload...), nil
}
