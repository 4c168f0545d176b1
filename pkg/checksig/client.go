package checksig

import (
	"bytes"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client verifies and produces message signatures from their text forms.
type Client struct {
	params *Params
	logger *zap.Logger
}

// NewClient creates a client for the PKT main network that does not log.
func NewClient() *Client {
	return &Client{
		params: &PktMainNetParams,
		logger: zap.NewNop(),
	}
}

// WithParams sets the network addresses and digests are checked against.
func (c *Client) WithParams(params *Params) *Client {
	c.params = params
	return c
}

// WithLogger sets the logger used for debug output.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	c.logger = logger
	return c
}

// VerifyMessage checks that signature is a signature of message by address.
// It returns nil when the signature is good. Decoding failures wrap
// ErrDecode, ErrFormat, ErrVersion or ErrSignatureFormat; a well-formed
// signature that does not match wraps ErrVerificationFailure.
func (c *Client) VerifyMessage(address, signature, message string) error {
	addr, err := DecodeAddress(address, c.params)
	if err != nil {
		return err
	}
	c.logger.Debug("Decoded address",
		zap.String("address", address),
		zap.Binary("hash160", addr.hash[:]),
	)

	sig, err := ParseMessageSignature(signature)
	if err != nil {
		return errors.Wrap(err, "decoding message signature")
	}
	c.logger.Debug("Decoded signature",
		zap.Int("recoveryId", sig.RecoveryID()),
		zap.Bool("compressed", sig.Compressed()),
	)

	hash, ok := recoverAddressHash(addr.params, sig, message)
	if !ok {
		return errors.Wrap(ErrVerificationFailure, "public key recovery failed")
	}
	if !bytes.Equal(hash, addr.hash[:]) {
		c.logger.Debug("Recovered key does not match address",
			zap.Binary("recovered", hash),
			zap.Binary("expected", addr.hash[:]),
		)
		return errors.Wrapf(ErrVerificationFailure, "message was not signed by %s", address)
	}
	return nil
}

// SignMessage signs message with a base58check private key and returns the
// base64 signature.
func (c *Client) SignMessage(privateKey, message string) (string, error) {
	key, err := DecodePrivateKey(privateKey)
	if err != nil {
		return "", errors.Wrap(err, "parsing private key")
	}
	c.logger.Debug("Decoded private key",
		zap.Bool("compressed", key.Compressed()),
		zap.Uint8("version", key.Version()),
	)

	sig := SignWithParams(key, message, c.params)
	c.logger.Debug("Signed message", zap.Int("recoveryId", sig.RecoveryID()))
	return sig.String(), nil
}
