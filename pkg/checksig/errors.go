package checksig

import "github.com/pkg/errors"

// Every error returned by this package wraps exactly one of these, so callers
// can classify a failure with errors.Is.
var (
	ErrArgument            = errors.New("invalid arguments")
	ErrDecode              = errors.New("base58check decode failed")
	ErrFormat              = errors.New("invalid payload length")
	ErrVersion             = errors.New("unexpected version byte")
	ErrKey                 = errors.New("invalid private key")
	ErrSignatureFormat     = errors.New("malformed message signature")
	ErrVerificationFailure = errors.New("signature check failed")
)
