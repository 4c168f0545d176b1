// Package checksig verifies and produces Bitcoin-style signed-message
// signatures for PKT addresses.
//
// PKT reuses the Bitcoin pay-to-pubkey-hash address format with its own
// version byte (0x75, addresses start with "p") and keeps the Bitcoin
// signed-message digest. Signatures are 65-byte compact recoverable ECDSA
// signatures over secp256k1, transported as base64.
//
// # Quick Start
//
//	import "github.com/cjdelisle/pkt-checksig/pkg/checksig"
//
//	client := checksig.NewClient()
//
//	// Verify a signature
//	if err := client.VerifyMessage(address, signature, message); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Sign a message
//	signature, err := client.SignMessage(privateKey, message)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Lower Level API
//
// The decoded types can be used directly:
//
//	addr, err := checksig.DecodeAddress("pDWYi9XtZHiUgoVGMqykEHwvhytYv5Ejam", &checksig.PktMainNetParams)
//	sig, err := checksig.ParseMessageSignature(signature)
//	ok := checksig.Verify(addr, sig, message)
//
// # Errors
//
// Every error wraps one of ErrArgument, ErrDecode, ErrFormat, ErrVersion,
// ErrKey, ErrSignatureFormat or ErrVerificationFailure and can be tested with
// errors.Is.
package checksig
