package eip712

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// DomainName and DomainVersion identify the signing application
	DomainName    = "MicroAI Paygate"
	DomainVersion = "1"

	// PrimaryType is the EIP-712 struct name of the signed message
	PrimaryType = "Payment"
)

// ZeroVerifyingContract is the placeholder verifying contract of the signing domain.
// Signatures are not bound to an on-chain verifier; changing this value would
// invalidate every signature already issued by clients.
var ZeroVerifyingContract = common.Address{}

// PaymentContext is the payment intent covered by a signature.
// Recipient, Token, Amount and Nonce are carried into the message verbatim.
type PaymentContext struct {
	Recipient string
	Token     string
	Amount    string
	Nonce     string
	ChainID   uint64
	Timestamp *uint64
}

// Verifier defines the interface for payment signature verification
type Verifier interface {
	// Verify checks the timestamp window and recovers the address that signed the
	// payment. now is a unix timestamp captured once by the caller.
	Verify(payment PaymentContext, signatureHex string, now uint64) (common.Address, error)
}

// Error definitions
var (
	ErrInvalidSignatureLen = errors.New("signature must be 65 bytes")
	ErrInvalidRecoveryID   = errors.New("invalid recovery id")
	ErrMissingTimestamp    = errors.New("timestamp is required")
)

// TypedDataError reports that the canonical message could not be built or hashed
type TypedDataError struct {
	Err error
}

func (e *TypedDataError) Error() string { return e.Err.Error() }
func (e *TypedDataError) Unwrap() error { return e.Err }

// SignatureFormatError reports a signature string that is not 65 bytes of hex
type SignatureFormatError struct {
	Err error
}

func (e *SignatureFormatError) Error() string { return e.Err.Error() }
func (e *SignatureFormatError) Unwrap() error { return e.Err }

// RecoveryError reports a well-formed signature from which no signer could be recovered
type RecoveryError struct {
	Err error
}

func (e *RecoveryError) Error() string { return e.Err.Error() }
func (e *RecoveryError) Unwrap() error { return e.Err }

func typedDataErrorf(format string, args ...any) error {
	return &TypedDataError{Err: fmt.Errorf(format, args...)}
}
