package verify

import (
	"github.com/ahwlsqja/paygate-verifier/pkg/eip712"
)

// ============================================================================
// Request DTOs
// ============================================================================

// VerifyRequest represents the request body for payment signature verification
type VerifyRequest struct {
	Context PaymentContextRequest `json:"context" binding:"required"`
	// Signature: 65 bytes r||s||v as hex, 0x prefix optional
	Signature string `json:"signature" binding:"required" example:"0xbb50e2d89a4ed70663d080659fe0ad4b9bc3e06c17a227433966cb59ceee020d66b7d84e0db9a89726ec5a68060d8e70554204d9a8cdc489225caf560971ffbc1b"`
}

// PaymentContextRequest is the payment intent the client signed.
// String fields are pointers so that a missing field is rejected while an
// empty string is still a valid signed value.
type PaymentContextRequest struct {
	Recipient *string `json:"recipient" binding:"required" example:"0x1234567890123456789012345678901234567890"`
	Token     *string `json:"token" binding:"required" example:"USDC"`
	Amount    *string `json:"amount" binding:"required" example:"100"`
	Nonce     *string `json:"nonce" binding:"required" example:"nonce-1"`
	ChainID   *uint64 `json:"chainId" binding:"required" example:"1"`
	// Unix seconds when the client signed. Required by verification policy,
	// but a missing value is reported in the verification result.
	Timestamp *uint64 `json:"timestamp,omitempty" example:"1700000000"`
}

// ToPaymentContext converts the request into the verifier's input
func (r *PaymentContextRequest) ToPaymentContext() eip712.PaymentContext {
	return eip712.PaymentContext{
		Recipient: deref(r.Recipient),
		Token:     deref(r.Token),
		Amount:    deref(r.Amount),
		Nonce:     deref(r.Nonce),
		ChainID:   derefUint(r.ChainID),
		Timestamp: r.Timestamp,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefUint(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

// ============================================================================
// Response DTOs
// ============================================================================

// VerifyResponse is the verification result.
// RecoveredAddress is set only when IsValid is true; Error only when it is false.
type VerifyResponse struct {
	IsValid          bool    `json:"isValid" example:"true"`
	RecoveredAddress *string `json:"recoveredAddress" example:"0x3cdb3d9e1b74692bb1e3bb5fc81938151ca64b02"`
	Error            *string `json:"error" example:"E007: expired (age=301 max=300)"`
}

// Valid builds a successful result for address
func Valid(address string) *VerifyResponse {
	return &VerifyResponse{IsValid: true, RecoveredAddress: &address}
}

// Invalid builds a rejected result carrying reason
func Invalid(reason string) *VerifyResponse {
	return &VerifyResponse{IsValid: false, Error: &reason}
}
