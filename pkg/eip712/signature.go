package eip712

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ParseSignature decodes a 65-byte r||s||v signature from hex, with or without
// a lowercase 0x prefix. "0X" is not stripped.
func ParseSignature(sig string) ([]byte, error) {
	sig = strings.TrimPrefix(sig, "0x")

	// Must be 130 hex chars (65 bytes)
	if len(sig) != 2*crypto.SignatureLength {
		return nil, &SignatureFormatError{
			Err: fmt.Errorf("%w, got %d hex characters", ErrInvalidSignatureLen, len(sig)),
		}
	}

	raw, err := hex.DecodeString(sig)
	if err != nil {
		return nil, &SignatureFormatError{Err: fmt.Errorf("invalid hex: %w", err)}
	}
	return raw, nil
}

// normalizeRecoveryID maps v to a 0/1 recovery id.
// Accepts raw ids (0, 1), legacy values (27, 28) and EIP-155 values (>= 35).
func normalizeRecoveryID(v byte) (byte, error) {
	switch {
	case v == 0 || v == 1:
		return v, nil
	case v == 27 || v == 28:
		return v - 27, nil
	case v >= 35:
		return (v - 35) % 2, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidRecoveryID, v)
	}
}

// RecoverSigner recovers the address whose key produced signature over digest
func RecoverSigner(digest common.Hash, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, &RecoveryError{Err: ErrInvalidSignatureLen}
	}

	recID, err := normalizeRecoveryID(signature[crypto.RecoveryIDOffset])
	if err != nil {
		return common.Address{}, &RecoveryError{Err: err}
	}

	// Copy so the caller's slice is never modified
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	sig[crypto.RecoveryIDOffset] = recID

	pubKey, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, &RecoveryError{Err: fmt.Errorf("failed to recover public key: %w", err)}
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// FormatAddress renders an address as lowercase 0x-prefixed hex
func FormatAddress(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
