package eip712

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// SignPayment signs the payment digest with key.
// The returned signature is r||s||v with v in {27, 28}, as wallets produce it.
func SignPayment(key *ecdsa.PrivateKey, payment PaymentContext) ([]byte, error) {
	digest, err := PaymentDigest(payment)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(digest.Bytes(), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign payment: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return sig, nil
}
