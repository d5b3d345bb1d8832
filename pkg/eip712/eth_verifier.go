package eip712

import (
	"github.com/ahwlsqja/paygate-verifier/pkg/timestamp"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Config holds verification policy
type Config struct {
	MaxAgeSeconds  uint64
	MaxSkewSeconds uint64
}

// EthVerifier implements Verifier interface using go-ethereum
type EthVerifier struct {
	validator *timestamp.Validator
	logger    *zap.Logger
}

// Compile-time interface compliance check
var _ Verifier = (*EthVerifier)(nil)

// NewEthVerifier creates a new payment signature verifier
func NewEthVerifier(config Config, logger *zap.Logger) *EthVerifier {
	return &EthVerifier{
		validator: timestamp.NewValidator(config.MaxAgeSeconds, config.MaxSkewSeconds),
		logger:    logger,
	}
}

// Verify runs each gate in order and stops at the first failure:
// timestamp window, typed data hashing, signature decoding, signer recovery.
func (v *EthVerifier) Verify(payment PaymentContext, signatureHex string, now uint64) (common.Address, error) {
	// 1. Validate timestamp (within window)
	if err := v.validator.Validate(payment.Timestamp, now); err != nil {
		return common.Address{}, err
	}

	// 2. Build canonical digest
	digest, err := PaymentDigest(payment)
	if err != nil {
		return common.Address{}, err
	}

	// 3. Parse signature
	signature, err := ParseSignature(signatureHex)
	if err != nil {
		return common.Address{}, err
	}

	// 4. Recover signer
	signer, err := RecoverSigner(digest, signature)
	if err != nil {
		v.logger.Debug("signer recovery failed",
			zap.String("digest", digest.Hex()),
			zap.Error(err),
		)
		return common.Address{}, err
	}

	return signer, nil
}
