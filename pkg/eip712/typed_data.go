package eip712

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

var paymentTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	PrimaryType: {
		{Name: "recipient", Type: "address"},
		{Name: "token", Type: "string"},
		{Name: "amount", Type: "string"},
		{Name: "nonce", Type: "string"},
		{Name: "timestamp", Type: "uint256"},
	},
}

// Domain returns the signing domain for the given chain
func Domain(chainID uint64) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainId:           (*math.HexOrDecimal256)(new(big.Int).SetUint64(chainID)),
		VerifyingContract: ZeroVerifyingContract.Hex(),
	}
}

// BuildTypedData assembles the Payment typed data for a payment context.
// The caller-supplied timestamp is used as is; a nil timestamp is an error.
func BuildTypedData(payment PaymentContext) (apitypes.TypedData, error) {
	if payment.Timestamp == nil {
		return apitypes.TypedData{}, &TypedDataError{Err: ErrMissingTimestamp}
	}

	return apitypes.TypedData{
		Types:       paymentTypes,
		PrimaryType: PrimaryType,
		Domain:      Domain(payment.ChainID),
		Message: apitypes.TypedDataMessage{
			"recipient": payment.Recipient,
			"token":     payment.Token,
			"amount":    payment.Amount,
			"nonce":     payment.Nonce,
			"timestamp": new(big.Int).SetUint64(*payment.Timestamp),
		},
	}, nil
}

// PaymentDigest computes keccak256(0x19 0x01 || domainSeparator || hashStruct(Payment))
func PaymentDigest(payment PaymentContext) (common.Hash, error) {
	typedData, err := BuildTypedData(payment)
	if err != nil {
		return common.Hash{}, err
	}

	// 1. Domain separator
	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return common.Hash{}, typedDataErrorf("failed to hash domain: %w", err)
	}

	// 2. Message hash
	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return common.Hash{}, typedDataErrorf("failed to hash message: %w", err)
	}

	// 3. Byte-level concatenation, 2 + 32 + 32
	rawData := make([]byte, 0, 66)
	rawData = append(rawData, 0x19, 0x01)
	rawData = append(rawData, domainSeparator...)
	rawData = append(rawData, messageHash...)

	return crypto.Keccak256Hash(rawData), nil
}
