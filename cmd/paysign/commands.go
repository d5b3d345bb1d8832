package main

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahwlsqja/paygate-verifier/pkg/eip712"
	"github.com/ahwlsqja/paygate-verifier/pkg/verifierclient"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func signCommand(c *cli.Context) error {
	key, err := parsePrivateKey(c.String("private-key"))
	if err != nil {
		return err
	}

	payment, err := paymentFromFlags(c)
	if err != nil {
		return err
	}
	if payment.Nonce == "" {
		payment.Nonce = uuid.New().String()
	}
	if payment.Timestamp == nil {
		now := uint64(time.Now().Unix())
		payment.Timestamp = &now
	}

	sig, err := eip712.SignPayment(key, payment)
	if err != nil {
		return fmt.Errorf("failed to sign payment: %w", err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "signer:    %s\n", eip712.FormatAddress(crypto.PubkeyToAddress(key.PublicKey)))
	fmt.Fprintf(w, "recipient: %s\n", payment.Recipient)
	fmt.Fprintf(w, "token:     %s\n", payment.Token)
	fmt.Fprintf(w, "amount:    %s\n", payment.Amount)
	fmt.Fprintf(w, "nonce:     %s\n", payment.Nonce)
	fmt.Fprintf(w, "chainId:   %d\n", payment.ChainID)
	fmt.Fprintf(w, "timestamp: %d\n", *payment.Timestamp)
	fmt.Fprintf(w, "signature: 0x%s\n", hex.EncodeToString(sig))
	return nil
}

func verifyCommand(c *cli.Context) error {
	payment, err := paymentFromFlags(c)
	if err != nil {
		return err
	}
	if payment.Nonce == "" {
		return errors.New("--nonce is required to verify a signature")
	}

	correlationID := c.String("correlation-id")
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	client := verifierclient.New(c.String("verifier-url"))
	resp, err := client.Verify(c.Context, &verifierclient.VerifyRequest{
		Context: verifierclient.PaymentContext{
			Recipient: payment.Recipient,
			Token:     payment.Token,
			Amount:    payment.Amount,
			Nonce:     payment.Nonce,
			ChainID:   payment.ChainID,
			Timestamp: payment.Timestamp,
		},
		Signature: c.String("signature"),
	}, correlationID)
	if err != nil {
		return fmt.Errorf("verification request failed: %w", err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "correlation: %s\n", correlationID)
	fmt.Fprintf(w, "valid:       %t\n", resp.IsValid)
	if resp.RecoveredAddress != nil {
		fmt.Fprintf(w, "signer:      %s\n", *resp.RecoveredAddress)
	}
	if resp.Error != nil {
		fmt.Fprintf(w, "error:       %s\n", *resp.Error)
	}
	return nil
}

func addressCommand(c *cli.Context) error {
	key, err := parsePrivateKey(c.String("private-key"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, eip712.FormatAddress(crypto.PubkeyToAddress(key.PublicKey)))
	return nil
}

func parsePrivateKey(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

func paymentFromFlags(c *cli.Context) (eip712.PaymentContext, error) {
	recipient := c.String("recipient")
	if !common.IsHexAddress(recipient) {
		return eip712.PaymentContext{}, fmt.Errorf("invalid recipient address: %q", recipient)
	}

	payment := eip712.PaymentContext{
		Recipient: recipient,
		Token:     c.String("token"),
		Amount:    c.String("amount"),
		Nonce:     c.String("nonce"),
		ChainID:   c.Uint64("chain-id"),
	}
	if ts := c.Uint64("timestamp"); ts != 0 {
		payment.Timestamp = &ts
	}
	return payment, nil
}
