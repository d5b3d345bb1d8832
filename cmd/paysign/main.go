package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "paysign",
		Usage: "Sign and check MicroAI Paygate payment authorizations",
		Description: `Developer tool for the payment verifier.

- sign: produce an EIP-712 Payment signature with a local private key
- verify: submit a signed payment to a running verifier
- address: print the address of a private key`,
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:   "sign",
				Usage:  "Sign a payment with a private key",
				Flags:  append([]cli.Flag{privateKeyFlag()}, paymentFlags()...),
				Action: signCommand,
			},
			{
				Name:  "verify",
				Usage: "Submit a signed payment to a verifier",
				Flags: append(paymentFlags(),
					&cli.StringFlag{
						Name:     "signature",
						Aliases:  []string{"sig"},
						Usage:    "65-byte signature as hex",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "verifier-url",
						Usage:   "Base URL of the verifier",
						Value:   "http://localhost:3002",
						EnvVars: []string{"PAYSIGN_VERIFIER_URL"},
					},
					&cli.StringFlag{
						Name:  "correlation-id",
						Usage: "X-Correlation-ID sent with the request (random when empty)",
					},
				),
				Action: verifyCommand,
			},
			{
				Name:   "address",
				Usage:  "Print the address of a private key",
				Flags:  []cli.Flag{privateKeyFlag()},
				Action: addressCommand,
			},
		},
	}
}

func privateKeyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "private-key",
		Aliases:  []string{"key"},
		Usage:    "Hex-encoded secp256k1 private key",
		EnvVars:  []string{"PAYSIGN_PRIVATE_KEY"},
		Required: true,
	}
}

func paymentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "recipient",
			Usage:    "Recipient address",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "Token symbol",
			Value: "USDC",
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "Amount as a decimal string",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "nonce",
			Usage: "Payment nonce (random UUID when empty)",
		},
		&cli.Uint64Flag{
			Name:    "chain-id",
			Aliases: []string{"chain"},
			Usage:   "Chain ID of the signing domain",
			Value:   8453,
			EnvVars: []string{"PAYSIGN_CHAIN_ID"},
		},
		&cli.Uint64Flag{
			Name:  "timestamp",
			Usage: "Signing time in unix seconds (now when 0)",
		},
	}
}
