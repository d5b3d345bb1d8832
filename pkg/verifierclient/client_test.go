package verifierclient_test

import (
	"context"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ahwlsqja/paygate-verifier/internal/config"
	"github.com/ahwlsqja/paygate-verifier/internal/server"
	"github.com/ahwlsqja/paygate-verifier/pkg/eip712"
	"github.com/ahwlsqja/paygate-verifier/pkg/verifierclient"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVerifierServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 3002, Environment: "test", MaxBodyBytes: 4096},
		Signature: config.SignatureConfig{
			ExpirySeconds:    300,
			ClockSkewSeconds: 60,
		},
	}
	srv := httptest.NewServer(server.NewRouter(cfg, zap.NewNop(), "test"))
	t.Cleanup(srv.Close)
	return srv
}

func signedRequest(t *testing.T, ts uint64) (*verifierclient.VerifyRequest, string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	payment := eip712.PaymentContext{
		Recipient: "0x2cAF48b4BA1C58721a85dFADa5aC01C2DFa62219",
		Token:     "USDC",
		Amount:    "0.001",
		Nonce:     "550e8400-e29b-41d4-a716-446655440000",
		ChainID:   8453,
		Timestamp: &ts,
	}
	sig, err := eip712.SignPayment(key, payment)
	require.NoError(t, err)

	req := &verifierclient.VerifyRequest{
		Context: verifierclient.PaymentContext{
			Recipient: payment.Recipient,
			Token:     payment.Token,
			Amount:    payment.Amount,
			Nonce:     payment.Nonce,
			ChainID:   payment.ChainID,
			Timestamp: payment.Timestamp,
		},
		Signature: "0x" + hex.EncodeToString(sig),
	}
	return req, eip712.FormatAddress(crypto.PubkeyToAddress(key.PublicKey))
}

func TestClient_Verify(t *testing.T) {
	srv := newVerifierServer(t)
	client := verifierclient.New(srv.URL + "/")
	ctx := context.Background()
	now := uint64(time.Now().Unix())

	t.Run("valid", func(t *testing.T) {
		req, signer := signedRequest(t, now)

		resp, err := client.Verify(ctx, req, "client-1")
		require.NoError(t, err)
		assert.True(t, resp.IsValid)
		require.NotNil(t, resp.RecoveredAddress)
		assert.Equal(t, signer, *resp.RecoveredAddress)
		assert.Nil(t, resp.Error)
	})

	t.Run("expired is a result, not an error", func(t *testing.T) {
		req, _ := signedRequest(t, now-3600)

		resp, err := client.Verify(ctx, req, "")
		require.NoError(t, err)
		assert.False(t, resp.IsValid)
		require.NotNil(t, resp.Error)
		assert.True(t, strings.HasPrefix(*resp.Error, "E007: expired"), *resp.Error)
	})

	t.Run("missing timestamp", func(t *testing.T) {
		req, _ := signedRequest(t, now)
		req.Context.Timestamp = nil

		resp, err := client.Verify(ctx, req, "")
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "E009: missing timestamp", *resp.Error)
	})

	t.Run("bad signature", func(t *testing.T) {
		req, _ := signedRequest(t, now)
		req.Signature = "0xdeadbeef"

		resp, err := client.Verify(ctx, req, "client-2")
		var statusErr *verifierclient.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Equal(t, "client-2", statusErr.CorrelationID)
		assert.True(t, strings.HasPrefix(statusErr.Message, "bad signature: "), statusErr.Message)
		require.NotNil(t, resp)
		assert.False(t, resp.IsValid)
	})

	t.Run("too large", func(t *testing.T) {
		req, _ := signedRequest(t, now)
		req.Context.Nonce = strings.Repeat("n", 8192)

		_, err := client.Verify(ctx, req, "")
		var statusErr *verifierclient.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusRequestEntityTooLarge, statusErr.StatusCode)
		assert.Equal(t, "Request body too large (max 4096 bytes)", statusErr.Message)
		assert.Equal(t, "unknown", statusErr.CorrelationID)
	})
}

func TestClient_Health(t *testing.T) {
	srv := newVerifierServer(t)

	health, err := verifierclient.New(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &verifierclient.HealthResponse{Status: "healthy", Service: "verifier", Version: "test"}, health)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := verifierclient.New(srv.URL, verifierclient.WithHTTPClient(srv.Client()))

	_, err := client.Verify(context.Background(), &verifierclient.VerifyRequest{}, "")
	var statusErr *verifierclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "upstream down", statusErr.Message)

	_, err = client.Health(context.Background())
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestClient_ContextCanceled(t *testing.T) {
	srv := newVerifierServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := verifierclient.New(srv.URL).Health(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
