package verify

import (
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/ahwlsqja/paygate-verifier/internal/common/errors"
	"github.com/ahwlsqja/paygate-verifier/pkg/eip712"
	"github.com/ahwlsqja/paygate-verifier/pkg/timestamp"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockVerifier is a mock implementation of eip712.Verifier for testing.
type MockVerifier struct {
	VerifyFunc func(payment eip712.PaymentContext, signatureHex string, now uint64) (common.Address, error)

	calls   int
	lastNow uint64
}

func (m *MockVerifier) Verify(payment eip712.PaymentContext, signatureHex string, now uint64) (common.Address, error) {
	m.calls++
	m.lastNow = now
	if m.VerifyFunc != nil {
		return m.VerifyFunc(payment, signatureHex, now)
	}
	return common.HexToAddress("0x3CDB3D9E1B74692BB1E3BB5FC81938151CA64B02"), nil
}

func strPtr(s string) *string { return &s }
func u64Ptr(v uint64) *uint64 { return &v }

func testRequest() *VerifyRequest {
	return &VerifyRequest{
		Context: PaymentContextRequest{
			Recipient: strPtr("0x1234567890123456789012345678901234567890"),
			Token:     strPtr("USDC"),
			Amount:    strPtr("100"),
			Nonce:     strPtr("nonce-1"),
			ChainID:   u64Ptr(1),
			Timestamp: u64Ptr(1_700_000_000),
		},
		Signature: "0xsig",
	}
}

func TestService_Verify_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantValid  bool
		wantError  string
		wantStatus int
	}{
		{
			name:      "valid",
			wantValid: true,
		},
		{
			name:      "expired",
			err:       &timestamp.ExpiredError{Age: 301, MaxAge: 300},
			wantError: "E007: expired (age=301 max=300)",
		},
		{
			name:      "future",
			err:       &timestamp.FutureError{Timestamp: 2000, Now: 1000},
			wantError: "E008: future ts=2000 now=1000",
		},
		{
			name:      "missing timestamp",
			err:       timestamp.ErrMissing,
			wantError: "E009: missing timestamp",
		},
		{
			name:       "typed data",
			err:        &eip712.TypedDataError{Err: stderrors.New("invalid address")},
			wantError:  "typed data error: invalid address",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "signature format",
			err:        &eip712.SignatureFormatError{Err: stderrors.New("invalid hex")},
			wantError:  "bad signature: invalid hex",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "recovery",
			err:       &eip712.RecoveryError{Err: eip712.ErrInvalidRecoveryID},
			wantError: "invalid recovery id",
		},
		{
			name:       "unexpected",
			err:        stderrors.New("boom"),
			wantError:  "Unexpected verification failure",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockVerifier{}
			if tt.err != nil {
				mock.VerifyFunc = func(eip712.PaymentContext, string, uint64) (common.Address, error) {
					return common.Address{}, tt.err
				}
			}
			svc := NewService(mock, zap.NewNop())

			resp, appErr := svc.Verify(testRequest(), time.Unix(1_700_000_000, 0))

			if tt.wantStatus != 0 {
				require.NotNil(t, appErr)
				assert.Nil(t, resp)
				assert.Equal(t, tt.wantStatus, appErr.StatusCode)
				assert.Equal(t, tt.wantError, appErr.Message)
				return
			}

			require.Nil(t, appErr)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantValid, resp.IsValid)
			if tt.wantValid {
				require.NotNil(t, resp.RecoveredAddress)
				assert.Equal(t, "0x3cdb3d9e1b74692bb1e3bb5fc81938151ca64b02", *resp.RecoveredAddress)
				assert.Nil(t, resp.Error)
				return
			}
			assert.Nil(t, resp.RecoveredAddress)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantError, *resp.Error)
		})
	}
}

func TestService_Verify_PassesRequestThrough(t *testing.T) {
	var got eip712.PaymentContext
	var gotSig string
	mock := &MockVerifier{
		VerifyFunc: func(payment eip712.PaymentContext, signatureHex string, now uint64) (common.Address, error) {
			got = payment
			gotSig = signatureHex
			return common.Address{}, nil
		},
	}
	svc := NewService(mock, zap.NewNop())

	_, appErr := svc.Verify(testRequest(), time.Unix(1_700_000_123, 999_000_000))
	require.Nil(t, appErr)

	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, uint64(1_700_000_123), mock.lastNow)
	assert.Equal(t, "0xsig", gotSig)
	assert.Equal(t, "nonce-1", got.Nonce)
	assert.Equal(t, uint64(1), got.ChainID)
	require.NotNil(t, got.Timestamp)
	assert.Equal(t, uint64(1_700_000_000), *got.Timestamp)
}

func TestService_Verify_ClockBeforeEpoch(t *testing.T) {
	mock := &MockVerifier{}
	svc := NewService(mock, zap.NewNop())

	resp, appErr := svc.Verify(testRequest(), time.Unix(-10, 0))

	assert.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeClockUnavailable, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Zero(t, mock.calls, "verifier must not run without a trustworthy clock")
}
