package verify

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/ahwlsqja/paygate-verifier/internal/common/errors"
	"github.com/ahwlsqja/paygate-verifier/pkg/eip712"
	"github.com/ahwlsqja/paygate-verifier/pkg/timestamp"
	"go.uber.org/zap"
)

// Result codes carried in VerifyResponse.Error for timestamp policy rejections
const (
	CodeExpired          = "E007"
	CodeFuture           = "E008"
	CodeMissingTimestamp = "E009"
)

// Service maps verifier outcomes onto API results
type Service struct {
	verifier eip712.Verifier
	logger   *zap.Logger
}

// NewService creates a new verification service
func NewService(verifier eip712.Verifier, logger *zap.Logger) *Service {
	return &Service{
		verifier: verifier,
		logger:   logger,
	}
}

// Verify checks req against the verification policy at the instant now.
//
// Policy rejections (timestamp window, failed recovery) are returned as an
// invalid *VerifyResponse with a nil error: the request itself was fine.
// Malformed input (typed data, signature hex) returns a 400 *errors.AppError,
// and a clock before the Unix epoch returns a 500.
func (s *Service) Verify(req *VerifyRequest, now time.Time) (*VerifyResponse, *errors.AppError) {
	if now.Before(time.Unix(0, 0)) {
		err := fmt.Errorf("system time %s is before the Unix epoch", now.UTC().Format(time.RFC3339))
		s.logger.Error("clock unavailable", zap.Error(err))
		return nil, errors.ClockUnavailable(err)
	}
	nowUnix := uint64(now.Unix())

	signer, err := s.verifier.Verify(req.Context.ToPaymentContext(), req.Signature, nowUnix)
	if err != nil {
		return classify(err)
	}

	return Valid(eip712.FormatAddress(signer)), nil
}

func classify(err error) (*VerifyResponse, *errors.AppError) {
	var (
		expired   *timestamp.ExpiredError
		future    *timestamp.FutureError
		typedData *eip712.TypedDataError
		format    *eip712.SignatureFormatError
		recovery  *eip712.RecoveryError
	)

	switch {
	case stderrors.As(err, &expired):
		return Invalid(fmt.Sprintf("%s: expired (age=%d max=%d)", CodeExpired, expired.Age, expired.MaxAge)), nil
	case stderrors.As(err, &future):
		return Invalid(fmt.Sprintf("%s: future ts=%d now=%d", CodeFuture, future.Timestamp, future.Now)), nil
	case stderrors.Is(err, timestamp.ErrMissing):
		return Invalid(CodeMissingTimestamp + ": missing timestamp"), nil
	case stderrors.As(err, &typedData):
		return nil, errors.InvalidInput(fmt.Sprintf("typed data error: %v", typedData.Err)).WithError(err)
	case stderrors.As(err, &format):
		return nil, errors.InvalidInput(fmt.Sprintf("bad signature: %v", format.Err)).WithError(err)
	case stderrors.As(err, &recovery):
		return Invalid(recovery.Error()), nil
	default:
		return nil, errors.Internal("Unexpected verification failure").WithError(err)
	}
}
