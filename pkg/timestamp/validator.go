package timestamp

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMaxAge is the default signature validity window in seconds
	DefaultMaxAge uint64 = 300
	// DefaultMaxSkew is the default tolerated forward clock drift in seconds
	DefaultMaxSkew uint64 = 60
)

// ErrMissing is returned when the signed payload carries no timestamp
var ErrMissing = errors.New("missing timestamp")

// ExpiredError is returned when a timestamp is older than the allowed window
type ExpiredError struct {
	Age    uint64
	MaxAge uint64
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("signature expired: age %ds exceeds %ds", e.Age, e.MaxAge)
}

// FutureError is returned when a timestamp lies beyond the tolerated clock skew
type FutureError struct {
	Timestamp uint64
	Now       uint64
}

func (e *FutureError) Error() string {
	return fmt.Sprintf("timestamp %d is in the future (now %d)", e.Timestamp, e.Now)
}

// Validator checks claimed signing times against a freshness window.
// It never reads the clock; callers pass "now" explicitly.
type Validator struct {
	MaxAge  uint64
	MaxSkew uint64
}

// NewValidator creates a validator with the given window and skew (seconds)
func NewValidator(maxAge, maxSkew uint64) *Validator {
	return &Validator{
		MaxAge:  maxAge,
		MaxSkew: maxSkew,
	}
}

// Validate checks ts against the validator's window at the given unix time
func (v *Validator) Validate(ts *uint64, now uint64) error {
	return Validate(ts, v.MaxAge, v.MaxSkew, now)
}

// Validate classifies ts relative to now.
//
// Both bounds are inclusive: a timestamp exactly maxAge seconds old, or exactly
// maxSkew seconds ahead, is accepted.
func Validate(ts *uint64, maxAge, maxSkew, now uint64) error {
	if ts == nil {
		return ErrMissing
	}

	if *ts > saturatingAdd(now, maxSkew) {
		return &FutureError{Timestamp: *ts, Now: now}
	}

	age := saturatingSub(now, *ts)
	if age > maxAge {
		return &ExpiredError{Age: age, MaxAge: maxAge}
	}

	return nil
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
