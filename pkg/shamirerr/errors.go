// Package shamirerr defines the typed error taxonomy shared by every
// package in this module. A single Kind enum lets callers branch on
// failure class with errors.Is/errors.As instead of parsing strings, while
// still reading like a normal wrapped Go error.
package shamirerr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure. Values are stable and safe to
// switch on across package versions.
type Kind int

const (
	_ Kind = iota

	// Configuration / precondition
	ThresholdTooLow
	ThresholdExceedsShares
	NoSharesProvided
	InvalidShareType

	// Integrity / compatibility
	ShareChecksumMismatch
	SharesDifferentThresholds
	SharesDifferentChecksums
	InsufficientShares

	// Format / serialization
	InvalidShareFormat
	ShareMissingRequiredFields
	ShareNotFound
	InvalidShareDataFormat
	InvalidChunkDataType
	Base64DecodeFailed
	HexDecodeFailed

	// Mathematical
	NoModularInverse
	SecretTooLarge
	RngUnavailable
)

var names = map[Kind]string{
	ThresholdTooLow:            "ThresholdTooLow",
	ThresholdExceedsShares:     "ThresholdExceedsShares",
	NoSharesProvided:           "NoSharesProvided",
	InvalidShareType:           "InvalidShareType",
	ShareChecksumMismatch:      "ShareChecksumMismatch",
	SharesDifferentThresholds:  "SharesDifferentThresholds",
	SharesDifferentChecksums:   "SharesDifferentChecksums",
	InsufficientShares:         "InsufficientShares",
	InvalidShareFormat:         "InvalidShareFormat",
	ShareMissingRequiredFields: "ShareMissingRequiredFields",
	ShareNotFound:              "ShareNotFound",
	InvalidShareDataFormat:     "InvalidShareDataFormat",
	InvalidChunkDataType:       "InvalidChunkDataType",
	Base64DecodeFailed:         "Base64DecodeFailed",
	HexDecodeFailed:            "HexDecodeFailed",
	NoModularInverse:           "NoModularInverse",
	SecretTooLarge:             "SecretTooLarge",
	RngUnavailable:             "RngUnavailable",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the concrete error type behind every Kind above; the library
// packages report their failures with it (field.New's modulus check, which
// returns a plain error, is the exception). Provided/Required carry numeric context for InsufficientShares;
// Detail carries the offending string for format errors (InvalidShareFormat,
// ShareNotFound). Neither field holds secret-adjacent material.
type Error struct {
	Kind      Kind
	Detail    string
	Provided  int
	Required  int
	Wrapped   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InsufficientShares:
		return fmt.Sprintf("%s: have %d shares, need %d", e.Kind, e.Provided, e.Required)
	case InvalidShareFormat, ShareNotFound:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
		}
		return e.Kind.String()
	default:
		if e.Wrapped != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Wrapped)
		}
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
		}
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, shamirerr.New(kind, "")) matches any error of that kind
// regardless of its detail. A bare Kind is not an error and cannot be
// passed to errors.Is; see KindOf for the common call shape.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error of the given kind with an optional detail string.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap builds an Error of the given kind that wraps a lower-level cause.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Wrapped: err}
}

// Insufficient builds the InsufficientShares error with numeric context.
func Insufficient(provided, required int) *Error {
	return &Error{Kind: InsufficientShares, Provided: provided, Required: required}
}

// KindOf reports the Kind of err if it is (or wraps) a *Error, and ok=false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
