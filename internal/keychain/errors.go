package keychain

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/keysinmypurse/purse/internal/secrets"
)

var (
	// ErrNoPassword is returned by Read when no entry exists for the account
	ErrNoPassword = errors.New("no token stored for account")

	// ErrNoItem is returned by Delete when there is no entry to remove
	ErrNoItem = errors.New("no keychain item for account")

	// ErrUnexpectedPasswordData is returned when a stored value is not valid UTF-8 text
	ErrUnexpectedPasswordData = errors.New("stored token is not valid text")

	// ErrInvalidAccount is returned for an empty account identifier
	ErrInvalidAccount = errors.New("account identifier must not be empty")
)

// Status codes carried by UnhandledError. Values follow the Security framework's OSStatus codes.
const (
	StatusUnknown               int32 = -1
	StatusIO                    int32 = -36
	StatusParam                 int32 = -50
	StatusNotAvailable          int32 = -25291
	StatusAuthFailed            int32 = -25293
	StatusInteractionNotAllowed int32 = -25308
	StatusDecode                int32 = -26275
)

// UnhandledError wraps any backend failure that is not a missing entry.
type UnhandledError struct {
	Status int32
	Err    error
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("unhandled keychain error (status %d): %v", e.Status, e.Err)
}

func (e *UnhandledError) Unwrap() error {
	return e.Err
}

// unhandled wraps err with its classified status.
func unhandled(err error) error {
	return &UnhandledError{Status: StatusOf(err), Err: err}
}

// StatusOf classifies a backend error into a status code.
func StatusOf(err error) int32 {
	var ue *UnhandledError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue):
		return ue.Status
	case errors.Is(err, secrets.ErrUnavailable):
		return StatusNotAvailable
	case errors.Is(err, secrets.ErrLocked):
		return StatusInteractionNotAllowed
	case errors.Is(err, secrets.ErrCorrupt):
		return StatusDecode
	case errors.Is(err, fs.ErrPermission):
		return StatusAuthFailed
	case errors.Is(err, ErrInvalidAccount):
		return StatusParam
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return StatusIO
	}
	return StatusUnknown
}
