package keychain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keysinmypurse/purse/internal/secrets"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int32
	}{
		{name: "nil", err: nil, want: 0},
		{name: "unavailable", err: fmt.Errorf("open: %w", secrets.ErrUnavailable), want: StatusNotAvailable},
		{name: "locked", err: secrets.ErrLocked, want: StatusInteractionNotAllowed},
		{name: "corrupt", err: secrets.ErrCorrupt, want: StatusDecode},
		{name: "permission", err: &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, want: StatusAuthFailed},
		{name: "io", err: &fs.PathError{Op: "read", Path: "/x", Err: errors.New("short read")}, want: StatusIO},
		{name: "invalid account", err: ErrInvalidAccount, want: StatusParam},
		{name: "already classified", err: &UnhandledError{Status: 42, Err: errors.New("x")}, want: 42},
		{name: "unknown", err: errors.New("mystery"), want: StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestUnhandledErrorMessage(t *testing.T) {
	err := unhandled(secrets.ErrLocked)
	assert.Equal(t, "unhandled keychain error (status -25308): secure storage is locked by another process", err.Error())
	assert.ErrorIs(t, err, secrets.ErrLocked)
}
