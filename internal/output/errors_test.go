package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCLIError(t *testing.T) {
	err := NewCLIError(ExitNotFound, "no token stored")
	assert.Equal(t, ExitNotFound, err.ExitCode)
	assert.Equal(t, "no token stored", err.Message)
	assert.Empty(t, err.Hint)
}

func TestCLIErrorError(t *testing.T) {
	err := &CLIError{Message: "something broke"}
	assert.Equal(t, "something broke", err.Error())
}

func TestCLIErrorWithHint(t *testing.T) {
	err := NewCLIError(ExitNotFound, "no token stored")
	result := err.WithHint("Run: purse token set ACCOUNT")

	// Fluent builder returns same pointer
	assert.Same(t, err, result)
	assert.Equal(t, "Run: purse token set ACCOUNT", err.Hint)
}

func TestReport(t *testing.T) {
	t.Run("cli error with hint", func(t *testing.T) {
		var out, errOut bytes.Buffer
		f := NewWithWriters("plain", &out, &errOut)

		code := Report(f, NewCLIError(ExitStorage, "keyring locked").WithHint("unlock it"))

		assert.Equal(t, ExitStorage, code)
		assert.Equal(t, "error: keyring locked\nhint: unlock it\n", errOut.String())
		assert.Empty(t, out.String())
	})

	t.Run("plain error", func(t *testing.T) {
		var out, errOut bytes.Buffer
		f := NewWithWriters("plain", &out, &errOut)

		code := Report(f, errors.New("boom"))

		assert.Equal(t, ExitGeneral, code)
		assert.Equal(t, "error: boom\n", errOut.String())
	})

	t.Run("json hides hint", func(t *testing.T) {
		var out, errOut bytes.Buffer
		f := NewWithWriters("json", &out, &errOut)

		Report(f, NewCLIError(ExitUsage, "bad").WithHint("ignored"))

		assert.JSONEq(t, `{"error": "bad"}`, errOut.String())
	})
}
