package cli

import (
	"errors"
	"fmt"

	"github.com/keysinmypurse/purse/internal/keychain"
	"github.com/keysinmypurse/purse/internal/output"
)

// vaultError converts a keychain error into a CLIError with an exit code and hint
func vaultError(err error, account string) error {
	var ue *keychain.UnhandledError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, keychain.ErrNoPassword), errors.Is(err, keychain.ErrNoItem):
		return &output.CLIError{
			ExitCode: output.ExitNotFound,
			Message:  fmt.Sprintf("No token stored for account: %s", account),
			Hint:     fmt.Sprintf("Run: purse token set %s", account),
		}
	case errors.Is(err, keychain.ErrUnexpectedPasswordData):
		return &output.CLIError{
			ExitCode: output.ExitDataFormat,
			Message:  fmt.Sprintf("Stored value for %s is not valid text", account),
			Hint:     fmt.Sprintf("Overwrite it with: purse token set %s", account),
		}
	case errors.Is(err, keychain.ErrInvalidAccount):
		return &output.CLIError{
			ExitCode: output.ExitUsage,
			Message:  "Account must not be empty",
		}
	case errors.As(err, &ue):
		cliErr := &output.CLIError{
			ExitCode: output.ExitStorage,
			Message:  fmt.Sprintf("Secure storage error (status %d): %v", ue.Status, ue.Err),
		}
		switch ue.Status {
		case keychain.StatusNotAvailable:
			cliErr.Hint = "The OS keyring is unavailable. Try: purse --backend file ..."
		case keychain.StatusInteractionNotAllowed:
			cliErr.Hint = "Another purse process holds the store lock; retry shortly"
		case keychain.StatusDecode:
			cliErr.Hint = "Check PURSE_STORE_PASSWORD matches the one used to write the store"
		}
		return cliErr
	}

	return &output.CLIError{
		ExitCode: output.ExitGeneral,
		Message:  err.Error(),
	}
}
