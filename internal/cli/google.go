package cli

import (
	"fmt"

	"github.com/keysinmypurse/purse/internal/keychain"
	"github.com/keysinmypurse/purse/internal/output"
)

// GoogleGetCmd prints the Google access token, or an empty line when none can be read
type GoogleGetCmd struct{}

// Run executes the get command
func (cmd *GoogleGetCmd) Run(vp *VaultProvider, streams *Streams) error {
	token := ""
	if vault, err := vp.Vault(); err == nil {
		token = vault.GoogleAccess()
	}

	if token == "" {
		fmt.Fprintf(streams.Err, "No Google access token stored; run 'purse google set TOKEN'\n")
	}
	fmt.Fprintln(streams.Out, token)
	return nil
}

// GoogleSetCmd stores the Google access token
type GoogleSetCmd struct {
	Token string `arg:"" help:"Google OAuth access token"`
}

// Run executes the set command
func (cmd *GoogleSetCmd) Run(vp *VaultProvider, streams *Streams) error {
	vault, err := vp.Vault()
	if err != nil {
		return err
	}

	if !vault.SaveGoogleAccess(cmd.Token) {
		return &output.CLIError{
			ExitCode: output.ExitStorage,
			Message:  fmt.Sprintf("Failed to save %s", keychain.GoogleAccessToken),
			Hint:     "Re-run with --verbose for details",
		}
	}

	fmt.Fprintf(streams.Err, "Saved %s\n", keychain.GoogleAccessToken)
	return nil
}
