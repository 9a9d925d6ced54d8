package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/keysinmypurse/purse/internal/output"
)

// TokenGetCmd implements token get
type TokenGetCmd struct {
	Account string  `arg:"" help:"Account identifier (e.g., googleAccessToken)" predictor:"account"`
	Default *string `help:"Print this value instead of failing when the token cannot be read"`
}

// Run executes the get command
func (cmd *TokenGetCmd) Run(vp *VaultProvider, streams *Streams) error {
	vault, err := vp.Vault()
	if err != nil {
		if cmd.Default != nil {
			fmt.Fprintln(streams.Out, *cmd.Default)
			return nil
		}
		return err
	}

	if cmd.Default != nil {
		fmt.Fprintln(streams.Out, vault.TokenOr(cmd.Account, *cmd.Default))
		return nil
	}

	token, err := vault.Read(cmd.Account)
	if err != nil {
		return vaultError(err, cmd.Account)
	}

	fmt.Fprintln(streams.Out, token)
	return nil
}

// TokenSetCmd implements token set
type TokenSetCmd struct {
	Account string  `arg:"" help:"Account identifier" predictor:"account"`
	Token   *string `arg:"" optional:"" help:"Token value; read from a hidden prompt or stdin when omitted"`
}

// Run executes the set command
func (cmd *TokenSetCmd) Run(vp *VaultProvider, streams *Streams, globals *Globals) error {
	var (
		token string
		err   error
	)
	if cmd.Token != nil {
		token, err = nonEmptyToken(*cmd.Token)
	} else {
		token, err = readToken(streams, globals.NoInput, fmt.Sprintf("Token for %s: ", cmd.Account))
	}
	if err != nil {
		return err
	}

	vault, err := vp.Vault()
	if err != nil {
		return err
	}

	outcome, err := vault.Save(cmd.Account, token)
	if err != nil {
		return vaultError(err, cmd.Account)
	}

	fmt.Fprintf(streams.Err, "Token %s for %s (service %s, %s backend)\n", outcome, cmd.Account, vault.Service(), vault.Backend())
	return nil
}

// readToken reads a token from a hidden terminal prompt, or from piped stdin.
func readToken(streams *Streams, noInput bool, prompt string) (string, error) {
	if f, ok := streams.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if noInput {
			return "", &output.CLIError{
				ExitCode: output.ExitUsage,
				Message:  "Token argument required when --no-input is set",
			}
		}

		fmt.Fprint(streams.Err, prompt)
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(streams.Err)
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return nonEmptyToken(string(data))
	}

	data, err := io.ReadAll(streams.In)
	if err != nil {
		return "", fmt.Errorf("failed to read token from stdin: %w", err)
	}
	return nonEmptyToken(strings.TrimRight(string(data), "\r\n"))
}

func nonEmptyToken(token string) (string, error) {
	if token == "" {
		return "", &output.CLIError{
			ExitCode: output.ExitUsage,
			Message:  "Token must not be empty",
		}
	}
	return token, nil
}

// TokenRmCmd implements token rm
type TokenRmCmd struct {
	Account string `arg:"" help:"Account identifier" predictor:"account"`
}

// Run executes the rm command
func (cmd *TokenRmCmd) Run(vp *VaultProvider, streams *Streams) error {
	vault, err := vp.Vault()
	if err != nil {
		return err
	}

	if err := vault.Delete(cmd.Account); err != nil {
		return vaultError(err, cmd.Account)
	}

	fmt.Fprintf(streams.Err, "Removed token for %s\n", cmd.Account)
	return nil
}

// TokenListCmd implements token list
type TokenListCmd struct {
	Reveal bool `help:"Show full token values instead of masking them"`
}

// Run executes the list command
func (cmd *TokenListCmd) Run(vp *VaultProvider, fp *FormatterProvider, streams *Streams) error {
	vault, err := vp.Vault()
	if err != nil {
		return err
	}

	entries, err := vault.Entries()
	if err != nil {
		return vaultError(err, "")
	}

	if len(entries) == 0 {
		fmt.Fprintf(streams.Err, "No stored tokens for service %s\n", vault.Service())
		fmt.Fprintf(streams.Err, "Run 'purse token set ACCOUNT' to add one\n")
		return nil
	}

	type tokenRow struct {
		Account string `json:"account"`
		Token   string `json:"token"`
	}

	rows := make([]tokenRow, len(entries))
	for i, e := range entries {
		token := e.Token
		if !cmd.Reveal {
			token = maskSecret(token)
		}
		rows[i] = tokenRow{Account: e.Account, Token: token}
	}

	cols := []output.Column{
		{Name: "Account", Key: "Account"},
		{Name: "Token", Key: "Token", Width: 48},
	}

	return fp.Formatter.PrintList(rows, cols)
}
