package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Globals holds global flags available to all commands
type Globals struct {
	Service string `help:"Service name the tokens are scoped to" env:"PURSE_SERVICE"`
	Backend string `help:"Secure storage backend" enum:"auto,keyring,native,file," default:"" env:"PURSE_BACKEND" predictor:"backend"`
	Output  string `help:"Output format" enum:"json,plain,rich,auto," default:"" short:"o" env:"PURSE_OUTPUT"`
	Verbose bool   `help:"Verbose output" short:"v" env:"PURSE_VERBOSE"`
	NoInput bool   `help:"Disable interactive prompts (fail instead)" env:"PURSE_NO_INPUT"`
}

// ResolvedOutput returns the effective output mode for out
// "auto" (or unset) detects TTY: if out is a TTY -> rich, else -> plain
func (g *Globals) ResolvedOutput(out io.Writer) string {
	if g.Output != "" && g.Output != "auto" {
		return g.Output
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "rich"
	}

	return "plain"
}
