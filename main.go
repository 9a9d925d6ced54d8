package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/keysinmypurse/purse/internal/cli"
	"github.com/keysinmypurse/purse/internal/output"
)

var (
	version = "dev"
)

func main() {
	cliInstance := &cli.CLI{}
	parser := kong.Must(cliInstance,
		kong.Name("purse"),
		kong.Description("Keep access tokens in the OS secure credential store"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	// Answers shell completion requests and exits; no-op otherwise
	kongplete.Complete(parser, cli.Predictors()...)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// AfterApply failures (bad config) carry their own exit code
		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			os.Exit(output.Report(cliInstance.ErrorFormatter(), cliErr))
		}
		parser.FatalIfErrorf(err)
	}

	if err := ctx.Run(); err != nil {
		os.Exit(output.Report(cliInstance.ErrorFormatter(), err))
	}
}
