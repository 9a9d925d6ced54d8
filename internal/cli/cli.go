package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/keysinmypurse/purse/internal/config"
	"github.com/keysinmypurse/purse/internal/output"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
}

// Streams are the process streams commands read from and write to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// CLI is the root command structure
type CLI struct {
	Globals

	Token      TokenCmd                     `cmd:"" help:"Read and write stored tokens"`
	Google     GoogleCmd                    `cmd:"" help:"Google access token shortcuts"`
	Keys       KeysCmd                      `cmd:"" help:"Show the stored keys list"`
	Config     ConfigCmd                    `cmd:"" help:"Configuration commands"`
	Version    VersionCmd                   `cmd:"" help:"Show version information"`
	Completion kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`

	// Streams overrides stdin/stdout/stderr; nil means the process streams
	Streams *Streams `kong:"-"`
	// ConfigPath overrides the XDG config location
	ConfigPath string `kong:"-"`

	formatter output.Formatter
}

// ErrorFormatter returns the formatter chosen for this run, or plain before flags are applied
func (c *CLI) ErrorFormatter() output.Formatter {
	if c.formatter == nil {
		return output.New("plain")
	}
	return c.formatter
}

// AfterApply runs once flags are parsed, before any command executes.
// It loads config, resolves flags against it, and binds dependencies.
func (c *CLI) AfterApply(ctx *kong.Context) error {
	streams := c.Streams
	if streams == nil {
		streams = &Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	}

	path := c.ConfigPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return &output.CLIError{
			Message:  err.Error(),
			ExitCode: output.ExitConfigError,
			Hint:     fmt.Sprintf("Check or remove %s", path),
		}
	}

	// Resolve: CLI flag / env > config file > default.
	// Overrides go on a copy so config set never persists them.
	resolved := *cfg
	if c.Service != "" {
		resolved.ServiceName = c.Service
	}
	if c.Backend != "" {
		resolved.Backend = c.Backend
	}
	if c.Output == "" {
		c.Output = cfg.DefaultOutput
	}

	c.formatter = output.NewWithWriters(c.ResolvedOutput(streams.Out), streams.Out, streams.Err)
	formatter := &FormatterProvider{Formatter: c.formatter}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(streams.Err, &slog.HandlerOptions{Level: level}))

	ctx.Bind(cfg)
	ctx.Bind(formatter)
	ctx.Bind(streams)
	ctx.Bind(&c.Globals)
	ctx.Bind(NewVaultProvider(&resolved, logger))

	return nil
}

// TokenCmd holds token subcommands
type TokenCmd struct {
	Get  TokenGetCmd  `cmd:"" help:"Print the token stored for an account"`
	Set  TokenSetCmd  `cmd:"" help:"Store a token for an account"`
	Rm   TokenRmCmd   `cmd:"" help:"Remove the token stored for an account"`
	List TokenListCmd `cmd:"" help:"List stored accounts"`
}

// GoogleCmd holds the googleAccessToken shortcuts
type GoogleCmd struct {
	Get GoogleGetCmd `cmd:"" help:"Print the Google access token (empty if none)"`
	Set GoogleSetCmd `cmd:"" help:"Store the Google access token"`
}

// ConfigCmd holds configuration subcommands
type ConfigCmd struct {
	Get   ConfigGetCmd        `cmd:"" help:"Get a configuration value"`
	Set   ConfigSetCmd        `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd      `cmd:"" help:"Remove a configuration value"`
	List  ConfigListConfigCmd `cmd:"" name:"list" help:"List all configuration values"`
	Path  ConfigPathCmd       `cmd:"" help:"Show config file path"`
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context, streams *Streams) error {
	fmt.Fprintln(streams.Out, "purse version "+ctx.Model.Vars()["version"])
	return nil
}
