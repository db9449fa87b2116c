package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/apidocgen/internal/config"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command grammar.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"apidocgen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Show version and exit"`

	Generate   GenerateCmd `cmd:"" help:"Generate the documentation page set"`
	Watch      WatchCmd    `cmd:"" help:"Regenerate whenever the input directory changes"`
	Verify     VerifyCmd   `cmd:"" help:"Check generated pages for broken links and anchors"`
	Init       InitCmd     `cmd:"" help:"Write a starter configuration file"`
	VersionCmd VersionCmd  `cmd:"" name:"version" help:"Show detailed version information"`
}

// AfterApply runs after flag parsing; set up logging once. Commands that
// load a configuration file re-apply its logging settings afterwards.
func (c *CLI) AfterApply() error {
	level := config.LogLevelInfo
	if c.Verbose {
		level = config.LogLevelDebug
	}
	configureLogging(level, config.LogFormatText)
	return nil
}

// loadConfig loads the configuration file and applies its logging settings.
// When the default path does not exist, built-in defaults are used; an
// explicitly given path must exist.
func (c *CLI) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(c.Config); os.IsNotExist(err) && c.Config == config.DefaultPath {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	level := config.NormalizeLogLevel(cfg.Logging.Level)
	if c.Verbose {
		level = config.LogLevelDebug
	}
	configureLogging(level, config.NormalizeLogFormat(cfg.Logging.Format))
	return cfg, nil
}

func configureLogging(level config.LogLevel, format config.LogFormat) {
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
