package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/apidocgen/internal/generator"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Input  string `short:"i" help:"Doc-model input directory (overrides config)"`
	Output string `short:"o" help:"Output directory (overrides config)"`
}

func (g *GenerateCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	if g.Input != "" {
		cfg.Input.Directory = g.Input
	}
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	report, err := generator.New(cfg).Run()
	if err != nil {
		return err
	}

	slog.Info("Generation complete",
		slog.Int("packages", report.Packages),
		slog.Int("pages", report.Pages),
		slog.Int("warnings", report.Warnings),
		slog.Duration("duration", report.Duration))
	return nil
}
