package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/apidocgen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, cli *CLI) error {
	if err := config.Init(cli.Config, i.Force); err != nil {
		return err
	}
	slog.Info("Configuration file written", slog.String("path", cli.Config))
	return nil
}
