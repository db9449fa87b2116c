package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/apidocgen/cmd/apidocgen/commands"
	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocgen/internal/version"
)

func main() {
	// A .env file is optional; its values feed ${VAR} expansion in the
	// configuration file.
	_ = godotenv.Load()

	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("apidocgen"),
		kong.Description("Generate markdown API reference pages from *.api.json doc models."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{}, &cli)
	if err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, nil)
		adapter.LogError(err)
		os.Exit(adapter.ExitCodeFor(err))
	}
}
