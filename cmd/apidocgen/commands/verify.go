package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocgen/internal/linkverify"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	Dir string `short:"d" help:"Directory of generated pages to verify (overrides config)"`
}

func (v *VerifyCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	dir := cfg.Output.Directory
	if v.Dir != "" {
		dir = v.Dir
	}

	result, err := linkverify.New(dir).Verify()
	if err != nil {
		return err
	}

	for _, issue := range result.Issues {
		fmt.Printf("%s: %s (%s)\n", issue.Page, issue.Target, issue.Reason)
	}
	if !result.Ok() {
		return errors.NewError(errors.CategoryValidation,
			fmt.Sprintf("found %d broken links across %d pages", len(result.Issues), result.Pages)).
			Build()
	}

	slog.Info("All links verified",
		slog.Int("pages", result.Pages),
		slog.Int("links", result.Links))
	return nil
}
