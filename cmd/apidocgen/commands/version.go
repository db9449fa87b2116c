package commands

import (
	"fmt"

	"git.home.luguber.info/inful/apidocgen/internal/version"
)

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (v *VersionCmd) Run(_ *Global, _ *CLI) error {
	fmt.Printf("apidocgen %s\n", version.Version)
	fmt.Printf("  commit: %s\n", version.GitCommit)
	fmt.Printf("  built:  %s\n", version.BuildTime)
	return nil
}
