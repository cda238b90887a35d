package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sassdocbuilder/cmd/sassdocbuilder/commands"
	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sassdocbuilder/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("sassdocbuilder"),
		kong.Description("Generate SassDoc documentation for a style-sheet project."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	if err := parser.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		os.Exit(ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err))
	}
}
