package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/cmakegen/cmd/cmakegen/commands"
	"git.home.luguber.info/inful/cmakegen/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("cmakegen"),
		kong.Description("Regenerate the CMakeLists.txt build descriptor from the project source tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
