package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/Barista/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Barista"), kong.Description("Barista serves the coffee shop drinks menu."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
