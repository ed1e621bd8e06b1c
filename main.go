package main

import (
	"github.com/alecthomas/kong"

	"github.com/lepinkainen/tidydir/cmd"
	"github.com/lepinkainen/tidydir/logging"
)

var Version = "dev"

type CLI struct {
	LogLevel  string `help:"Log level (debug|info|warn|error)" default:"info"`
	LogFormat string `help:"Log output format (console|json)" default:"console"`

	Organize   cmd.OrganizeCmd   `cmd:"" help:"Move files into category subfolders by extension"`
	Categories cmd.CategoriesCmd `cmd:"" help:"Show the category table"`
}

func main() {
	cmd.Version = Version

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tidydir"),
		kong.Description("Organize the files of a directory into categorized subfolders."))

	logger := logging.New(logging.Options{
		Level:  cli.LogLevel,
		Format: cli.LogFormat,
	})

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
