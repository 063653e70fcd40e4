package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a range against hero cards and a board"`
	Range    RangeCmd         `cmd:"" help:"Print a range on the 13x13 matrix"`
	Random   RandomCmd        `cmd:"" help:"Pick random cards that are not dead"`
	Batch    BatchCmd         `cmd:"" help:"Analyze every scenario in the config file"`
	TUI      TUICmd           `cmd:"tui" help:"Open the interactive range explorer"`
}

func main() {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rangeboard"),
		kong.Description("Classify poker ranges by made hand and draw on a board"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(signalCtx, (*context.Context)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
