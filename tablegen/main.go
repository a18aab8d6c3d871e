package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/synadia-labs/cborwf/tablegen/core"
)

// CLI defines the tablegen command-line interface.
//
//   - input: table file (defaults to the embedded RFC 8949 Appendix B table)
//   - output: generated Go file
//   - package: package clause of the generated file
type CLI struct {
	Input   string `short:"i" help:"Table file; defaults to the embedded Appendix B table" type:"existingfile"`
	Output  string `short:"o" help:"Output Go file" default:"initial_byte_table.go"`
	Package string `short:"p" help:"Package name of the generated file" default:"cbor"`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tablegen"),
		kong.Description("Generate the CBOR initial-byte table from RFC 8949 Appendix B."),
	)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := core.Run(cli.Output, core.Options{
		Input:   cli.Input,
		Package: cli.Package,
		Logger:  logger,
	})
	ctx.FatalIfErrorf(err)
}
