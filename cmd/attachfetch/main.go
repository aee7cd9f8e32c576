package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ethan-wit/attachfetch/internal/cli"
)

func main() {
	var c cli.CLI

	parser := kong.Must(&c,
		kong.Name("attachfetch"),
		kong.Description("Fetch email attachments over IMAP, unzip them, and load spreadsheets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	// Handle --help-json before parsing to output full schema
	for _, arg := range os.Args[1:] {
		if arg == "--help-json" {
			if err := cli.PrintHelpJSON(&c); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	execCtx, err := cli.NewContext(&c.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(execCtx)
	if err != nil {
		if execCtx.Formatter.JSON {
			execCtx.Formatter.PrintJSON(map[string]interface{}{
				"success": false,
				"error":   err.Error(),
			})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
