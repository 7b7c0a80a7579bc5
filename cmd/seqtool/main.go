// Package main provides seqtool, a command line front end for the seq package.
package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/krmcbride/sequtil/pkg/config"
)

var version = "dev"

// logger carries --verbose diagnostics; it is silent otherwise.
var logger = log.New(io.Discard, "seqtool: ", 0)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "seqtool",
		Usage:   "Parse delimited text into lists and join lists into delimited text",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: lines, json, yaml or shell",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log diagnostics to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetOutput(io.Discard)
			if c.Bool("verbose") {
				logger.SetOutput(c.App.ErrWriter)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "ints",
				Usage:     "Parse TEXT (or stdin) into integers",
				ArgsUsage: "[TEXT]",
				Action:    parseInts,
				Flags:     []cli.Flag{separatorFlag()},
			},
			{
				Name:      "strings",
				Usage:     "Split TEXT (or stdin) into fields",
				ArgsUsage: "[TEXT]",
				Action:    parseStrings,
				Flags: []cli.Flag{
					separatorFlag(),
					&cli.BoolFlag{
						Name:  "keep-empty",
						Usage: "Keep zero-length fields",
					},
				},
			},
			{
				Name:      "join",
				Usage:     "Join ITEMs (or stdin) with commas",
				ArgsUsage: "[ITEM...]",
				Action:    joinItems,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "space",
						Usage: "Put a space after each comma",
					},
					&cli.BoolFlag{
						Name:  "null-if-empty",
						Usage: "Print null_text instead of an empty line when there are no items",
					},
					&cli.StringFlag{
						Name:  "input",
						Value: inputLines,
						Usage: "How stdin is read: lines, shell or json",
					},
					&cli.StringFlag{
						Name:  "match",
						Usage: "Only join items matching this regular expression",
					},
					&cli.StringFlag{
						Name:  "map",
						Value: mapNone,
						Usage: "Rewrite each item before joining: none, trim, upper, lower or quote",
					},
				},
			},
			{
				Name:      "fix-spacing",
				Usage:     "Normalize TEXT (or stdin) to one space after each comma",
				ArgsUsage: "[TEXT]",
				Action:    fixSpacing,
			},
			{
				Name:   "exec",
				Usage:  "Run a JSON request from stdin and print a JSON response",
				Action: execRequest,
			},
		},
	}
}

func separatorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "sep",
		Aliases: []string{"s"},
		Usage:   "Field separator (single character, default from config)",
	}
}
