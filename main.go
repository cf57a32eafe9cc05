package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/mdsplit/internal/build"
	"github.com/dtnitsch/mdsplit/internal/history"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    build.AppName,
		Usage:   "Split a Markdown file into linked HTML pages",
		Version: build.Version,
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Convert a Markdown file into a set of linked HTML pages",
				ArgsUsage: "<markdown-file>",
				Action:    build.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Path to the output directory. Must already exist. Defaults to a fresh timestamped directory next to the source file.",
					},
					&cli.StringFlag{
						Name:    "output-name",
						Aliases: []string{"n"},
						Value:   "page",
						Usage:   "Base name for the output HTML files.",
					},
					&cli.StringFlag{
						Name:    "images-subdir",
						Aliases: []string{"i"},
						Usage:   "Subdirectory for images, expected next to the Markdown file. Contents are copied to a same-named subdirectory in the output directory.",
					},
					&cli.StringFlag{
						Name:    "code-subdir",
						Aliases: []string{"d"},
						Usage:   "Subdirectory for extracted code files, created next to the Markdown file if needed.",
					},
					&cli.IntFlag{
						Name:  "img-delay",
						Usage: "Delay in seconds to wait for a code-file image to be created.",
					},
					&cli.StringFlag{
						Name:    "css-file",
						Aliases: []string{"c"},
						Usage:   "Name of a CSS file linked from the HTML output. Seeded with the default style if it does not exist; otherwise left untouched. Without it the default style is embedded.",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Build report format: json or yaml.",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors.",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "List recent build runs",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of runs to list.",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
