package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	batchcmd "github.com/batchlens/batchlens/internal/batch"
	bookmarkcmd "github.com/batchlens/batchlens/internal/bookmark"
	"github.com/batchlens/batchlens/internal/common"
	exportcmd "github.com/batchlens/batchlens/internal/export"
	querycmd "github.com/batchlens/batchlens/internal/query"
	servecmd "github.com/batchlens/batchlens/internal/serve"
	statscmd "github.com/batchlens/batchlens/internal/stats"
)

func main() {
	app := &cli.App{
		Name:  "batchlens",
		Usage: "Browse, search, filter and export a startup batch dataset",
		Commands: []*cli.Command{
			{
				Name:   "query",
				Usage:  "Search and filter companies, one page at a time",
				Action: querycmd.QueryAction,
				Flags: append(common.FilterFlags(),
					&cli.StringFlag{Name: "batch", Usage: "batch name from config"},
					&cli.StringFlag{Name: "sort", Usage: "sort column: score, name, category, employees, foundingYear, fundingRound"},
					&cli.StringFlag{Name: "dir", Usage: "sort direction: asc or desc"},
					&cli.IntFlag{Name: "page", Usage: "zero-based page index"},
					&cli.IntFlag{Name: "page-size", Usage: "page size (default from config)"},
					&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
				),
			},
			{
				Name:      "get",
				Usage:     "Show a single company by id",
				ArgsUsage: "<company-id>",
				Action:    querycmd.GetAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "batch", Usage: "batch name from config"},
					&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
				},
			},
			{
				Name:   "facets",
				Usage:  "List distinct filterable values (categories, rounds, tags, team sizes)",
				Action: querycmd.FacetsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "batch", Usage: "batch name from config"},
					&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show dataset aggregations (categories, funding, scores)",
				Action: statscmd.StatsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "batch", Usage: "batch name from config"},
					&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
				},
			},
			{
				Name:   "export",
				Usage:  "Export the filtered company list as CSV",
				Action: exportcmd.ExportAction,
				Flags: append(common.FilterFlags(),
					&cli.StringFlag{Name: "batch", Usage: "batch name from config"},
					&cli.StringFlag{Name: "sort", Usage: "sort column"},
					&cli.StringFlag{Name: "dir", Usage: "sort direction: asc or desc"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
				),
			},
			{
				Name:  "bookmark",
				Usage: "Manage the persisted bookmark set",
				Subcommands: []*cli.Command{
					{
						Name:      "toggle",
						Usage:     "Add or remove a bookmark",
						ArgsUsage: "<company-id>",
						Action:    bookmarkcmd.ToggleAction,
					},
					{
						Name:   "list",
						Usage:  "List bookmarked company ids",
						Action: bookmarkcmd.ListAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "full", Usage: "resolve ids against the loaded batch"},
							&cli.StringFlag{Name: "batch", Usage: "batch name from config"},
							&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
						},
					},
				},
			},
			{
				Name:      "view-mode",
				Usage:     "Get or set the persisted view mode (table or grid)",
				ArgsUsage: "[table|grid]",
				Action:    bookmarkcmd.ViewModeAction,
			},
			{
				Name:   "batches",
				Usage:  "List configured batch datasets",
				Action: batchcmd.BatchesAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve the query engine as an HTTP JSON API",
				Action: servecmd.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "batch", Usage: "batch name from config"},
					&cli.StringFlag{Name: "addr", Usage: "listen address (default from config)"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
