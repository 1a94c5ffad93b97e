// Package common holds helpers shared by the CLI action packages.
package common

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/batchlens/batchlens/internal/config"
	"github.com/batchlens/batchlens/internal/logging"
	"github.com/batchlens/batchlens/models"
	"github.com/batchlens/batchlens/pkg/dataset"
	"github.com/batchlens/batchlens/pkg/db"
	"github.com/batchlens/batchlens/pkg/filter"
	"github.com/batchlens/batchlens/pkg/query"
)

// App bundles everything an action needs: config, logger, and the engine
// over the requested batch snapshot.
type App struct {
	Config config.Config
	Batch  string
	Engine *query.Engine
}

// LoadApp resolves the --batch flag against config, loads the snapshot, and
// builds the query engine. A load failure is surfaced but still yields a
// usable (empty) engine, matching the dashboard's "no data" state.
func LoadApp(c *cli.Context) (*App, error) {
	cfg := config.Load()
	logger := logging.New(cfg.Log.Level)

	batch, source, ok := cfg.BatchSource(c.String("batch"))
	if !ok {
		return nil, fmt.Errorf("unknown batch %q (configured: %s)", batch, strings.Join(batchNames(cfg), ", "))
	}

	companies, err := dataset.NewLoader(logger).Load(c.Context, source)
	if err != nil {
		logger.Error("dataset load failed", "batch", batch, "source", source, "err", err)
	}

	return &App{
		Config: cfg,
		Batch:  batch,
		Engine: query.NewEngine(companies, cfg.SearchThreshold()),
	}, nil
}

// OpenDB opens the bookmark store at the configured path.
func OpenDB(cfg config.Config) (*db.DB, error) {
	database, err := db.Open(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func batchNames(cfg config.Config) []string {
	names := make([]string, 0, len(cfg.Data.Batches))
	for name := range cfg.Data.Batches {
		names = append(names, name)
	}
	return names
}

// CriteriaFromFlags builds filter criteria from the shared filter flags.
func CriteriaFromFlags(c *cli.Context) filter.Criteria {
	criteria := filter.Criteria{
		Categories:    splitList(c.String("categories")),
		FundingRounds: splitList(c.String("rounds")),
		Tags:          splitList(c.String("tags")),
	}

	if c.IsSet("team-min") || c.IsSet("team-max") {
		max := c.Int("team-max")
		if !c.IsSet("team-max") {
			max = math.MaxInt32
		}
		criteria.TeamSize = &filter.SizeRange{Min: c.Int("team-min"), Max: max}
	}

	return criteria
}

// FilterFlags are the flags shared by every command that narrows the
// company list.
func FilterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "fuzzy search text"},
		&cli.StringFlag{Name: "categories", Usage: "comma-separated category filter"},
		&cli.StringFlag{Name: "rounds", Usage: "comma-separated funding round filter"},
		&cli.StringFlag{Name: "tags", Usage: "comma-separated tag filter (matches any)"},
		&cli.IntFlag{Name: "team-min", Usage: "minimum team size (inclusive)"},
		&cli.IntFlag{Name: "team-max", Usage: "maximum team size (inclusive)"},
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WriteResponse prints a response envelope as YAML (default) or JSON.
func WriteResponse(resp models.Response, format string) error {
	switch strings.ToLower(format) {
	case "json":
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		fmt.Println(string(out))
	default:
		out, err := yaml.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		fmt.Print(string(out))
	}
	return nil
}
