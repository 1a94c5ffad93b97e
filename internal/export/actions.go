package export

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/batchlens/batchlens/internal/common"
	"github.com/batchlens/batchlens/pkg/export"
	"github.com/batchlens/batchlens/pkg/query"
)

// ExportAction writes the filtered (and sorted) company list as CSV to a
// file or stdout. Zero matches still produce the header row.
func ExportAction(c *cli.Context) error {
	app, err := common.LoadApp(c)
	if err != nil {
		return err
	}

	result := app.Engine.Run(c.String("search"), common.CriteriaFromFlags(c))

	key := query.ParseSortKey(c.String("sort"))
	result = query.Sort(result, key, query.ParseDirection(c.String("dir"), key))

	out := os.Stdout
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteCSV(out, result); err != nil {
		return err
	}

	if c.String("out") != "" {
		fmt.Fprintf(os.Stderr, "Exported %d companies to %s\n", len(result), c.String("out"))
	}
	return nil
}
