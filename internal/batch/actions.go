package batch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/batchlens/batchlens/internal/config"
)

// BatchesAction lists the configured batch datasets.
func BatchesAction(c *cli.Context) error {
	cfg := config.Load()

	if len(cfg.Data.Batches) == 0 {
		fmt.Println("No batches configured")
		return nil
	}

	names := make([]string, 0, len(cfg.Data.Batches))
	for name := range cfg.Data.Batches {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-12s %-9s %s\n", "BATCH", "DEFAULT", "SOURCE")
	fmt.Println(strings.Repeat("-", 60))
	for _, name := range names {
		marker := ""
		if name == cfg.Data.DefaultBatch {
			marker = "*"
		}
		fmt.Printf("%-12s %-9s %s\n", name, marker, cfg.Data.Batches[name])
	}

	fmt.Printf("\nTotal: %d batches\n", len(names))
	return nil
}
