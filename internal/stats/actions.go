package stats

import (
	"github.com/urfave/cli/v2"

	"github.com/batchlens/batchlens/internal/common"
	"github.com/batchlens/batchlens/models"
	"github.com/batchlens/batchlens/pkg/stats"
)

// StatsAction prints the dataset aggregations for the loaded batch.
func StatsAction(c *cli.Context) error {
	app, err := common.LoadApp(c)
	if err != nil {
		return err
	}

	summary := stats.Summarize(app.Engine.Companies())
	return common.WriteResponse(models.Response{
		Op:         "stats",
		Batch:      app.Batch,
		MatchCount: summary.TotalCompanies,
		TotalCount: summary.TotalCompanies,
		Data:       summary,
	}, c.String("format"))
}
