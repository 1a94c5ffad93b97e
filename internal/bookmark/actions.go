package bookmark

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/batchlens/batchlens/internal/common"
	"github.com/batchlens/batchlens/internal/config"
	"github.com/batchlens/batchlens/models"
)

// ToggleAction flips the bookmark state of a company id.
func ToggleAction(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return cli.Exit("usage: batchlens bookmark toggle <company-id>", 1)
	}

	database, err := common.OpenDB(config.Load())
	if err != nil {
		return err
	}
	defer database.Close()

	bookmarked, err := database.ToggleBookmark(id)
	if err != nil {
		return fmt.Errorf("failed to toggle bookmark: %w", err)
	}

	if bookmarked {
		fmt.Printf("Bookmarked %s\n", id)
	} else {
		fmt.Printf("Removed bookmark %s\n", id)
	}
	return nil
}

// ListAction prints the bookmarked ids; with --full it resolves them
// against the loaded batch so unknown ids are reported rather than dropped
// silently.
func ListAction(c *cli.Context) error {
	database, err := common.OpenDB(config.Load())
	if err != nil {
		return err
	}
	defer database.Close()

	ids, err := database.ListBookmarks()
	if err != nil {
		return fmt.Errorf("failed to list bookmarks: %w", err)
	}

	if !c.Bool("full") {
		return common.WriteResponse(models.Response{
			Op:         "bookmark-list",
			MatchCount: len(ids),
			TotalCount: len(ids),
			Data:       ids,
		}, c.String("format"))
	}

	app, err := common.LoadApp(c)
	if err != nil {
		return err
	}

	var companies []models.Company
	var missing []string
	for _, id := range ids {
		if company := app.Engine.ByID(id); company != nil {
			companies = append(companies, *company)
		} else {
			missing = append(missing, id)
		}
	}

	resp := models.Response{
		Op:         "bookmark-list",
		Batch:      app.Batch,
		MatchCount: len(companies),
		TotalCount: len(ids),
		Data:       companies,
	}
	if len(missing) > 0 {
		resp.Error = &models.ErrorInfo{
			Type:    "stale_bookmarks",
			Message: fmt.Sprintf("%d bookmarked ids are not in batch %s", len(missing), app.Batch),
			SuggestedActions: []string{
				"Switch batches with --batch",
				"Remove stale ids with 'batchlens bookmark toggle <id>'",
			},
		}
	}
	return common.WriteResponse(resp, c.String("format"))
}

// ViewModeAction gets or sets the persisted view mode.
func ViewModeAction(c *cli.Context) error {
	database, err := common.OpenDB(config.Load())
	if err != nil {
		return err
	}
	defer database.Close()

	if mode := c.Args().First(); mode != "" {
		if err := database.SetViewMode(mode); err != nil {
			return err
		}
		fmt.Printf("View mode set to %s\n", mode)
		return nil
	}

	mode, err := database.ViewMode()
	if err != nil {
		return err
	}
	fmt.Println(mode)
	return nil
}
