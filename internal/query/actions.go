package query

import (
	"github.com/urfave/cli/v2"

	"github.com/batchlens/batchlens/internal/common"
	"github.com/batchlens/batchlens/models"
	"github.com/batchlens/batchlens/pkg/filter"
	"github.com/batchlens/batchlens/pkg/query"
)

// QueryAction runs search + filters + sort + pagination and prints one page.
func QueryAction(c *cli.Context) error {
	app, err := common.LoadApp(c)
	if err != nil {
		return err
	}

	criteria := common.CriteriaFromFlags(c)
	result := app.Engine.Run(c.String("search"), criteria)

	key := query.ParseSortKey(c.String("sort"))
	dir := query.ParseDirection(c.String("dir"), key)

	pageSize := c.Int("page-size")
	if pageSize <= 0 {
		pageSize = app.Config.View.PageSize
	}

	page := query.SortAndPaginate(result, key, dir, c.Int("page"), pageSize)

	return common.WriteResponse(models.Response{
		Op:         "query",
		Batch:      app.Batch,
		MatchCount: len(result),
		TotalCount: app.Engine.Total(),
		Data:       page,
	}, c.String("format"))
}

// GetAction prints a single company by id.
func GetAction(c *cli.Context) error {
	app, err := common.LoadApp(c)
	if err != nil {
		return err
	}

	id := c.Args().First()
	if id == "" {
		return cli.Exit("usage: batchlens get <company-id>", 1)
	}

	company := app.Engine.ByID(id)
	if company == nil {
		return common.WriteResponse(models.NewErrorResponse(
			"get", "not_found", "no company with id "+id,
			"Run 'batchlens query' to list companies"), c.String("format"))
	}

	return common.WriteResponse(models.Response{
		Op:         "get",
		Batch:      app.Batch,
		MatchCount: 1,
		TotalCount: app.Engine.Total(),
		Data:       company,
	}, c.String("format"))
}

// facets is the payload for populating filter controls.
type facets struct {
	Categories    []string         `json:"categories" yaml:"categories"`
	FundingRounds []string         `json:"funding_rounds" yaml:"funding_rounds"`
	Tags          []string         `json:"tags" yaml:"tags"`
	TeamSize      filter.SizeRange `json:"team_size" yaml:"team_size"`
}

// FacetsAction prints the distinct filterable values of the loaded batch.
func FacetsAction(c *cli.Context) error {
	app, err := common.LoadApp(c)
	if err != nil {
		return err
	}

	companies := app.Engine.Companies()
	return common.WriteResponse(models.Response{
		Op:         "facets",
		Batch:      app.Batch,
		MatchCount: len(companies),
		TotalCount: len(companies),
		Data: facets{
			Categories:    filter.UniqueCategories(companies),
			FundingRounds: filter.UniqueFundingRounds(companies),
			Tags:          filter.UniqueTags(companies),
			TeamSize:      filter.TeamSizeBounds(companies),
		},
	}, c.String("format"))
}
