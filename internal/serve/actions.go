package serve

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/batchlens/batchlens/internal/common"
	"github.com/batchlens/batchlens/internal/logging"
	"github.com/batchlens/batchlens/pkg/api"
)

// ServeAction loads the batch and serves the query API over HTTP.
func ServeAction(c *cli.Context) error {
	app, err := common.LoadApp(c)
	if err != nil {
		return err
	}

	logger := logging.New(app.Config.Log.Level)

	store, err := common.OpenDB(app.Config)
	if err != nil {
		// The query endpoints still work without durable bookmarks.
		logger.Warn("bookmark store unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	addr := c.String("addr")
	if addr == "" {
		addr = app.Config.Serve.Addr
	}

	server := api.NewServer(app.Batch, app.Engine, store, app.Config.View.PageSize, logger)
	logger.Info("serving batch", "batch", app.Batch, "companies", app.Engine.Total(), "addr", addr)

	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
