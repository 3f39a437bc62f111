package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-feed/internal/adapter"
	"github.com/MKhiriev/go-feed/internal/client"
	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/tui"
	"github.com/MKhiriev/go-feed/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-feed-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	feedAdapter, err := adapter.NewHTTPFeedAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create feed adapter")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(feedAdapter, cfg.Adapter.TokenFile, buildInfo, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))

		code := 1
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			code = 2
		}
		stop()
		os.Exit(code)
	}
}
