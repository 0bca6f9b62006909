package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cms-settings/internal/app"
	"github.com/MKhiriev/go-cms-settings/internal/logger"
	"github.com/MKhiriev/go-cms-settings/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := app.New(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		stop()
		log := logger.NewLogger("cmsconfig")
		log.Fatal().Err(err).Msg(app.MsgRunFailed)
	}
}
