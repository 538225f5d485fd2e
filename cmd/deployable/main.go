package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/delivery"
	"github.com/drbearcub/jw-deployable-app/internal/delivery/http"
	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/middleware"
	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/router/handler"
	"github.com/drbearcub/jw-deployable-app/internal/infra/auth"
	logs "github.com/drbearcub/jw-deployable-app/internal/infra/log"
	"github.com/drbearcub/jw-deployable-app/internal/infra/pdf"
	"github.com/drbearcub/jw-deployable-app/internal/infra/persistence/postgres"
	"github.com/drbearcub/jw-deployable-app/internal/infra/scraper"
	"github.com/drbearcub/jw-deployable-app/internal/infra/storage"
	"github.com/drbearcub/jw-deployable-app/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewConfigRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewS3DocumentStore,
			scraper.NewGoqueryScraper,
			pdf.NewFpdfRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewConfigService,
			impl.NewDocumentService,
			impl.NewScrapeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewConfigHandler,
			handler.NewDocumentHandler,
			handler.NewScrapeHandler,
			handler.NewMetadataHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
