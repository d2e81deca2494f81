package main

import (
	"context"
	"log/slog"
	"os"

	"lastseen/config"
	"lastseen/internal/delivery"
	"lastseen/internal/delivery/api"
	"lastseen/internal/delivery/api/middleware"
	"lastseen/internal/delivery/api/router/handler"
	"lastseen/internal/infra/auth"
	"lastseen/internal/infra/clock"
	"lastseen/internal/infra/geocoder"
	logs "lastseen/internal/infra/log"
	"lastseen/internal/infra/mapscene"
	"lastseen/internal/infra/metrics"
	"lastseen/internal/infra/persistence/migrations"
	"lastseen/internal/infra/persistence/postgres"
	"lastseen/internal/infra/privacy"
	"lastseen/internal/infra/pubsub"
	"lastseen/internal/infra/qrcode"
	"lastseen/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			// Registered first so the schema is current before anything else starts.
			migrations.Register,
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
		clock.New,
		metrics.NewRegistry,
		metrics.NewRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewLocationRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			privacy.NewObfuscator,
			geocoder.New,
			mapscene.NewFactory,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCircleHub,
			impl.NewCircleService,
			impl.NewConnectionsService,
			impl.NewPublicShareService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCircleHandler,
			handler.NewConnectionsHandler,
			handler.NewShareHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
