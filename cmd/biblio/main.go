package main

import (
	"context"
	"log/slog"
	"os"

	"biblio/config"
	"biblio/internal/delivery"
	"biblio/internal/delivery/http"
	"biblio/internal/delivery/http/middleware"
	"biblio/internal/delivery/http/router/handler"
	"biblio/internal/infra/clock"
	logs "biblio/internal/infra/log"
	"biblio/internal/infra/persistence/postgres"
	"biblio/internal/usecase/impl"

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
		clock.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAuthorRepository,
			postgres.NewBookRepository,
			postgres.NewUserRepository,
			postgres.NewLoanRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthorService,
			impl.NewBookService,
			impl.NewUserService,
			impl.NewLoanService,
			impl.NewStatisticsService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthorHandler,
			handler.NewBookHandler,
			handler.NewUserHandler,
			handler.NewLoanHandler,
			handler.NewStatisticsHandler,
			handler.NewReportHandler,
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
