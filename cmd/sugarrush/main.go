package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"sugarrush/config"
	"sugarrush/internal/delivery"
	deliveryhttp "sugarrush/internal/delivery/http"
	httpmiddleware "sugarrush/internal/delivery/http/middleware"
	"sugarrush/internal/delivery/http/router/handler"
	"sugarrush/internal/delivery/middleware"
	"sugarrush/internal/domain/entity"
	"sugarrush/internal/infra/auth"
	"sugarrush/internal/infra/auth/google"
	logs "sugarrush/internal/infra/log"
	"sugarrush/internal/infra/metrics"
	"sugarrush/internal/infra/persistence/mongo"
	"sugarrush/internal/infra/persistence/postgres"
	"sugarrush/internal/infra/persistence/redis"
	"sugarrush/internal/usecase"
	"sugarrush/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The user store backend decides which providers enter the graph.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.UserStore.Driver),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			warnPrivilegedDefaultRole,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		redis.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(usecase.AuthMetrics)),
		),
		fx.Annotate(
			func(m *metrics.AuthMetrics) http.Handler { return m.Handler() },
			fx.ResultTags(`name:"metrics"`),
		),
	)
}

func injectRepo(userStore string) fx.Option {
	userRepo := fx.Provide(mongo.New, mongo.NewUserRepository)
	if userStore == config.UserStorePostgres {
		userRepo = fx.Provide(postgres.New, postgres.NewUserRepository)
	}

	return fx.Options(
		userRepo,
		fx.Provide(
			redis.NewRevocationStore,
			redis.NewStateStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func warnPrivilegedDefaultRole(cfg *config.Config, logger *slog.Logger) {
	if entity.Role(cfg.Auth.DefaultRole).IsAdmin() {
		logger.Warn("New accounts will be created with the admin role", slog.String("auth.defaultRole", cfg.Auth.DefaultRole))
	}
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
