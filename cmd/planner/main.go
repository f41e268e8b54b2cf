package main

import (
	"context"
	"log/slog"
	"os"

	"planner/config"
	"planner/internal/delivery"
	"planner/internal/delivery/http"
	"planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/router/handler"
	"planner/internal/delivery/scheduler"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/infra/credential"
	"planner/internal/infra/gateway/eventapi"
	"planner/internal/infra/gateway/mealdb"
	"planner/internal/infra/identity/firebase"
	logs "planner/internal/infra/log"
	"planner/internal/infra/photo"
	"planner/internal/usecase"
	"planner/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startEngine,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenVerifier,
			fx.Annotate(
				firebase.NewProvider,
				fx.As(new(service.IdentityProvider), new(service.SessionService)),
			),
			credential.NewAccessor,
			eventapi.NewClient,
			mealdb.NewCatalog,
			fx.Annotate(
				photo.NewStore,
				fx.As(new(service.PhotoStore), new(service.PhotoReader)),
			),
		),
	)
}

// newTokenVerifier creates the Admin SDK verifier when service-account
// credentials are configured. Without them ID tokens are only decoded.
func newTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (firebase.TokenVerifier, error) {
	verifier, err := firebase.NewAdminVerifier(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token verifier")
	}
	if verifier == nil {
		logger.Warn("Firebase credentials not configured, ID tokens are not verified")
	}

	return verifier, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEventSyncService,
			impl.NewRecipeService,
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
			handler.NewSessionHandler,
			handler.NewEventHandler,
			handler.NewRecipeHandler,
			handler.NewPhotoHandler,
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
			fx.Annotate(
				scheduler.NewRefresher,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startEngine ties the sync engine to the application lifecycle.
func startEngine(lc fx.Lifecycle, events usecase.EventSyncUsecase) {
	lc.Append(fx.Hook{
		OnStart: events.Start,
		OnStop: func(ctx context.Context) error {
			events.Stop()

			return nil
		},
	})
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
