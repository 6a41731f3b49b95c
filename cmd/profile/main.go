package main

import (
	"context"
	"log/slog"
	"os"

	"profile/config"
	"profile/internal/delivery"
	"profile/internal/delivery/api"
	"profile/internal/delivery/api/router/handler"
	"profile/internal/infra/crypto"
	"profile/internal/infra/geocoding"
	logs "profile/internal/infra/log"
	"profile/internal/infra/metrics"
	"profile/internal/infra/persistence/postgres"
	"profile/internal/infra/pubsub"
	"profile/internal/infra/redis"
	"profile/internal/usecase/impl"

	"github.com/pkg/errors"
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
		metrics.NewRegistry,
		fx.Annotate(
			metrics.Handler,
			fx.ResultTags(`name:"metrics"`),
		),
		newRedisClient,
		newFieldCodec,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		geocoding.Module,
		pubsub.Module,
	)
}

// newRedisClient connects when redis.url is set; otherwise it provides nil.
func newRedisClient(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.CloseWithLog(logger)

			return nil
		},
	})

	return client, nil
}

// newFieldCodec loads the PII key and builds the cipher and email index from it
func newFieldCodec(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*postgres.FieldCodec, error) {
	key, err := crypto.LoadKey(ctx, cfg.Encryption, logger)
	if err != nil {
		return nil, err
	}

	cipher, err := crypto.NewCodec(key)
	if err != nil {
		return nil, err
	}

	index, err := crypto.NewEmailIndex(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive email index key")
	}

	return postgres.NewFieldCodec(cipher, index), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewHealthHandler,
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
				os.Exit(1)
			}
		}()
	}
}
