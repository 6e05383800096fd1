package main

import (
	"context"
	"log/slog"
	"os"

	"shopscore/config"
	"shopscore/internal/delivery"
	"shopscore/internal/delivery/api"
	"shopscore/internal/delivery/api/router/handler"
	"shopscore/internal/domain/constants"
	"shopscore/internal/domain/repository"
	"shopscore/internal/domain/service"
	"shopscore/internal/infra/auth"
	"shopscore/internal/infra/clock"
	"shopscore/internal/infra/lock"
	logs "shopscore/internal/infra/log"
	"shopscore/internal/infra/persistence/memory"
	"shopscore/internal/infra/persistence/postgres"
	"shopscore/internal/infra/pubsub"
	"shopscore/internal/infra/qrcode"
	"shopscore/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectHandler(),
		injectDelivery(),
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
		clock.NewSystemClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRatingRepository,
			newShopRepository,
			newUserRepository,
		),
	)
}

// newRatingRepository picks the rating store backend; db is nil unless the driver is postgres.
func newRatingRepository(cfg *config.Config, db *gorm.DB, clk service.Clock) repository.RatingRepository {
	if cfg.Storage.Driver == constants.StorageDriverPostgres {
		return postgres.NewRatingRepository(db, clk)
	}

	return memory.NewRatingRepository(clk)
}

func newShopRepository(cfg *config.Config, db *gorm.DB, clk service.Clock) repository.ShopRepository {
	if cfg.Storage.Driver == constants.StorageDriverPostgres {
		return postgres.NewShopRepository(db, clk)
	}

	return memory.NewShopRepository(clk)
}

func newUserRepository(cfg *config.Config, db *gorm.DB) repository.UserRepository {
	if cfg.Storage.Driver == constants.StorageDriverPostgres {
		return postgres.NewUserRepository(db)
	}

	return memory.NewUserRepository()
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newKeyLocker,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newKeyLocker creates the submission lock. Redis is required once more than one instance serves ratings.
func newKeyLocker(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.KeyLocker, error) {
	if cfg.Lock == nil || cfg.Lock.Driver != constants.LockDriverRedis {
		return lock.NewMemoryLocker(), nil
	}

	client, err := lock.Connect(cfg.Lock.RedisURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis lock client")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisLocker(client, cfg.Lock.TTL, logger), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(config.DefaultQRCodeSize, "medium", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRatingService,
			impl.NewScorecardService,
			impl.NewRankingService,
			impl.NewShopService,
			impl.NewUserService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRatingHandler,
			handler.NewShopHandler,
			handler.NewUserHandler,
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
