package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"brandhub/config"
	logs "brandhub/internal/infra/log"
	"brandhub/internal/infra/persistence"
	"brandhub/internal/infra/persistence/file"
	"brandhub/internal/infra/persistence/postgres"
	"brandhub/internal/usecase"
	"brandhub/internal/usecase/impl"
	"brandhub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedFlags overrides where the brands document is read from.
type seedFlags struct {
	bucketURL string
	brandsKey string
}

type runSeedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx    context.Context
	Flags  seedFlags
	Config *config.Config
	Logger *slog.Logger
	SeedUC usecase.SeedUsecase
}

func main() {
	flags := seedFlags{}
	flag.StringVar(&flags.bucketURL, "bucket", "", "Bucket URL holding the brands document (defaults to store.file.bucketUrl)")
	flag.StringVar(&flags.brandsKey, "key", "", "Object key of the brands document (defaults to store.file.brandsKey)")
	flag.Parse()

	fx.New(
		fx.Supply(flags),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewSeedService,
		),
		fx.Invoke(
			runSeed,
		),
	).Run()
}

// runSeed seeds once the database pool is up, then stops the app with the outcome as exit code.
func runSeed(params runSeedParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := seed(params); err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					code = 1
				}

				if err := params.Shutdown(fx.ExitCode(code)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func seed(params runSeedParams) error {
	bucketURL, brandsKey := params.Flags.bucketURL, params.Flags.brandsKey
	if fileCfg := params.Config.Store.File; fileCfg != nil {
		if bucketURL == "" {
			bucketURL = fileCfg.BucketURL
		}
		if brandsKey == "" {
			brandsKey = fileCfg.BrandsKey
		}
	}
	if bucketURL == "" {
		return errors.New("no brands bucket: pass -bucket or configure store.file.bucketUrl")
	}
	if brandsKey == "" {
		brandsKey = "brands.json"
	}

	bucket, err := persistence.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return err
	}
	defer bucket.Close()

	brands, err := file.LoadBrands(params.Ctx, bucket, brandsKey)
	if err != nil {
		return err
	}

	params.Logger.Info("Seeding database",
		slog.String("bucket", bucketURL),
		slog.String("key", brandsKey),
		slog.Int("brands", len(brands)),
	)

	start := time.Now()
	report, err := params.SeedUC.Seed(params.Ctx, &usecase.SeedInput{
		Brands: brands,
		Agents: impl.DefaultSeedAgents,
	})
	if err != nil {
		return err
	}

	params.Logger.Info("Seeding finished",
		slog.Int("brands", report.Brands),
		slog.Int("agents", report.Agents),
		slog.Int("associations", report.Associations),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)

	return nil
}
