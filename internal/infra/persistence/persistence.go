// Package persistence selects the brand source implementation at startup.
package persistence

import (
	"context"
	"log/slog"

	"brandhub/config"
	"brandhub/internal/domain/repository"
	"brandhub/internal/errors"
	"brandhub/internal/infra/persistence/file"
	"brandhub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes accepted by store.file.bucketUrl.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBrandSource builds the brand source named by store.driver.
// Only the chosen backend is opened.
func NewBrandSource(params Params) (repository.BrandSource, error) {
	switch params.Config.Store.Driver {
	case config.StoreDriverFile:
		return newFileSource(params)
	case config.StoreDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using relational brand store")

		return postgres.NewBrandSource(db), nil
	default:
		return nil, errors.Errorf("unknown store driver %q", params.Config.Store.Driver)
	}
}

func newFileSource(params Params) (repository.BrandSource, error) {
	fileCfg := params.Config.Store.File
	if fileCfg == nil {
		return nil, errors.New("store.file config is missing")
	}

	bucket, err := OpenBucket(params.Ctx, fileCfg.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Using static-file brand store",
		slog.String("bucket", fileCfg.BucketURL),
		slog.String("brandsKey", fileCfg.BrandsKey),
		slog.String("agentsKey", fileCfg.AgentsKey),
	)

	return file.NewBrandSource(bucket, file.Options{
		BrandsKey: fileCfg.BrandsKey,
		AgentsKey: fileCfg.AgentsKey,
	}, params.Logger), nil
}

// OpenBucket opens a gocloud.dev bucket URL such as file:///data or mem://.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return bucket, nil
}
