// Package file implements the static-file brand source. The documents are
// read from any gocloud.dev blob bucket (local directory, memory, S3, GCS, Azure).
package file

import (
	"context"
	"log/slog"
	"sync"

	"brandhub/internal/domain/entity"
	"brandhub/internal/domain/repository"
	"brandhub/internal/infra/persistence/mapper"
	"brandhub/internal/infra/persistence/model"
	"brandhub/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

// Options locates the documents inside the bucket.
type Options struct {
	BrandsKey string
	AgentsKey string // optional; empty means no agents
}

// brandSource loads the documents once, on first access, and serves every
// later call from memory. There is no refresh: a restart picks up changes.
type brandSource struct {
	bucket *blob.Bucket
	opts   Options
	logger *slog.Logger

	once   sync.Once
	brands []*entity.Brand
	agents []*entity.Agent
}

// NewBrandSource is the constructor for the static-file brand source.
func NewBrandSource(bucket *blob.Bucket, opts Options, logger *slog.Logger) repository.BrandSource {
	return &brandSource{
		bucket: bucket,
		opts:   opts,
		logger: logger,
	}
}

// ListBrands returns the cached brands ordered by name. Never fails.
func (s *brandSource) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	s.load(ctx)

	return s.brands, nil
}

// FindBrandByID scans the cached brands.
func (s *brandSource) FindBrandByID(ctx context.Context, id string) (*entity.Brand, error) {
	s.load(ctx)

	for _, brand := range s.brands {
		if brand.ID == id {
			return brand, nil
		}
	}

	return nil, repository.ErrBrandNotFound
}

// ListAgents returns the cached agents ordered by name. Never fails.
func (s *brandSource) ListAgents(ctx context.Context) ([]*entity.Agent, error) {
	s.load(ctx)

	return s.agents, nil
}

func (s *brandSource) load(ctx context.Context) {
	s.once.Do(func() {
		// Detach from the triggering request so its cancellation cannot
		// leave the cache permanently empty.
		ctx := context.WithoutCancel(ctx)

		brands, records, err := s.loadBrands(ctx)
		if err != nil {
			s.logger.Error("Failed to load brands document, serving empty store",
				slog.String("key", s.opts.BrandsKey),
				slog.Any("error", err),
			)
			s.brands = []*entity.Brand{}
			s.agents = []*entity.Agent{}

			return
		}
		s.brands = brands

		agents, err := s.loadAgents(ctx, records)
		if err != nil {
			s.logger.Error("Failed to load agents document, serving no agents",
				slog.String("key", s.opts.AgentsKey),
				slog.Any("error", err),
			)
			agents = []*entity.Agent{}
		}
		s.agents = agents

		s.logger.Info("Static brand store loaded",
			slog.Int("brands", len(s.brands)),
			slog.Int("agents", len(s.agents)),
		)
	})
}

func (s *brandSource) loadBrands(ctx context.Context) ([]*entity.Brand, []*model.BrandModel, error) {
	data, err := s.bucket.ReadAll(ctx, s.opts.BrandsKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read brands document")
	}
	s.logger.Debug("Read brands document",
		slog.String("key", s.opts.BrandsKey),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", util.Checksum(data)),
	)

	records, skipped, err := decodeBrandModels(data)
	if err != nil {
		return nil, nil, err
	}
	if skipped > 0 {
		s.logger.Warn("Skipped brand records without id or name", slog.Int("skipped", skipped))
	}

	brands := mapper.ToBrands(records)
	mapper.SortBrands(brands)

	return brands, records, nil
}

func (s *brandSource) loadAgents(ctx context.Context, records []*model.BrandModel) ([]*entity.Agent, error) {
	if s.opts.AgentsKey == "" {
		return []*entity.Agent{}, nil
	}

	data, err := s.bucket.ReadAll(ctx, s.opts.AgentsKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read agents document")
	}

	return decodeAgents(data, records)
}

// LoadBrands reads and decodes the brands document directly, surfacing any
// failure. Used by the seeder, which must not silently seed nothing.
func LoadBrands(ctx context.Context, bucket *blob.Bucket, key string) ([]*entity.Brand, error) {
	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return DecodeBrands(data)
}
