package impl

import (
	"context"
	"log/slog"

	deliverycontext "brandhub/internal/delivery/context"
	"brandhub/internal/domain/entity"
	domainerrors "brandhub/internal/domain/errors"
	"brandhub/internal/domain/repository"
	"brandhub/internal/errors"
	"brandhub/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// brandService implements the BrandUsecase interface.
type brandService struct {
	source repository.BrandSource
	logger *slog.Logger
}

// NewBrandService is the constructor for brandService.
func NewBrandService(source repository.BrandSource, logger *slog.Logger) usecase.BrandUsecase {
	return &brandService{
		source: source,
		logger: logger,
	}
}

func (srv *brandService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBrands retrieves all brands
func (srv *brandService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.source.ListBrands(ctx)
	if err != nil {
		srv.getLogger(ctx).Error("Error fetching brands", slog.Any("error", err))

		return nil, domainerrors.ErrBrandsFetchFailed.WithCause(err)
	}

	return nonNil(brands), nil
}

// GetBrand retrieves one brand by id. Any id is accepted; one that matches
// nothing is simply not found.
func (srv *brandService) GetBrand(ctx context.Context, id string) (*entity.Brand, error) {
	brand, err := srv.source.FindBrandByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		srv.getLogger(ctx).Error("Error fetching brand", slog.String("brand_id", id), slog.Any("error", err))

		return nil, domainerrors.ErrBrandFetchFailed.WithCause(err)
	}
	if brand == nil {
		return nil, domainerrors.ErrBrandNotFound
	}

	return brand, nil
}

// ListAgents retrieves all agents with their brand summaries
func (srv *brandService) ListAgents(ctx context.Context) ([]*entity.Agent, error) {
	agents, err := srv.source.ListAgents(ctx)
	if err != nil {
		srv.getLogger(ctx).Error("Error fetching agents", slog.Any("error", err))

		return nil, domainerrors.ErrAgentsFetchFailed.WithCause(err)
	}

	for _, agent := range agents {
		if agent.Brands == nil {
			agent.Brands = []entity.BrandSummary{}
		}
	}

	return nonNil(agents), nil
}

// BrandMap projects every located brand to a GeoJSON point feature.
func (srv *brandService) BrandMap(ctx context.Context) (*geojson.FeatureCollection, error) {
	brands, err := srv.ListBrands(ctx)
	if err != nil {
		return nil, err
	}

	collection := geojson.NewFeatureCollection()
	for _, brand := range brands {
		if !brand.HasLocation() {
			continue
		}

		feature := geojson.NewFeature(orb.Point{brand.Location.Lng, brand.Location.Lat})
		feature.ID = brand.ID
		feature.Properties["id"] = brand.ID
		feature.Properties["name"] = brand.Name
		feature.Properties["category"] = brand.Category
		feature.Properties["address"] = brand.Location.Address
		collection.Append(feature)
	}

	return collection, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
