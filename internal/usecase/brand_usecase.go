package usecase

import (
	"context"

	"brandhub/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// BrandUsecase defines the read-only operations exposed by the directory API
type BrandUsecase interface {
	// ListBrands returns every brand ordered by name
	ListBrands(ctx context.Context) ([]*entity.Brand, error)

	// GetBrand returns one brand or domainerrors.ErrBrandNotFound
	GetBrand(ctx context.Context, id string) (*entity.Brand, error)

	// ListAgents returns every agent with the brands it covers
	ListAgents(ctx context.Context) ([]*entity.Agent, error)

	// BrandMap returns the brands that have a location as GeoJSON points
	BrandMap(ctx context.Context) (*geojson.FeatureCollection, error)
}

// SeedAgent is one sales agent of the seed data set
type SeedAgent struct {
	Name      string
	Email     string
	Phone     string
	Expertise string
}

// SeedInput is the data written by the seeder
type SeedInput struct {
	Brands []*entity.Brand
	Agents []SeedAgent
}

// SeedReport summarizes a seeding run
type SeedReport struct {
	Brands       int
	Agents       int
	Associations int
}

// SeedUsecase populates the relational store from fixed data
type SeedUsecase interface {
	Seed(ctx context.Context, input *SeedInput) (*SeedReport, error)
}
