// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"brandhub/internal/domain/entity"
	"brandhub/internal/errors"
)

// ErrBrandNotFound is returned when no brand matches the requested id.
var ErrBrandNotFound = errors.New("brand not found")

// BrandSource is the read-only capability shared by every brand store.
// Implementations must return identical shapes for the same underlying data.
type BrandSource interface {
	// ListBrands returns every brand ordered by name ascending.
	ListBrands(ctx context.Context) ([]*entity.Brand, error)

	// FindBrandByID returns the brand with the given id.
	// Returns ErrBrandNotFound if no such brand exists.
	FindBrandByID(ctx context.Context, id string) (*entity.Brand, error)

	// ListAgents returns every agent ordered by name ascending, each with the
	// summaries of the brands it covers.
	ListAgents(ctx context.Context) ([]*entity.Agent, error)
}
