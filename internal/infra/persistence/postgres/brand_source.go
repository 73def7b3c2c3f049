// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"brandhub/internal/domain/entity"
	"brandhub/internal/domain/repository"
	"brandhub/internal/infra/persistence/mapper"
	"brandhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// byteOrderByName sorts with the C collation so the database order matches
// a plain lexicographic comparison regardless of the server locale.
const byteOrderByName = `name COLLATE "C" ASC, id ASC`

// brandSource implements repository.BrandSource on top of GORM.
type brandSource struct {
	db *gorm.DB
}

// NewBrandSource is the constructor for the relational brand source.
func NewBrandSource(db *gorm.DB) repository.BrandSource {
	return &brandSource{db: db}
}

// ListBrands returns every brand ordered by name.
func (s *brandSource) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel
	if err := s.db.WithContext(ctx).Order(byteOrderByName).Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return mapper.ToBrands(brandModels), nil
}

// FindBrandByID is a primary-key lookup.
func (s *brandSource) FindBrandByID(ctx context.Context, id string) (*entity.Brand, error) {
	var brandM model.BrandModel
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&brandM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	return mapper.ToBrand(&brandM), nil
}

// ListAgents returns every agent ordered by name, with the brands reachable
// through the agent_brands join table.
func (s *brandSource) ListAgents(ctx context.Context) ([]*entity.Agent, error) {
	var agentModels []*model.AgentModel
	err := s.db.WithContext(ctx).
		Preload("AgentBrands.Brand").
		Order(byteOrderByName).
		Find(&agentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	return mapper.ToAgents(agentModels), nil
}
