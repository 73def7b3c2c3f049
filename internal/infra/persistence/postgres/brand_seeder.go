package postgres

import (
	"context"
	"strings"

	"brandhub/internal/domain/entity"
	"brandhub/internal/domain/repository"
	"brandhub/internal/infra/persistence/mapper"
	"brandhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// brandSeeder implements repository.BrandSeeder.
type brandSeeder struct {
	db *gorm.DB
}

// NewBrandSeeder is the constructor for brandSeeder.
func NewBrandSeeder(db *gorm.DB) repository.BrandSeeder {
	return &brandSeeder{db: db}
}

func (s *brandSeeder) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&model.BrandModel{},
		&model.AgentModel{},
		&model.AgentBrandModel{},
	)

	return errors.Wrap(err, "failed to migrate brand tables")
}

func (s *brandSeeder) UpsertBrand(ctx context.Context, brand *entity.Brand) error {
	brandM := mapper.FromBrand(brand)

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "category", "founded", "headquarters",
				"lat", "lng", "address", "image", "updated_at",
			}),
		}).
		Create(brandM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrapf(err, "brand %q is missing required fields", brand.ID)
		}

		return errors.Wrapf(err, "failed to upsert brand %q", brand.ID)
	}

	return nil
}

func (s *brandSeeder) UpsertAgent(ctx context.Context, agent *entity.Agent) (*entity.Agent, error) {
	agentM := &model.AgentModel{
		ID:        agent.ID,
		Name:      agent.Name,
		Email:     agent.Email,
		Phone:     agent.Phone,
		Expertise: agent.Expertise,
		Active:    agent.Active,
	}
	if agentM.ID == "" {
		agentM.ID = uuid.NewString()
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "expertise", "active", "updated_at"}),
		}).
		Create(agentM).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert agent %q", agent.Email)
	}

	// On conflict the generated id was discarded; read back the stored row.
	var stored model.AgentModel
	if err := s.db.WithContext(ctx).Where("email = ?", agent.Email).Take(&stored).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to reload agent %q", agent.Email)
	}

	return mapper.ToAgent(&stored), nil
}

func (s *brandSeeder) AssociateByCategory(ctx context.Context, agentID, keyword string) (int, error) {
	var brandModels []*model.BrandModel
	err := s.db.WithContext(ctx).
		Where("category LIKE ?", "%"+escapeLike(keyword)+"%").
		Find(&brandModels).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to find brands by category")
	}

	for _, brandM := range brandModels {
		link := &model.AgentBrandModel{
			ID:      uuid.NewString(),
			AgentID: agentID,
			BrandID: brandM.ID,
		}

		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "agent_id"}, {Name: "brand_id"}},
				DoNothing: true,
			}).
			Create(link).Error
		if err != nil {
			if isForeignKeyConstraintViolation(err) {
				return 0, errors.Wrapf(err, "agent %q does not exist", agentID)
			}

			return 0, errors.Wrapf(err, "failed to link agent %q to brand %q", agentID, brandM.ID)
		}
	}

	return len(brandModels), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
