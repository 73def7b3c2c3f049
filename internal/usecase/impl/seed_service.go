package impl

import (
	"context"
	"log/slog"
	"strings"

	"brandhub/internal/domain/entity"
	"brandhub/internal/domain/repository"
	"brandhub/internal/usecase"

	"github.com/pkg/errors"
)

const expertiseSeparator = " & "

// DefaultSeedAgents are the sample agents written by the seeder.
var DefaultSeedAgents = []usecase.SeedAgent{
	{Name: "Sarah Johnson", Email: "sarah.johnson@luxury.com", Phone: "+1-555-0101", Expertise: "Fashion & Leather Goods"},
	{Name: "Michael Chen", Email: "michael.chen@luxury.com", Phone: "+1-555-0102", Expertise: "Watches & Jewelry"},
	{Name: "Emma Wilson", Email: "emma.wilson@luxury.com", Phone: "+1-555-0103", Expertise: "Fashion & Accessories"},
}

type seedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{
		txManager: txManager,
		logger:    logger,
	}
}

// Seed migrates the schema and upserts brands, agents and their associations
// in a single transaction.
func (srv *seedService) Seed(ctx context.Context, input *usecase.SeedInput) (*usecase.SeedReport, error) {
	if input == nil {
		return nil, errors.New("seed input is required")
	}

	report := &usecase.SeedReport{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seeder := repoFactory.NewBrandSeeder()

		if err := seeder.Migrate(ctx); err != nil {
			return errors.Wrap(err, "failed to migrate schema")
		}

		for _, brand := range input.Brands {
			if brand == nil {
				continue
			}
			if err := seeder.UpsertBrand(ctx, brand); err != nil {
				return errors.Wrapf(err, "failed to upsert brand %s", brand.ID)
			}
			report.Brands++
		}

		for _, seedAgent := range input.Agents {
			agent, err := seeder.UpsertAgent(ctx, toAgentEntity(seedAgent))
			if err != nil {
				return errors.Wrapf(err, "failed to upsert agent %s", seedAgent.Email)
			}
			report.Agents++

			keyword := ExpertiseKeyword(seedAgent.Expertise)
			if keyword == "" {
				continue
			}

			linked, err := seeder.AssociateByCategory(ctx, agent.ID, keyword)
			if err != nil {
				return errors.Wrapf(err, "failed to associate agent %s", seedAgent.Email)
			}
			report.Associations += linked

			srv.logger.Debug("Associated agent with brands",
				slog.String("agent", agent.Name),
				slog.String("keyword", keyword),
				slog.Int("brands", linked),
			)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	srv.logger.Info("Database seeded",
		slog.Int("brands", report.Brands),
		slog.Int("agents", report.Agents),
		slog.Int("associations", report.Associations),
	)

	return report, nil
}

// ExpertiseKeyword returns the first " & " separated segment of an expertise,
// e.g. "Fashion" for "Fashion & Leather Goods".
func ExpertiseKeyword(expertise string) string {
	keyword, _, _ := strings.Cut(expertise, expertiseSeparator)

	return strings.TrimSpace(keyword)
}

func toAgentEntity(seedAgent usecase.SeedAgent) *entity.Agent {
	agent := &entity.Agent{
		Name:   seedAgent.Name,
		Email:  seedAgent.Email,
		Active: true,
	}
	if seedAgent.Phone != "" {
		phone := seedAgent.Phone
		agent.Phone = &phone
	}
	if seedAgent.Expertise != "" {
		expertise := seedAgent.Expertise
		agent.Expertise = &expertise
	}

	return agent
}
