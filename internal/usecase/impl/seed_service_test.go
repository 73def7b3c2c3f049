package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"brandhub/internal/domain/entity"
	"brandhub/internal/domain/repository"
	mockRepo "brandhub/internal/mocks/repository"
	"brandhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service   usecase.SeedUsecase
	txManager *mockRepo.MockTransactionManager
	seeder    *mockRepo.MockBrandSeeder
}

func createTestSeedService(t *testing.T) seedServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	seeder := mockRepo.NewMockBrandSeeder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return seedServiceFixtures{
		service:   NewSeedService(txManager, logger),
		txManager: txManager,
		seeder:    seeder,
	}
}

// runInTx makes the transaction manager invoke the callback with a factory
// returning the fixture seeder, and propagate its result.
func (f seedServiceFixtures) runInTx(t *testing.T, ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewBrandSeeder().Return(f.seeder)

			return fn(factory)
		})
}

func TestExpertiseKeyword(t *testing.T) {
	tests := []struct {
		expertise string
		want      string
	}{
		{expertise: "Fashion & Leather Goods", want: "Fashion"},
		{expertise: "Watches & Jewelry", want: "Watches"},
		{expertise: "Perfume", want: "Perfume"},
		{expertise: "", want: ""},
		{expertise: "Fashion&Accessories", want: "Fashion&Accessories"},
	}

	for _, tt := range tests {
		t.Run(tt.expertise, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpertiseKeyword(tt.expertise))
		})
	}
}

func TestSeedService_Seed_Success(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	brands := []*entity.Brand{
		{ID: "chanel", Name: "Chanel", Category: "Fashion"},
		{ID: "rolex", Name: "Rolex", Category: "Watches"},
	}

	fx.runInTx(t, ctx)
	fx.seeder.EXPECT().Migrate(ctx).Return(nil)
	fx.seeder.EXPECT().UpsertBrand(ctx, brands[0]).Return(nil)
	fx.seeder.EXPECT().UpsertBrand(ctx, brands[1]).Return(nil)

	fx.seeder.EXPECT().
		UpsertAgent(ctx, mock.MatchedBy(func(agent *entity.Agent) bool {
			return agent.Email == "sarah.johnson@luxury.com"
		})).
		RunAndReturn(func(_ context.Context, agent *entity.Agent) (*entity.Agent, error) {
			assert.True(t, agent.Active)
			require.NotNil(t, agent.Phone)
			assert.Equal(t, "+1-555-0101", *agent.Phone)
			stored := *agent
			stored.ID = "agent-sarah"

			return &stored, nil
		})
	fx.seeder.EXPECT().
		UpsertAgent(ctx, mock.MatchedBy(func(agent *entity.Agent) bool {
			return agent.Email == "michael.chen@luxury.com"
		})).
		Return(&entity.Agent{ID: "agent-michael", Name: "Michael Chen"}, nil)
	fx.seeder.EXPECT().
		UpsertAgent(ctx, mock.MatchedBy(func(agent *entity.Agent) bool {
			return agent.Email == "emma.wilson@luxury.com"
		})).
		Return(&entity.Agent{ID: "agent-emma", Name: "Emma Wilson"}, nil)

	fx.seeder.EXPECT().AssociateByCategory(ctx, "agent-sarah", "Fashion").Return(1, nil)
	fx.seeder.EXPECT().AssociateByCategory(ctx, "agent-michael", "Watches").Return(1, nil)
	fx.seeder.EXPECT().AssociateByCategory(ctx, "agent-emma", "Fashion").Return(1, nil)

	report, err := fx.service.Seed(ctx, &usecase.SeedInput{Brands: brands, Agents: DefaultSeedAgents})

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedReport{Brands: 2, Agents: 3, Associations: 3}, report)
}

func TestSeedService_Seed_ZeroMatchesIsFine(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.runInTx(t, ctx)
	fx.seeder.EXPECT().Migrate(ctx).Return(nil)
	fx.seeder.EXPECT().UpsertAgent(ctx, mock.Anything).Return(&entity.Agent{ID: "agent-1"}, nil)
	fx.seeder.EXPECT().AssociateByCategory(ctx, "agent-1", "Perfume").Return(0, nil)

	report, err := fx.service.Seed(ctx, &usecase.SeedInput{
		Agents: []usecase.SeedAgent{{Name: "Ana", Email: "ana@luxury.com", Expertise: "Perfume & Beauty"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Associations)
}

func TestSeedService_Seed_AgentWithoutExpertise(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.runInTx(t, ctx)
	fx.seeder.EXPECT().Migrate(ctx).Return(nil)
	fx.seeder.EXPECT().
		UpsertAgent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, agent *entity.Agent) (*entity.Agent, error) {
			assert.Nil(t, agent.Phone)
			assert.Nil(t, agent.Expertise)

			return &entity.Agent{ID: "agent-1"}, nil
		})

	report, err := fx.service.Seed(ctx, &usecase.SeedInput{
		Agents: []usecase.SeedAgent{{Name: "Ana", Email: "ana@luxury.com"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Agents)
}

func TestSeedService_Seed_MigrateFailure(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.runInTx(t, ctx)
	fx.seeder.EXPECT().Migrate(ctx).Return(errors.New("permission denied"))

	report, err := fx.service.Seed(ctx, &usecase.SeedInput{Brands: []*entity.Brand{{ID: "rolex"}}})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to migrate schema")
}

func TestSeedService_Seed_UpsertBrandFailure(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	brand := &entity.Brand{ID: "rolex", Name: "Rolex"}

	fx.runInTx(t, ctx)
	fx.seeder.EXPECT().Migrate(ctx).Return(nil)
	fx.seeder.EXPECT().UpsertBrand(ctx, brand).Return(errors.New("duplicate key"))

	report, err := fx.service.Seed(ctx, &usecase.SeedInput{Brands: []*entity.Brand{brand}, Agents: DefaultSeedAgents})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "rolex")
}

func TestSeedService_Seed_NilInput(t *testing.T) {
	fx := createTestSeedService(t)

	report, err := fx.service.Seed(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, report)
}
