package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"brandhub/internal/domain/entity"
	"brandhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "brandhub"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("could not start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port.Int(), testUser, testPassword, testDB)
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	return Configure(db, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
}

func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	brands := []*entity.Brand{
		{ID: "rolex", Name: "Rolex", Category: "Watches & Jewelry", Founded: 1905, Headquarters: "Geneva",
			Location: &entity.Location{Lat: 47.37, Lng: 8.54, Address: "Geneva"}},
		{ID: "chanel", Name: "Chanel", Category: "Fashion & Beauty", Founded: 1910, Headquarters: "Paris",
			Location: &entity.Location{Lat: 48.86, Lng: 2.33, Address: "31 Rue Cambon"}},
		{ID: "gucci", Name: "Gucci", Category: "Fashion & Leather Goods", Founded: 1921, Headquarters: "Florence"},
		{ID: "bulgari", Name: "bulgari", Category: "Jewelry", Founded: 1884, Headquarters: "Rome"},
	}

	phone := "+1-555-0101"
	expertise := "Fashion & Leather Goods"

	err := NewTransactionManager(db).Execute(context.Background(), func(f repository.RepositoryFactory) error {
		seeder := f.NewBrandSeeder()
		if err := seeder.Migrate(context.Background()); err != nil {
			return err
		}
		for _, brand := range brands {
			if err := seeder.UpsertBrand(context.Background(), brand); err != nil {
				return err
			}
		}

		agent, err := seeder.UpsertAgent(context.Background(), &entity.Agent{
			Name: "Sarah Johnson", Email: "sarah.johnson@luxury.com", Phone: &phone, Expertise: &expertise, Active: true,
		})
		if err != nil {
			return err
		}
		matched, err := seeder.AssociateByCategory(context.Background(), agent.ID, "Fashion")
		if err != nil {
			return err
		}
		if matched != 2 {
			return fmt.Errorf("expected 2 fashion brands, got %d", matched)
		}

		// Second pass must be a no-op for existing links.
		_, err = seeder.AssociateByCategory(context.Background(), agent.ID, "Fashion")

		return err
	})
	require.NoError(t, err)
}

func TestBrandSource_Postgres(t *testing.T) {
	db := setupTestDB(t)
	seedFixtures(t, db)

	source := NewBrandSource(db)
	ctx := context.Background()

	t.Run("list brands by name", func(t *testing.T) {
		brands, err := source.ListBrands(ctx)
		require.NoError(t, err)
		require.Len(t, brands, 4)

		for i := 1; i < len(brands); i++ {
			assert.LessOrEqual(t, brands[i-1].Name, brands[i].Name)
		}
		assert.Equal(t, "bulgari", brands[3].Name, "byte order puts lowercase last")
	})

	t.Run("find brand by id", func(t *testing.T) {
		brand, err := source.FindBrandByID(ctx, "rolex")
		require.NoError(t, err)
		assert.Equal(t, &entity.Location{Lat: 47.37, Lng: 8.54, Address: "Geneva"}, brand.Location)
		assert.Equal(t, 1905, brand.Founded)

		gucci, err := source.FindBrandByID(ctx, "gucci")
		require.NoError(t, err)
		assert.Nil(t, gucci.Location)
	})

	t.Run("missing brand", func(t *testing.T) {
		brand, err := source.FindBrandByID(ctx, "doesnotexist")
		assert.ErrorIs(t, err, repository.ErrBrandNotFound)
		assert.Nil(t, brand)
	})

	t.Run("agents with brand summaries", func(t *testing.T) {
		agents, err := source.ListAgents(ctx)
		require.NoError(t, err)
		require.Len(t, agents, 1)

		assert.Equal(t, []entity.BrandSummary{
			{ID: "chanel", Name: "Chanel", Category: "Fashion & Beauty"},
			{ID: "gucci", Name: "Gucci", Category: "Fashion & Leather Goods"},
		}, agents[0].Brands)
	})

	t.Run("reseeding keeps agent identity", func(t *testing.T) {
		before, err := source.ListAgents(ctx)
		require.NoError(t, err)

		seedFixtures(t, db)

		after, err := source.ListAgents(ctx)
		require.NoError(t, err)
		require.Len(t, after, 1)
		assert.Equal(t, before[0].ID, after[0].ID)
		assert.Len(t, after[0].Brands, 2)
	})
}
