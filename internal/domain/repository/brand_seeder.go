package repository

import (
	"context"

	"brandhub/internal/domain/entity"
)

// BrandSeeder writes the fixed seed data. It is the only writer of brand and
// agent records and is never reachable from the HTTP API.
type BrandSeeder interface {
	// Migrate creates or updates the brands, agents and agent_brands tables.
	Migrate(ctx context.Context) error

	// UpsertBrand inserts the brand or overwrites the row with the same id.
	UpsertBrand(ctx context.Context, brand *entity.Brand) error

	// UpsertAgent inserts the agent or updates the row with the same email,
	// returning the stored agent (with its persisted id).
	UpsertAgent(ctx context.Context, agent *entity.Agent) (*entity.Agent, error)

	// AssociateByCategory links the agent to every brand whose category contains
	// keyword, ignoring links that already exist. Returns the number of matched brands.
	AssociateByCategory(ctx context.Context, agentID, keyword string) (int, error)
}
