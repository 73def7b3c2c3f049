package repository

import (
	"context"
)

// RepositoryFactory creates repositories bound to a single transaction.
type RepositoryFactory interface {
	NewBrandSeeder() BrandSeeder
}

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// Execute runs fn inside one transaction; any returned error or panic rolls it back.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
