package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	// Serialization failures re-run fn a bounded number of times, so fn must not have side effects
	// outside the repositories it receives.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewSteamUserRepository() SteamUserRepository
	NewSteamGameRepository() SteamGameRepository
	NewOwnedGameRepository() OwnedGameRepository
}
