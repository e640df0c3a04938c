package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions. This lets the use case layer group operations atomically
// without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the
	// function returns an error, the transaction is rolled back;
	// otherwise it is committed. All repository operations obtained from
	// the factory use the same transaction.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// StoryRepo returns a StoryRepository bound to the current transaction.
	StoryRepo() StoryRepository
}
