// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"magichat/config"
	"magichat/internal/domain/repository"
	"magichat/internal/errors"

	"gorm.io/gorm"
)

// maxTransactionAttempts bounds how often a transaction is re-run after a serialization failure.
const maxTransactionAttempts = 3

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db        *gorm.DB
	logger    *slog.Logger
	txOptions *sql.TxOptions
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewSteamUserRepository() repository.SteamUserRepository {
	return NewSteamUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSteamGameRepository() repository.SteamGameRepository {
	return NewSteamGameRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOwnedGameRepository() repository.OwnedGameRepository {
	return NewOwnedGameRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config, logger *slog.Logger) (repository.TransactionManager, error) {
	var level string
	if cfg != nil && cfg.Database != nil {
		level = cfg.Database.IsolationLevel
	}

	txOptions, err := parseIsolationLevel(level)
	if err != nil {
		return nil, err
	}

	return &gormTransactionManager{
		db:        db,
		logger:    logger,
		txOptions: txOptions,
	}, nil
}

// Execute runs the given function within a single database transaction,
// re-running it when the database reports a serialization failure.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 1; attempt <= maxTransactionAttempts; attempt++ {
		err = tm.execute(ctx, fn)
		if err == nil || !isSerializationFailure(err) || ctx.Err() != nil {
			return err
		}

		if tm.logger != nil {
			tm.logger.WarnContext(ctx, "Retrying transaction after serialization failure",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
		}
	}

	return err
}

func (tm *gormTransactionManager) execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var tx *gorm.DB
	if tm.txOptions != nil {
		tx = tm.db.WithContext(ctx).Begin(tm.txOptions)
	} else {
		tx = tm.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then let the panic continue up the stack.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func parseIsolationLevel(level string) (*sql.TxOptions, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "default":
		return nil, nil
	case "read_committed":
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}, nil
	case "repeatable_read":
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead}, nil
	case "serializable":
		return &sql.TxOptions{Isolation: sql.LevelSerializable}, nil
	default:
		return nil, errors.Errorf("unknown transaction isolation level: %s", level)
	}
}
