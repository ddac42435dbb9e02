// Package database selects and assembles the storage backend: a gorm
// connection for sqlite/mysql/postgres, or the hosted Supabase PostgREST
// API. Everything above this package sees only the repository interfaces.
package database

import (
	"context"
	"fmt"

	"github.com/aryadee/smart-bank/internal/config"
	"github.com/aryadee/smart-bank/internal/model"
	"github.com/aryadee/smart-bank/internal/repository"
	"github.com/aryadee/smart-bank/internal/repository/supabase"
	pkgdatabase "github.com/aryadee/smart-bank/pkg/database"
	"github.com/aryadee/smart-bank/pkg/httpclient"
	"github.com/aryadee/smart-bank/pkg/postgrest"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Storage bundles the selected backend's repositories. DB is nil when
// the backend is not gorm-based.
type Storage struct {
	Accounts     repository.AccountRepository
	Transactions repository.TransactionRepository
	TxManager    repository.TxManager
	DB           *gorm.DB
}

func NewStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	switch cfg.Storage.Mode {
	case config.StorageModeGorm:
		return newGormStorage(ctx, cfg, logger)
	case config.StorageModeSupabase:
		return newSupabaseStorage(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.Storage.Mode)
	}
}

func newGormStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	db, err := pkgdatabase.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Account{}, &model.Transaction{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Storage ready", zap.String("mode", config.StorageModeGorm),
		zap.String("driver", cfg.Database.Driver))

	return &Storage{
		Accounts:     repository.NewAccountRepository(db),
		Transactions: repository.NewTransactionRepository(db),
		TxManager:    repository.NewTransactionManager(db),
		DB:           db,
	}, nil
}

func newSupabaseStorage(cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	client, err := postgrest.NewClient(cfg.Supabase, httpclient.NewHTTPClient(cfg.Supabase.Timeout))
	if err != nil {
		return nil, err
	}

	logger.Info("Storage ready", zap.String("mode", config.StorageModeSupabase))

	return &Storage{
		Accounts:     supabase.NewAccountRepository(client),
		Transactions: supabase.NewTransactionRepository(client),
		TxManager:    repository.NewNoopTxManager(),
	}, nil
}

// Close releases the underlying connection pool if the backend has one.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
