package cli

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/product-api/internal/config"
	"github.com/Lixing-Zhang/product-api/internal/database"
	"github.com/Lixing-Zhang/product-api/internal/handlers"
	"github.com/Lixing-Zhang/product-api/internal/repository"
)

// store is an opened product repository plus what the server needs around it
type store struct {
	repo  repository.ProductRepository
	check handlers.HealthCheck
	close func() error
}

// openStore builds the repository named by cfg.Database.URL
func openStore(ctx context.Context, cfg config.DatabaseConfig) (*store, error) {
	scheme, err := database.Scheme(cfg.URL)
	if err != nil {
		return nil, err
	}

	if scheme == database.SchemeMemory {
		return &store{
			repo:  repository.NewInMemoryProductRepository(),
			close: func() error { return nil },
		}, nil
	}

	db, err := database.Open(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	return &store{
		repo: repository.NewGormProductRepository(db),
		check: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
		close: func() error { return database.Close(db) },
	}, nil
}
