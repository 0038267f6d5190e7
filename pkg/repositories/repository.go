package repositories

import (
	"context"
	"fmt"

	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
)

// Repository stores the high score table.
type Repository interface {
	Close(ctx context.Context) error
	// LoadHighScores returns the table ordered best first.
	// It returns ErrNotFound when nothing has been saved yet.
	LoadHighScores(ctx context.Context) ([]*models.HighScore, error)
	// SaveHighScores replaces the stored table with highScores.
	SaveHighScores(ctx context.Context, highScores []*models.HighScore) error
}

// NewRepository opens the repository selected by cfg.Driver.
func NewRepository(ctx context.Context, cfg config.StorageConfig) (Repository, error) {
	switch cfg.Driver {
	case config.StorageDriverFile:
		return NewFileRepository(cfg.Path), nil
	case config.StorageDriverSQLite:
		return NewSQLiteRepository(ctx, cfg.Path)
	case config.StorageDriverPostgres:
		return NewPostgresRepository(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
