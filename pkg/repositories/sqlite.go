package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and migrates it.
// The caller is responsible for calling Close() on the repository.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := runMigrations(ctx, db, "sqlite3", "migrations/sqlite"); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadHighScores(ctx context.Context) ([]*models.HighScore, error) {
	q := `
	SELECT id, name, score, level, lines, achieved_at FROM high_scores ORDER BY position;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %v", err)
	}
	defer rows.Close()

	var highScores []*models.HighScore
	for rows.Next() {
		highScore := &models.HighScore{}
		var score int64
		if err := rows.Scan(&highScore.ID, &highScore.Name, &score, &highScore.Level, &highScore.Lines, &highScore.AchievedAt); err != nil {
			return nil, fmt.Errorf("failed to scan high score: %v", err)
		}
		highScore.Score = uint64(score)
		highScores = append(highScores, highScore)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read high scores: %v", err)
	}

	if len(highScores) == 0 {
		return nil, &ErrNotFound{}
	}
	return highScores, nil
}

func (r *SQLiteRepository) SaveHighScores(ctx context.Context, highScores []*models.HighScore) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM high_scores;"); err != nil {
		return fmt.Errorf("failed to clear high scores: %v", err)
	}

	q := `
	INSERT INTO high_scores (id, position, name, score, level, lines, achieved_at) VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	for i, highScore := range highScores {
		_, err := tx.ExecContext(ctx, q, highScore.ID.String(), i, highScore.Name, int64(highScore.Score), highScore.Level, highScore.Lines, highScore.AchievedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert high score: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}
