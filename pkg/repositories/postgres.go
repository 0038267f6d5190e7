package repositories

import (
	"context"
	"fmt"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and migrates it.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := runMigrations(ctx, db, "postgres", "migrations/postgres"); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) LoadHighScores(ctx context.Context) ([]*models.HighScore, error) {
	q := `
	SELECT id, name, score, level, lines, achieved_at FROM high_scores ORDER BY position;
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %v", err)
	}
	defer rows.Close()

	var highScores []*models.HighScore
	for rows.Next() {
		highScore := &models.HighScore{}
		var score int64
		var level, lines int32
		if err := rows.Scan(&highScore.ID, &highScore.Name, &score, &level, &lines, &highScore.AchievedAt); err != nil {
			return nil, fmt.Errorf("failed to scan high score: %v", err)
		}
		highScore.Score = uint64(score)
		highScore.Level = uint32(level)
		highScore.Lines = uint32(lines)
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

func (r *PostgresRepository) SaveHighScores(ctx context.Context, highScores []*models.HighScore) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM high_scores;"); err != nil {
		return fmt.Errorf("failed to clear high scores: %v", err)
	}

	batch := &pgx.Batch{}
	q := `
	INSERT INTO high_scores (id, position, name, score, level, lines, achieved_at) VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, highScore := range highScores {
		batch.Queue(q, highScore.ID, i, highScore.Name, int64(highScore.Score), int32(highScore.Level), int32(highScore.Lines), highScore.AchievedAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert high scores: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}
