package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"gopkg.in/yaml.v3"
)

type highScoreFile struct {
	HighScores []*models.HighScore `yaml:"high_scores"`
}

// FileRepository keeps the high score table in a YAML file.
type FileRepository struct {
	path string
	lock sync.Mutex
}

func NewFileRepository(path string) Repository {
	return &FileRepository{
		path: path,
	}
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) LoadHighScores(ctx context.Context) ([]*models.HighScore, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to read high scores: %v", err)
	}

	contents := &highScoreFile{}
	if err := yaml.Unmarshal(data, contents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal high scores: %v", err)
	}
	return contents.HighScores, nil
}

// SaveHighScores writes to a temporary file and renames it over the old one.
func (r *FileRepository) SaveHighScores(ctx context.Context, highScores []*models.HighScore) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	data, err := yaml.Marshal(&highScoreFile{HighScores: highScores})
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %v", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %v", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write high scores: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %v", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace high scores file: %v", err)
	}
	return nil
}
