package models

import (
	"time"

	"github.com/google/uuid"
)

// HighScore is one finished run in the high score table.
type HighScore struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Score      uint64    `json:"score" yaml:"score"`
	Level      uint32    `json:"level" yaml:"level"`
	Lines      uint32    `json:"lines" yaml:"lines"`
	AchievedAt time.Time `json:"achieved_at" yaml:"achieved_at"`
}
