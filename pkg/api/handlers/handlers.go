package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/gorilla/mux"
)

// RankedHighScore is a table entry with its 1-based position.
type RankedHighScore struct {
	Rank int `json:"rank"`
	*models.HighScore
}

func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func HandleListHighScores(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highScores, err := loadHighScores(r.Context(), repository)
		if err != nil {
			log.Error("failed to load high scores: %v", err)
			http.Error(w, "Failed to load high scores", http.StatusInternalServerError)
			return
		}
		writeJSON(w, rank(highScores))
	}
}

func HandleGetHighScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rank, err := strconv.Atoi(mux.Vars(r)["rank"])
		if err != nil || rank < 1 {
			http.Error(w, "Rank must be a positive number", http.StatusBadRequest)
			return
		}

		highScores, err := loadHighScores(r.Context(), repository)
		if err != nil {
			log.Error("failed to load high scores: %v", err)
			http.Error(w, "Failed to load high scores", http.StatusInternalServerError)
			return
		}
		if rank > len(highScores) {
			http.Error(w, "High score not found", http.StatusNotFound)
			return
		}
		writeJSON(w, RankedHighScore{Rank: rank, HighScore: highScores[rank-1]})
	}
}

func rank(highScores []*models.HighScore) []RankedHighScore {
	ranked := make([]RankedHighScore, 0, len(highScores))
	for i, highScore := range highScores {
		ranked = append(ranked, RankedHighScore{Rank: i + 1, HighScore: highScore})
	}
	return ranked
}

// loadHighScores treats a table that was never saved as empty.
func loadHighScores(ctx context.Context, repository repositories.Repository) ([]*models.HighScore, error) {
	highScores, err := repository.LoadHighScores(ctx)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return highScores, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
