package highscores

import (
	"context"
	"fmt"
	"sort"

	"github.com/cbodonnell/blockfall/pkg/game/constants"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
)

// MaxEntries is the size of the high score table.
const MaxEntries = constants.HighScoreEntries

// ranksAbove reports whether a belongs before b: higher score first, then the earlier run.
func ranksAbove(a, b *models.HighScore) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.AchievedAt.Before(b.AchievedAt)
}

// Sort orders list best first.
func Sort(list []*models.HighScore) {
	sort.SliceStable(list, func(i, j int) bool {
		return ranksAbove(list[i], list[j])
	})
}

// Qualifies reports whether score would earn a place in list.
func Qualifies(list []*models.HighScore, score uint64) bool {
	if score == 0 {
		return false
	}
	if len(list) < MaxEntries {
		return true
	}
	lowest := list[0]
	for _, entry := range list[1:] {
		if ranksAbove(lowest, entry) {
			lowest = entry
		}
	}
	return score > lowest.Score
}

// Insert returns a new table with entry placed and truncated to MaxEntries,
// and the 1-based rank of entry. The rank is 0 when entry did not place,
// in which case the table is returned unchanged.
func Insert(list []*models.HighScore, entry *models.HighScore) ([]*models.HighScore, int) {
	if !Qualifies(list, entry.Score) {
		return list, 0
	}

	updated := make([]*models.HighScore, 0, len(list)+1)
	updated = append(updated, list...)
	updated = append(updated, entry)
	Sort(updated)
	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}

	for i, e := range updated {
		if e == entry {
			return updated, i + 1
		}
	}
	return list, 0
}

// Record adds entry to the table stored in repo and returns its rank.
// The table is only written when the entry places.
func Record(ctx context.Context, repo repositories.Repository, entry *models.HighScore) (int, error) {
	list, err := repo.LoadHighScores(ctx)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return 0, fmt.Errorf("failed to load high scores: %v", err)
		}
		list = nil
	}

	updated, rank := Insert(list, entry)
	if rank == 0 {
		return 0, nil
	}
	if err := repo.SaveHighScores(ctx, updated); err != nil {
		return 0, fmt.Errorf("failed to save high scores: %v", err)
	}
	return rank, nil
}
