package highscores

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	mocks "github.com/cbodonnell/blockfall/mocks/github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func entry(name string, score uint64, minute int) *models.HighScore {
	return &models.HighScore{
		ID:         uuid.New(),
		Name:       name,
		Score:      score,
		AchievedAt: epoch.Add(time.Duration(minute) * time.Minute),
	}
}

// fullTable returns MaxEntries entries scoring 1000, 900, ..., 100.
func fullTable() []*models.HighScore {
	list := make([]*models.HighScore, 0, MaxEntries)
	for i := 0; i < MaxEntries; i++ {
		list = append(list, entry(fmt.Sprintf("P%d", i), uint64(1000-100*i), i))
	}
	return list
}

func names(list []*models.HighScore) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Name
	}
	return out
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name  string
		list  []*models.HighScore
		score uint64
		want  bool
	}{
		{name: "empty table", list: nil, score: 1, want: true},
		{name: "zero score", list: nil, score: 0, want: false},
		{name: "room left", list: fullTable()[:9], score: 1, want: true},
		{name: "beats the lowest", list: fullTable(), score: 101, want: true},
		{name: "ties the lowest", list: fullTable(), score: 100, want: false},
		{name: "below the lowest", list: fullTable(), score: 50, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Qualifies(tt.list, tt.score))
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name      string
		list      []*models.HighScore
		entry     *models.HighScore
		wantRank  int
		wantNames []string
	}{
		{
			name:      "first entry",
			list:      nil,
			entry:     entry("NEW", 40, 100),
			wantRank:  1,
			wantNames: []string{"NEW"},
		},
		{
			name:      "tie goes to the earlier run",
			list:      []*models.HighScore{entry("OLD", 500, 0)},
			entry:     entry("NEW", 500, 100),
			wantRank:  2,
			wantNames: []string{"OLD", "NEW"},
		},
		{
			name:      "top of a full table drops the lowest",
			list:      fullTable(),
			entry:     entry("NEW", 5000, 100),
			wantRank:  1,
			wantNames: []string{"NEW", "P0", "P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"},
		},
		{
			name:      "middle of a full table",
			list:      fullTable(),
			entry:     entry("NEW", 650, 100),
			wantRank:  5,
			wantNames: []string{"P0", "P1", "P2", "P3", "NEW", "P4", "P5", "P6", "P7", "P8"},
		},
		{
			name:      "does not place",
			list:      fullTable(),
			entry:     entry("NEW", 100, 100),
			wantRank:  0,
			wantNames: []string{"P0", "P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8", "P9"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := names(tt.list)
			updated, rank := Insert(tt.list, tt.entry)
			assert.Equal(t, tt.wantRank, rank)
			assert.Equal(t, tt.wantNames, names(updated))
			assert.LessOrEqual(t, len(updated), MaxEntries)
			assert.Equal(t, before, names(tt.list), "input must not be modified")
		})
	}
}

func TestSort(t *testing.T) {
	list := []*models.HighScore{entry("C", 10, 2), entry("A", 30, 5), entry("B", 10, 1)}
	Sort(list)
	assert.Equal(t, []string{"A", "B", "C"}, names(list))
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("empty repository", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		e := entry("NEW", 40, 0)
		repo.EXPECT().LoadHighScores(ctx).Return(nil, &repositories.ErrNotFound{})
		repo.EXPECT().SaveHighScores(ctx, []*models.HighScore{e}).Return(nil)

		rank, err := Record(ctx, repo, e)
		require.NoError(t, err)
		assert.Equal(t, 1, rank)
	})

	t.Run("entry does not place", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.EXPECT().LoadHighScores(ctx).Return(fullTable(), nil)

		rank, err := Record(ctx, repo, entry("NEW", 10, 100))
		require.NoError(t, err)
		assert.Equal(t, 0, rank)
		repo.AssertNotCalled(t, "SaveHighScores", mock.Anything, mock.Anything)
	})

	t.Run("load error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.EXPECT().LoadHighScores(ctx).Return(nil, errors.New("disk on fire"))

		rank, err := Record(ctx, repo, entry("NEW", 10, 100))
		assert.Error(t, err)
		assert.Equal(t, 0, rank)
	})

	t.Run("save error", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.EXPECT().LoadHighScores(ctx).Return(nil, nil)
		repo.EXPECT().SaveHighScores(ctx, mock.Anything).Return(errors.New("read only"))

		rank, err := Record(ctx, repo, entry("NEW", 10, 100))
		assert.Error(t, err)
		assert.Equal(t, 0, rank)
	})
}
