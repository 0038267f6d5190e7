package workers

import (
	"context"
	"errors"
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

func TestSaveHighScoreWorker(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mocks.Repository)
		wantRank int
		wantErr  bool
	}{
		{
			name: "first score placed",
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(nil, &repositories.ErrNotFound{})
				repo.EXPECT().SaveHighScores(mock.Anything, mock.Anything).Return(nil)
			},
			wantRank: 1,
		},
		{
			name: "repository failure is reported",
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			tt.setup(repo)

			requests := make(chan SaveHighScoreRequest)
			worker := NewSaveHighScoreWorker(NewSaveHighScoreWorkerOptions{
				Repository:        repo,
				SaveHighScoreChan: requests,
			})
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				worker.Start(ctx)
				close(done)
			}()

			responses := make(chan SaveHighScoreResponse, 1)
			requests <- SaveHighScoreRequest{
				Entry: &models.HighScore{
					ID:         uuid.New(),
					Name:       "ACE",
					Score:      1200,
					AchievedAt: time.Now(),
				},
				Response: responses,
			}

			select {
			case response := <-responses:
				assert.Equal(t, tt.wantRank, response.Rank)
				if tt.wantErr {
					assert.Error(t, response.Err)
				} else {
					assert.NoError(t, response.Err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("timed out waiting for the worker")
			}

			cancel()
			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("worker did not stop")
			}
		})
	}
}

func TestSaveHighScoreWorker_StopsWhenChannelCloses(t *testing.T) {
	requests := make(chan SaveHighScoreRequest)
	worker := NewSaveHighScoreWorker(NewSaveHighScoreWorkerOptions{
		Repository:        mocks.NewRepository(t),
		SaveHighScoreChan: requests,
	})
	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()

	close(requests)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "worker did not stop")
	}
}

func TestSaveHighScoreWorker_AnswersRequestWithoutEntry(t *testing.T) {
	requests := make(chan SaveHighScoreRequest)
	worker := NewSaveHighScoreWorker(NewSaveHighScoreWorkerOptions{
		Repository:        mocks.NewRepository(t),
		SaveHighScoreChan: requests,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	responses := make(chan SaveHighScoreResponse, 1)
	requests <- SaveHighScoreRequest{Response: responses}

	select {
	case response := <-responses:
		assert.ErrorIs(t, response.Err, ErrMissingEntry)
		assert.Equal(t, 0, response.Rank)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the worker")
	}
}
