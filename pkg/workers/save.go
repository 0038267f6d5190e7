package workers

import (
	"context"
	"errors"

	"github.com/cbodonnell/blockfall/pkg/highscores"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
)

// ErrMissingEntry is reported for a request that carries no high score.
var ErrMissingEntry = errors.New("high score request has no entry")

type SaveHighScoreWorker struct {
	repository        repositories.Repository
	saveHighScoreChan <-chan SaveHighScoreRequest
}

type NewSaveHighScoreWorkerOptions struct {
	Repository        repositories.Repository
	SaveHighScoreChan <-chan SaveHighScoreRequest
}

// SaveHighScoreRequest asks the worker to record a finished run.
// Response is optional and must be buffered, the worker never waits on it.
type SaveHighScoreRequest struct {
	Entry    *models.HighScore
	Response chan<- SaveHighScoreResponse
}

type SaveHighScoreResponse struct {
	// Rank is the 1-based table position, 0 when the run did not place.
	Rank int
	Err  error
}

// NewSaveHighScoreWorker creates a new SaveHighScoreWorker.
// The worker processes save requests from the game loop so that
// persistence never blocks a frame.
func NewSaveHighScoreWorker(opts NewSaveHighScoreWorkerOptions) *SaveHighScoreWorker {
	return &SaveHighScoreWorker{
		repository:        opts.Repository,
		saveHighScoreChan: opts.SaveHighScoreChan,
	}
}

// Start handles requests until ctx is done or the channel is closed.
func (w *SaveHighScoreWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case saveRequest, ok := <-w.saveHighScoreChan:
			if !ok {
				return
			}
			w.saveHighScore(ctx, saveRequest)
		}
	}
}

func (w *SaveHighScoreWorker) saveHighScore(ctx context.Context, saveRequest SaveHighScoreRequest) {
	if saveRequest.Entry == nil {
		log.Error("Received high score request without an entry")
		respond(saveRequest.Response, SaveHighScoreResponse{Err: ErrMissingEntry}, "an empty request")
		return
	}

	response := SaveHighScoreResponse{}

	rank, err := highscores.Record(ctx, w.repository, saveRequest.Entry)
	if err != nil {
		log.Error("Failed to save high score for %s: %v", saveRequest.Entry.Name, err)
		response.Err = err
	} else if rank > 0 {
		log.Info("%s placed #%d with %d points", saveRequest.Entry.Name, rank, saveRequest.Entry.Score)
	} else {
		log.Debug("%s did not place with %d points", saveRequest.Entry.Name, saveRequest.Entry.Score)
	}
	response.Rank = rank
	respond(saveRequest.Response, response, saveRequest.Entry.Name)
}

// respond delivers response without waiting. A nil channel is skipped.
func respond(ch chan<- SaveHighScoreResponse, response SaveHighScoreResponse, name string) {
	if ch == nil {
		return
	}
	select {
	case ch <- response:
	default:
		log.Warn("Dropping high score response for %s", name)
	}
}
