package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"nhooyr.io/websocket"
)

// HandleLiveHighScores streams the ranked table over a websocket. The table is
// sent on connect and again after every poll that finds it changed.
// Cross-origin clients are rejected unless their host matches originPatterns.
func HandleLiveHighScores(repository repositories.Repository, pollInterval time.Duration, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			log.Error("Failed to accept websocket from %s: %v", r.RemoteAddr, err)
			return
		}
		defer conn.Close(websocket.StatusInternalError, "")
		log.Debug("Live high score subscriber connected from %s", r.RemoteAddr)

		// the subscriber never sends, reading only watches for its close
		ctx := conn.CloseRead(r.Context())
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		var last []byte
		for {
			highScores, err := loadHighScores(ctx, repository)
			if err != nil {
				log.Error("failed to load high scores: %v", err)
				conn.Close(websocket.StatusInternalError, "failed to load high scores")
				return
			}
			b, err := json.Marshal(rank(highScores))
			if err != nil {
				log.Error("failed to encode high scores: %v", err)
				conn.Close(websocket.StatusInternalError, "failed to encode high scores")
				return
			}
			if !bytes.Equal(b, last) {
				if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
					log.Debug("Live high score subscriber %s gone: %v", r.RemoteAddr, err)
					return
				}
				last = b
			}

			select {
			case <-ctx.Done():
				log.Debug("Live high score subscriber %s disconnected", r.RemoteAddr)
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case <-ticker.C:
			}
		}
	}
}
