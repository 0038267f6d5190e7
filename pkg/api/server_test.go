package api

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mocks "github.com/cbodonnell/blockfall/mocks/github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/api/handlers"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/cbodonnell/blockfall/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func testTable() []*models.HighScore {
	return []*models.HighScore{
		{ID: uuid.New(), Name: "ACE", Score: 3600, Level: 2, Lines: 24, AchievedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Name: "BOB", Score: 40, Level: 0, Lines: 1, AchievedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
	}
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(repo *mocks.Repository)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/healthz",
			setup:      func(repo *mocks.Repository) {},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/highscores",
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(testTable(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"ACE"`,
		},
		{
			name:   "list before any save",
			method: http.MethodGet,
			path:   "/highscores",
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(nil, &repositories.ErrNotFound{})
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]",
		},
		{
			name:   "list fails",
			method: http.MethodGet,
			path:   "/highscores",
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "by rank",
			method: http.MethodGet,
			path:   "/highscores/2",
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(testTable(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"rank":2`,
		},
		{
			name:   "rank past the end",
			method: http.MethodGet,
			path:   "/highscores/3",
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(testTable(), nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed rank",
			method:     http.MethodGet,
			path:       "/highscores/first",
			setup:      func(repo *mocks.Repository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero rank",
			method:     http.MethodGet,
			path:       "/highscores/0",
			setup:      func(repo *mocks.Repository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "preflight",
			method:     http.MethodOptions,
			path:       "/highscores",
			setup:      func(repo *mocks.Repository) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "read only",
			method:     http.MethodPost,
			path:       "/highscores",
			setup:      func(repo *mocks.Repository) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			tt.setup(repo)

			recorder := httptest.NewRecorder()
			NewRouter(repo).ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_ListIsRanked(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().LoadHighScores(mock.Anything).Return(testTable(), nil)

	recorder := httptest.NewRecorder()
	NewRouter(repo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/highscores", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))

	var got []handlers.RankedHighScore
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "ACE", got[0].Name)
	assert.Equal(t, uint64(3600), got[0].Score)
	assert.Equal(t, 2, got[1].Rank)
}

func TestRouter_Gzip(t *testing.T) {
	table := testTable()
	// pad the table past the compression threshold
	for i := 0; i < 8; i++ {
		table = append(table, &models.HighScore{ID: uuid.New(), Name: strings.Repeat("Z", 32), Score: 1})
	}
	repo := mocks.NewRepository(t)
	repo.EXPECT().LoadHighScores(mock.Anything).Return(table, nil)

	request := httptest.NewRequest(http.MethodGet, "/highscores", nil)
	request.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()
	NewRouter(repo).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))
	reader, err := gzip.NewReader(recorder.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"name":"ACE"`)
}

func TestRouter_LiveHighScores(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().LoadHighScores(mock.Anything).Return(testTable(), nil)

	server := httptest.NewServer(NewRouter(repo))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http")+"/highscores/live", nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	typ, b, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)

	var got []handlers.RankedHighScore
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "ACE", got[0].Name)
}

func TestRouter_LiveHighScoresOrigin(t *testing.T) {
	tests := []struct {
		name           string
		originPatterns []string
		origin         string
		wantErr        bool
	}{
		{name: "no origin header", origin: ""},
		{name: "cross origin rejected", origin: "http://scores.example.com", wantErr: true},
		{name: "cross origin allowed by pattern", originPatterns: []string{"*.example.com"}, origin: "http://scores.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			if !tt.wantErr {
				repo.EXPECT().LoadHighScores(mock.Anything).Return(testTable(), nil)
			}

			server := httptest.NewServer(NewRouter(repo, tt.originPatterns...))
			defer server.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			conn, resp, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http")+"/highscores/live", &websocket.DialOptions{
				HTTPHeader: header,
			})
			if tt.wantErr {
				require.Error(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, http.StatusForbidden, resp.StatusCode)
				return
			}
			require.NoError(t, err)
			defer conn.Close(websocket.StatusNormalClosure, "")

			_, _, err = conn.Read(ctx)
			assert.NoError(t, err)
		})
	}
}
