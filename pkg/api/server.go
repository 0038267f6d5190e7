package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/blockfall/pkg/api/handlers"
	"github.com/cbodonnell/blockfall/pkg/api/middleware"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/repositories"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port       int
	TLS        *TLSConfig
	Repository repositories.Repository
	// OriginPatterns lists cross-origin hosts allowed on the live stream.
	OriginPatterns []string
}

// LivePollInterval is how often the live stream checks the table for changes.
var LivePollInterval = 2 * time.Second

// NewRouter returns the leaderboard routes with logging, CORS and gzip applied.
// The live stream is routed around the middleware, which cannot be hijacked.
// It accepts same-origin requests plus hosts matching originPatterns.
func NewRouter(repository repositories.Repository, originPatterns ...string) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.Logging, middleware.CORS)

	router.HandleFunc("/healthz", handlers.HandleHealth()).Methods(http.MethodGet)
	router.HandleFunc("/highscores", handlers.HandleListHighScores(repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/highscores/{rank}", handlers.HandleGetHighScore(repository)).Methods(http.MethodGet, http.MethodOptions)

	root := mux.NewRouter()
	root.HandleFunc("/highscores/live", handlers.HandleLiveHighScores(repository, LivePollInterval, originPatterns)).Methods(http.MethodGet)
	root.PathPrefix("/").Handler(gzhttp.GzipHandler(router))
	return root
}

// NewAPIServer creates a new http.Server for serving the high score table
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Repository, opts.OriginPatterns...),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
