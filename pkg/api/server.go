package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/corebreaker/pkg/api/handlers"
	"github.com/cbodonnell/corebreaker/pkg/api/middleware"
	"github.com/cbodonnell/corebreaker/pkg/log"
	"github.com/cbodonnell/corebreaker/pkg/sessions"
	"github.com/gorilla/mux"
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
	Port int
	TLS  *TLSConfig
	// AllowOrigin defaults to "*"
	AllowOrigin    string
	SessionManager *sessions.SessionManager
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter registers the session and help routes.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	allowOrigin := opts.AllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	sm := opts.SessionManager

	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(), middleware.NewCORSMiddleware(allowOrigin))

	r.HandleFunc("/help", handlers.HandleHelp()).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/sessions", handlers.HandleCreateSession(sm)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/sessions/{sessionID}", handlers.HandleGetSession(sm)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/sessions/{sessionID}", handlers.HandleDeleteSession(sm)).Methods(http.MethodDelete)
	r.HandleFunc("/sessions/{sessionID}/commands", handlers.HandleCommand(sm)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/sessions/{sessionID}/ws", handlers.HandleCommandStream(sm)).Methods(http.MethodGet, http.MethodOptions)

	return r
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
