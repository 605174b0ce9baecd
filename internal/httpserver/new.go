package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"consulate-console/internal/catalog"
	"consulate-console/internal/middleware"
	"consulate-console/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Resource catalog wiring
	deps catalog.Deps
	mw   middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Deps       catalog.Deps
	Middleware middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		deps:        cfg.Deps,
		mw:          cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.deps.Client == nil {
		return errors.New("backend client is required")
	}
	if srv.deps.Store == nil {
		return errors.New("query store is required")
	}
	if srv.deps.Validator == nil {
		return errors.New("schema validator is required")
	}
	return nil
}
