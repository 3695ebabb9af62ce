package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"estateadmin/console/internal/config"
	"estateadmin/console/internal/handlers"
	"estateadmin/console/internal/middleware"
	"estateadmin/console/internal/session"
	"estateadmin/console/internal/web"
)

// formOverhead is what a property form carries besides its images.
const formOverhead = 1 << 20

// Sessions is what the session and CSRF middleware need.
type Sessions struct {
	Jar      *session.CookieJar
	Hydrator middleware.Hydrator
	CSRFKey  []byte
}

type HTTPServer struct {
	engine *gin.Engine
	server *http.Server
	log    zerolog.Logger
	cfg    *config.AppConfig
}

func NewHTTPServer(cfg *config.AppConfig, log zerolog.Logger, handlerSet handlers.HandlerSet, sessions Sessions) (*HTTPServer, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	engine := gin.New()
	engine.RedirectTrailingSlash = true
	engine.RedirectFixedPath = true
	engine.SetHTMLTemplate(tmpl)

	engine.Use(
		middleware.RequestID(log),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.SecureHeaders(),
		middleware.Metrics(),
		middleware.BodyLimit(cfg.Uploads.MaxBytes*int64(cfg.Uploads.MaxFiles)+formOverhead),
		middleware.Session(sessions.Jar, sessions.Hydrator, log),
		middleware.Guard(),
		middleware.CSRF(sessions.CSRFKey),
	)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.StaticFS("/static", web.Static())
	handlerSet.Register(&engine.RouterGroup)
	engine.NoRoute(handlerSet.NoRoute)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &HTTPServer{
		engine: engine,
		server: srv,
		log:    log,
		cfg:    cfg,
	}, nil
}

// Handler exposes the router for in-process tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) Start() error {
	s.log.Info().
		Str("addr", s.server.Addr).
		Msg("http server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.server.Shutdown(ctx)
}
