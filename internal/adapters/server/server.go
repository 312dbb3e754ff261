package server

import (
	"context"
	"errors"
	"fmt"
	"imgadjust/internal/adapters/handler"
	"imgadjust/internal/core/domain"
	"imgadjust/internal/core/port"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Address is the fixed loopback listen address.
const Address = "127.0.0.1:8080"

const readHeaderTimeout = 10 * time.Second

type Server struct {
	addr            string
	router          chi.Router
	shutdownTimeout time.Duration
}

func New(adjuster port.Adjuster, corsOrigins []string, shutdownTimeout time.Duration) *Server {
	s := &Server{
		addr:            Address,
		shutdownTimeout: shutdownTimeout,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Method(http.MethodGet, "/image", handler.NewImage(adjuster))

	s.router = r

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run binds the fixed address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%w: listen on %s: %w", domain.ErrStartupFailed, s.addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", ln.Addr().String()).Msg("listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
