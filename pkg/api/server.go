package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server is the HTTP presenter (L8): exactly one business route plus the
// standard /healthz and /metrics operational routes.
type Server struct {
	log logrus.FieldLogger

	port    int
	handler *Handler

	httpServer *http.Server
}

// NewServer builds a Server listening on port.
func NewServer(log logrus.FieldLogger, port int, handler *Handler) *Server {
	return &Server{
		log:     log.WithField("module", "api/server"),
		port:    port,
		handler: handler,
	}
}

// Start blocks serving HTTP until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	router := httprouter.New()
	s.handler.Register(router)

	// /healthz and /metrics are static paths served outside httprouter:
	// httprouter panics if a static sibling is registered alongside the
	// wildcard :network segment at the same tree level, so the two
	// operational routes are dispatched by a plain mux instead, falling
	// through to the router for everything else.
	mux := http.NewServeMux()
	mux.Handle("/healthz", s.handler.Healthz())
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}

	errCh := make(chan error, 1)

	go func() {
		s.log.WithField("port", s.port).Info("Serving HTTP")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}

		return nil
	}
}
