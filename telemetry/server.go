package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server serves a hub over HTTP on a background goroutine
type Server struct {
	log    *zap.Logger
	http   *http.Server
	ln     net.Listener
	cancel context.CancelFunc
	done   chan struct{}
}

// Start binds addr and begins serving hub; the hub's Run loop is started too
func Start(ctx context.Context, log *zap.Logger, addr string, hub *Hub) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	s := &Server{
		log: log,
		http: &http.Server{
			Handler:           hub.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:     ln,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go hub.Run(runCtx)
	go func() {
		defer close(s.done)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("telemetry server stopped", zap.Error(err))
		}
	}()
	log.Info("telemetry listening", zap.String("addr", ln.Addr().String()))
	return s, nil
}

// Addr returns the bound address, useful when listening on port 0
func (s *Server) Addr() string { return s.ln.Addr().String() }

// Shutdown stops accepting connections and ends the hub
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	err := s.http.Shutdown(ctx)
	<-s.done
	return err
}
