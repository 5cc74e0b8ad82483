package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gummi-coder/Novora-sub009/pkg/log"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	s      *http.Server
	logger log.StdLogger
}

func NewServer(host string, port uint32, logger log.StdLogger) *Server {
	return &Server{
		s: &http.Server{
			ReadTimeout:  time.Second * 30,
			WriteTimeout: time.Second * 30,
			Addr:         net.JoinHostPort(host, fmt.Sprint(port)),
		},
		logger: logger,
	}
}

func (s *Server) SetHandler(handler http.Handler) {
	s.s.Handler = handler
}

func (s *Server) Addr() string {
	return s.s.Addr
}

// Listen serves until ctx is done, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		err := s.s.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server exiting")
	return nil
}
