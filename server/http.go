package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// New builds the HTTP server; Run blocks until the context is cancelled,
// then drains in-flight requests before returning.
func New(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    net.JoinHostPort(host, fmt.Sprintf("%d", port)),
		Handler: handler,
	}
}

func Run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
