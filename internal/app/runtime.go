package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/kapu/trending-insights-go/internal/config"
	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/server"
)

// Runtime 는 타입이다.
type Runtime struct {
	Config *config.Config
	Logger *slog.Logger

	Container  *Container
	APIHandler *server.APIHandler
	Router     *gin.Engine
	Addr       string
	Server     *http.Server
}

// Close - 런타임 리소스 정리 (캐시 연결 해제)
func (r *Runtime) Close() {
	if r != nil && r.Container != nil {
		r.Container.Close()
	}
}

// BuildRuntime 는 동작을 수행한다.
func BuildRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	container, err := Build(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("런타임 초기화 실패: %w", err)
	}

	apiHandler := server.NewAPIHandler(container.Dashboard, cfg, logger)

	router, err := ProvideRouter(ctx, cfg, logger, apiHandler, container.Cache)
	if err != nil {
		container.Close()
		return nil, fmt.Errorf("라우터 초기화 실패: %w", err)
	}

	addr := ProvideAddr(cfg)

	return &Runtime{
		Config:     cfg,
		Logger:     logger,
		Container:  container,
		APIHandler: apiHandler,
		Router:     router,
		Addr:       addr,
		Server:     ProvideServer(addr, router),
	}, nil
}

// StartServer 는 동작을 수행한다.
func (r *Runtime) StartServer(errCh chan<- error) {
	if r == nil || r.Server == nil {
		return
	}

	go func() {
		if err := r.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if errCh != nil {
				errCh <- fmt.Errorf("HTTP server error: %w", err)
				return
			}
			if r.Logger != nil {
				r.Logger.Error("HTTP server error", slog.Any("error", err))
			}
		}
	}()
}

// ShutdownServer 는 동작을 수행한다.
func (r *Runtime) ShutdownServer(ctx context.Context) error {
	if r == nil || r.Server == nil {
		return nil
	}
	if err := r.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return nil
}

// Run 는 동작을 수행한다.
func (r *Runtime) Run() {
	if r == nil {
		return
	}

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	r.StartServer(errCh)
	if r.Logger != nil {
		r.Logger.Info("HTTP server started, waiting for signals...", slog.String("addr", r.Addr))
	}

	select {
	case sig := <-sigCh:
		if r.Logger != nil {
			r.Logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		}
	case err := <-errCh:
		if r.Logger != nil {
			r.Logger.Error("Server error", slog.Any("error", err))
		}
	}

	if r.Logger != nil {
		r.Logger.Info("Shutting down gracefully...")
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ServerTimeout.Shutdown)
	defer shutdownCancel()

	if err := r.ShutdownServer(shutdownCtx); err != nil {
		if r.Logger != nil {
			r.Logger.Error("HTTP server shutdown error", slog.Any("error", err))
		}
	}

	if r.Logger != nil {
		r.Logger.Info("Shutdown complete")
	}
}
