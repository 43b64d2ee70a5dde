// Package app: 서비스 조립과 수명 주기 관리
package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/kapu/trending-insights-go/internal/adapter"
	"github.com/kapu/trending-insights-go/internal/config"
	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/service/cache"
	"github.com/kapu/trending-insights-go/internal/service/dashboard"
	"github.com/kapu/trending-insights-go/internal/service/resolver"
	"github.com/kapu/trending-insights-go/internal/service/snapshot"
	"github.com/kapu/trending-insights-go/internal/service/trending"
)

// Container: 조립이 끝난 서비스 그래프.
// Close()는 외부 연결을 역순으로 정리한다.
type Container struct {
	Config    *config.Config
	Logger    *slog.Logger
	Cache     *cache.Service
	Provider  *trending.Provider
	Store     *snapshot.Store
	Dashboard *dashboard.Service
}

// Build: 설정으로부터 전체 서비스 그래프를 조립한다.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cacheService, err := cache.NewCacheService(cache.Config{
		Host:     cfg.Valkey.Host,
		Port:     cfg.Valkey.Port,
		Password: cfg.Valkey.Password,
		DB:       cfg.Valkey.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect cache store: %w", err)
	}

	if err := cacheService.WaitUntilReady(ctx, constants.ValkeyConfig.ReadyTimeout); err != nil {
		cacheService.Close()
		return nil, fmt.Errorf("cache store not ready: %w", err)
	}

	provider, err := trending.NewProvider(ctx, cfg.YouTube.APIKey, cacheService, logger)
	if err != nil {
		cacheService.Close()
		return nil, fmt.Errorf("failed to create trending provider: %w", err)
	}

	store := snapshot.NewStore(cacheService.GetClient(), logger)
	formatter := adapter.NewAnswerFormatter()

	dashboardSvc, err := dashboard.NewService(dashboard.Dependencies{
		Provider:  provider,
		Store:     store,
		Resolver:  resolver.New(formatter, logger),
		Formatter: formatter,
		Logger:    logger,
	})
	if err != nil {
		cacheService.Close()
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Cache:     cacheService,
		Provider:  provider,
		Store:     store,
		Dashboard: dashboardSvc,
	}, nil
}

// Close - 컨테이너 리소스 정리 (캐시 연결 해제)
func (c *Container) Close() {
	if c == nil || c.Cache == nil {
		return
	}
	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache store", slog.Any("error", err))
	}
}
