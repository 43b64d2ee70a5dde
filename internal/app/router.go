package app

import (
	"context"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/kapu/trending-insights-go/internal/config"
	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/server"
)

// ProvideAddr: HTTP 서버가 리슨할 주소를 반환합니다.
func ProvideAddr(cfg *config.Config) string {
	return fmt.Sprintf(":%d", cfg.Server.Port)
}

// ProvideServer: HTTP 서버 인스턴스를 생성합니다.
// H2C(HTTP/2 Cleartext)를 기본으로 사용하여 멀티플렉싱과 헤더 압축 이점을 제공한다.
func ProvideServer(addr string, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           server.WrapH2C(router),
		ReadHeaderTimeout: constants.ServerTimeout.ReadHeader,
		ReadTimeout:       constants.ServerTimeout.Read,
		WriteTimeout:      constants.ServerTimeout.Write,
		IdleTimeout:       constants.ServerTimeout.Idle,
		MaxHeaderBytes:    constants.ServerTimeout.MaxHeaderBytes,
	}
}

// ProvideRouter: 대시보드 API를 서빙하는 Gin 라우터를 설정합니다.
func ProvideRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger, apiHandler *server.APIHandler, cacheChecker server.ConnChecker) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	if err := router.SetTrustedProxies(constants.ServerConfig.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	router.Use(gin.Recovery())
	router.Use(server.LoggerMiddleware(ctx, logger, "/health"))
	router.Use(cors.New(newCORSConfig(cfg)))
	router.Use(newGzipMiddleware())

	router.GET("/health", server.HealthHandler(cacheChecker))

	registerAPIRoutes(router, apiHandler)

	return router, nil
}

func newCORSConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return corsConfig
}

func newGzipMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithCustomShouldCompressFn(func(c *gin.Context) bool {
		// Health check 응답은 작아서 압축 제외
		return c.Request.URL.Path != "/health"
	}))
}

func registerAPIRoutes(router *gin.Engine, apiHandler *server.APIHandler) {
	api := router.Group("/api")

	api.GET("/trending", apiHandler.GetTrending)
	api.POST("/filters", apiHandler.SetFilters)
	api.POST("/chat", apiHandler.Chat)
	api.GET("/dashboard", apiHandler.GetDashboard)
	api.GET("/export.csv", apiHandler.ExportCSV)

	api.POST("/snapshots", apiHandler.SaveSnapshot)
	api.GET("/snapshots", apiHandler.ListSnapshots)
	api.POST("/snapshots/:index/restore", apiHandler.RestoreSnapshot)
	api.DELETE("/snapshots/:index", apiHandler.DeleteSnapshot)
}
