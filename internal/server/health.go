package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kapu/trending-insights-go/internal/health"
)

// ConnChecker: 상태 응답에 포함될 저장소 연결 점검 계약
type ConnChecker interface {
	IsConnected(ctx context.Context) bool
}

// HealthHandler: 프로세스 상태와 캐시 스토어 연결 여부를 반환하는 핸들러를 생성합니다.
func HealthHandler(cache ConnChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := health.Get()
		resp.Cache = "down"
		if cache != nil && cache.IsConnected(c.Request.Context()) {
			resp.Cache = "up"
		}
		c.JSON(200, resp)
	}
}
