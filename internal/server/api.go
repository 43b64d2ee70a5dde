package server

import (
	"log/slog"

	"github.com/kapu/trending-insights-go/internal/config"
	"github.com/kapu/trending-insights-go/internal/service/dashboard"
)

// APIHandler: 트렌딩 대시보드 API 요청을 처리하는 핸들러입니다.
// 핸들러 메서드는 도메인별 파일로 분리됨:
//   - api_dashboard.go: 로드/필터/질의/내보내기
//   - api_snapshot.go: 스냅샷 저장/조회/복원/삭제
type APIHandler struct {
	dashboard *dashboard.Service
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAPIHandler: 새로운 API 핸들러를 생성합니다.
func NewAPIHandler(dashboardSvc *dashboard.Service, cfg *config.Config, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		dashboard: dashboardSvc,
		cfg:       cfg,
		logger:    logger,
	}
}
