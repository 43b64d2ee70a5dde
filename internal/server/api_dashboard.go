package server

import (
	goerrors "errors"
	"strconv"
	"strings"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/pkg/errors"
)

// datasetView: 대시보드 상태의 응답 표현
type datasetView struct {
	Region    string          `json:"region"`
	StartDate string          `json:"startDate,omitempty"`
	EndDate   string          `json:"endDate,omitempty"`
	Category  string          `json:"category"`
	Videos    []domain.Video  `json:"videos"`
	Metrics   *domain.Metrics `json:"metrics"`
}

func newDatasetView(ds *domain.Dataset) datasetView {
	return datasetView{
		Region:    ds.Region,
		StartDate: ds.StartDate,
		EndDate:   ds.EndDate,
		Category:  ds.Category,
		Videos:    ds.Filtered,
		Metrics:   ds.Metrics,
	}
}

// GetTrending: 지역의 트렌딩 데이터를 로드하고 현재 데이터셋을 반환합니다.
func (h *APIHandler) GetTrending(c *gin.Context) {
	ctx := c.Request.Context()

	region := strings.ToUpper(strings.TrimSpace(c.Query("region")))
	if region == "" {
		region = h.cfg.Trending.DefaultRegion
	}

	limit := h.cfg.Trending.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < constants.TrendingDefaults.MinLimit || parsed > constants.TrendingDefaults.MaxLimit {
			c.JSON(400, gin.H{"error": "limit must be an integer between 1 and 50"})
			return
		}
		limit = parsed
	}

	ds, err := h.dashboard.Load(ctx, region, limit)
	if err != nil {
		h.logger.Error("Failed to load trending data", slog.String("region", region), slog.Any("error", err))
		c.JSON(502, gin.H{"error": "Failed to load trending data"})
		return
	}

	c.JSON(200, newDatasetView(ds))
}

type filterRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Category  string `json:"category"`
}

// SetFilters: 날짜/카테고리 필터를 적용하고 갱신된 데이터셋을 반환합니다.
func (h *APIHandler) SetFilters(c *gin.Context) {
	ctx := c.Request.Context()

	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ds, err := h.dashboard.SetFilter(ctx, req.StartDate, req.EndDate, req.Category)
	if err != nil {
		validationErr := &errors.ValidationError{}
		if goerrors.As(err, &validationErr) {
			c.JSON(400, gin.H{"error": validationErr.Message})
			return
		}
		c.JSON(409, gin.H{"error": "Load trending data before filtering"})
		return
	}

	c.JSON(200, newDatasetView(ds))
}

type chatRequest struct {
	Message       string `json:"message" binding:"required"`
	DefaultRegion string `json:"defaultRegion"`
	DefaultLimit  int    `json:"defaultLimit"`
}

// Chat: 자유 텍스트 메시지를 처리합니다.
// 제어 명령이면 데이터셋 로드까지 수행하고 적용된 지역/개수를 함께 반환합니다.
func (h *APIHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "message is required"})
		return
	}

	region := strings.ToUpper(strings.TrimSpace(req.DefaultRegion))
	if region == "" {
		region = h.cfg.Trending.DefaultRegion
	}
	limit := req.DefaultLimit
	if limit == 0 {
		limit = h.cfg.Trending.DefaultLimit
	}

	result, err := h.dashboard.AskWithDefaults(ctx, req.Message, region, limit)
	if err != nil {
		h.logger.Error("Chat processing failed", slog.Any("error", err))
		c.JSON(502, gin.H{"error": "Failed to process message"})
		return
	}

	c.JSON(200, result)
}

// GetDashboard: 현재 데이터셋 뷰를 반환합니다. 로드 전에는 404를 돌려준다.
func (h *APIHandler) GetDashboard(c *gin.Context) {
	ds := h.dashboard.Current()
	if ds == nil {
		c.JSON(404, gin.H{"error": "No dashboard loaded"})
		return
	}
	c.JSON(200, newDatasetView(ds))
}

// ExportCSV: 현재 필터 결과를 CSV 파일로 내려보냅니다.
func (h *APIHandler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.dashboard.ExportCSV(ctx)
	if err != nil {
		validationErr := &errors.ValidationError{}
		if goerrors.As(err, &validationErr) {
			c.JSON(409, gin.H{"error": validationErr.Message})
			return
		}
		h.logger.Error("CSV export failed", slog.Any("error", err))
		c.JSON(500, gin.H{"error": "Failed to export dashboard"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trending_export.csv"`)
	c.Data(200, "text/csv; charset=utf-8", data)
}
