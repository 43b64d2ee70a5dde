package server

import (
	goerrors "errors"
	"strconv"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/kapu/trending-insights-go/pkg/errors"
)

// SaveSnapshot: 현재 대시보드 뷰를 저장하고 부여된 인덱스를 반환합니다.
func (h *APIHandler) SaveSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.dashboard.SaveSnapshot(ctx)
	if err != nil {
		validationErr := &errors.ValidationError{}
		if goerrors.As(err, &validationErr) {
			c.JSON(409, gin.H{"error": validationErr.Message})
			return
		}
		h.logger.Error("Failed to save snapshot", slog.Any("error", err))
		c.JSON(500, gin.H{"error": "Failed to save snapshot"})
		return
	}

	c.JSON(201, gin.H{"status": "ok", "index": index})
}

// ListSnapshots: 저장된 스냅샷 목록을 반환합니다.
func (h *APIHandler) ListSnapshots(c *gin.Context) {
	ctx := c.Request.Context()

	snapshots, err := h.dashboard.Snapshots(ctx)
	if err != nil {
		h.logger.Error("Failed to list snapshots", slog.Any("error", err))
		c.JSON(500, gin.H{"error": "Failed to list snapshots"})
		return
	}

	c.JSON(200, gin.H{"status": "ok", "snapshots": snapshots})
}

// RestoreSnapshot: 저장된 스냅샷으로 대시보드를 되살립니다.
func (h *APIHandler) RestoreSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	index, ok := snapshotIndex(c)
	if !ok {
		return
	}

	ds, found, err := h.dashboard.LoadSnapshot(ctx, index)
	if err != nil {
		h.logger.Error("Failed to restore snapshot", slog.Int("index", index), slog.Any("error", err))
		c.JSON(500, gin.H{"error": "Failed to restore snapshot"})
		return
	}
	if !found {
		c.JSON(404, gin.H{"error": "Snapshot not found"})
		return
	}

	c.JSON(200, newDatasetView(ds))
}

// DeleteSnapshot: 주어진 인덱스의 스냅샷을 제거합니다.
func (h *APIHandler) DeleteSnapshot(c *gin.Context) {
	ctx := c.Request.Context()

	index, ok := snapshotIndex(c)
	if !ok {
		return
	}

	removed, err := h.dashboard.DeleteSnapshot(ctx, index)
	if err != nil {
		h.logger.Error("Failed to delete snapshot", slog.Int("index", index), slog.Any("error", err))
		c.JSON(500, gin.H{"error": "Failed to delete snapshot"})
		return
	}
	if !removed {
		c.JSON(404, gin.H{"error": "Snapshot not found"})
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

func snapshotIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(400, gin.H{"error": "index must be a non-negative integer"})
		return 0, false
	}
	return index, true
}
