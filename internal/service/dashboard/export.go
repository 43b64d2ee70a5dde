package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"log/slog"

	"github.com/kapu/trending-insights-go/internal/adapter"
	"github.com/kapu/trending-insights-go/pkg/errors"
)

// csvHeader: 내보내기 열 순서. 기존 소비자들이 이 순서에 의존한다.
var csvHeader = []string{
	"video_id",
	"title",
	"channel_title",
	"category_name",
	"view_count",
	"like_count",
	"comment_count",
	"duration_seconds",
	"published_at",
}

// ExportCSV: 현재 필터 결과를 RFC 4180 CSV(CRLF)로 직렬화한다.
// 값이 없는 좋아요/댓글/길이는 빈 칸으로 남긴다.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	ds := s.current.Load()
	if !ds.HasData() {
		return nil, errors.NewValidationError(adapter.MsgNothingToExport, "dataset")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range ds.Filtered {
		v := &ds.Filtered[i]
		record := []string{
			v.ID,
			v.Title,
			v.ChannelName,
			v.EffectiveCategory(),
			strconv.FormatInt(v.ViewCount, 10),
			optionalCount(v.LikeCount),
			optionalCount(v.CommentCount),
			optionalCount(v.DurationSeconds),
			v.PublishedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	s.logger.Info("Dashboard exported",
		slog.Int("videos", len(ds.Filtered)),
		slog.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func optionalCount(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}
