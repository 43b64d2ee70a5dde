package analytics

import (
	"testing"

	"github.com/kapu/trending-insights-go/internal/domain"
)

func ptr(n int64) *int64 {
	return &n
}

func viewVideo(id, channel string, views int64) domain.Video {
	return domain.Video{
		ID:          id,
		Title:       "title-" + id,
		ChannelName: channel,
		CategoryID:  "10",
		ViewCount:   views,
		PublishedAt: "2026-08-20T00:00:00Z",
	}
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	m := Aggregate(nil, "US")

	if m.TotalVideos != 0 || m.TotalViews != 0 || m.AvgViews != 0 || m.MedianViews != 0 {
		t.Fatalf("expected zeroed metrics, got %+v", m)
	}
	if m.TopChannelByVideos != domain.NoDataChannel || m.TopChannelByViews != domain.NoDataChannel {
		t.Fatalf("expected no-data channel markers, got %q / %q", m.TopChannelByVideos, m.TopChannelByViews)
	}
	if m.Region != "US" {
		t.Fatalf("region = %q, expected US", m.Region)
	}
}

func TestAggregateBasicStats(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		viewVideo("a", "alpha", 100),
		viewVideo("b", "beta", 200),
		viewVideo("c", "alpha", 300),
		viewVideo("d", "gamma", 400),
		viewVideo("e", "delta", 500),
	}

	m := Aggregate(videos, "US")

	if m.TotalVideos != 5 {
		t.Fatalf("totalVideos = %d, expected 5", m.TotalVideos)
	}
	if m.TotalViews != 1500 {
		t.Fatalf("totalViews = %d, expected 1500", m.TotalViews)
	}
	if m.AvgViews != 300 {
		t.Fatalf("avgViews = %v, expected 300", m.AvgViews)
	}
	if m.MedianViews != 300 {
		t.Fatalf("medianViews = %v, expected 300", m.MedianViews)
	}
}

func TestAggregateTopChannels(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		viewVideo("a", "alpha", 100),
		viewVideo("b", "beta", 900),
		viewVideo("c", "alpha", 200),
	}

	m := Aggregate(videos, "US")

	if m.TopChannelByVideos != "alpha" || m.TopChannelVideoCount != 2 {
		t.Fatalf("topChannelByVideos = %q (%d), expected alpha (2)", m.TopChannelByVideos, m.TopChannelVideoCount)
	}
	if m.TopChannelByViews != "beta" || m.TopChannelTotalViews != 900 {
		t.Fatalf("topChannelByViews = %q (%d), expected beta (900)", m.TopChannelByViews, m.TopChannelTotalViews)
	}
}

func TestAggregateTieBreakFirstSeen(t *testing.T) {
	t.Parallel()

	// zeta가 먼저 등장하므로 동일 개수/조회수에서 zeta가 이겨야 한다.
	videos := []domain.Video{
		viewVideo("a", "zeta", 100),
		viewVideo("b", "alpha", 100),
	}

	m := Aggregate(videos, "US")

	if m.TopChannelByVideos != "zeta" {
		t.Fatalf("tie should resolve to first-seen channel, got %q", m.TopChannelByVideos)
	}
	if m.TopChannelByViews != "zeta" {
		t.Fatalf("view tie should resolve to first-seen channel, got %q", m.TopChannelByViews)
	}
}

func TestAggregateRateSampleExclusion(t *testing.T) {
	t.Parallel()

	zeroViews := viewVideo("a", "alpha", 0)
	zeroViews.LikeCount = ptr(50) // 조회수 0이면 표본에서 제외되어야 함

	withRate := viewVideo("b", "beta", 1000)
	withRate.LikeCount = ptr(100)

	noLikes := viewVideo("c", "gamma", 2000)

	m := Aggregate([]domain.Video{zeroViews, withRate, noLikes}, "US")

	// 유효 표본은 withRate 하나뿐: 100/1000 = 0.1
	if m.MedianLikeRate != 0.1 {
		t.Fatalf("medianLikeRate = %v, expected 0.1", m.MedianLikeRate)
	}
	if m.MedianCommentRate != 0 {
		t.Fatalf("medianCommentRate = %v, expected 0 for empty sample", m.MedianCommentRate)
	}
}

func TestChannelSummary(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		viewVideo("a", "Alpha Channel", 100),
		viewVideo("b", "beta", 200),
		viewVideo("c", "alpha channel", 300),
	}

	count, views := ChannelSummary(videos, "Alpha Channel")
	if count != 2 || views != 400 {
		t.Fatalf("ChannelSummary = (%d, %d), expected (2, 400)", count, views)
	}
}

func TestTopViewedInCategory(t *testing.T) {
	t.Parallel()

	gaming := viewVideo("a", "alpha", 100)
	gaming.CategoryName = "Gaming"
	gamingTop := viewVideo("b", "beta", 500)
	gamingTop.CategoryName = "Gaming"
	music := viewVideo("c", "gamma", 900)
	music.CategoryName = "Music"

	top, ok := TopViewedInCategory([]domain.Video{gaming, gamingTop, music}, "gaming")
	if !ok || top.ID != "b" {
		t.Fatalf("TopViewedInCategory = %v (%v), expected b", top.ID, ok)
	}

	if _, ok := TopViewedInCategory([]domain.Video{gaming}, "sports"); ok {
		t.Fatalf("expected no match for absent category")
	}
}

func TestRankByViewsStable(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		viewVideo("a", "alpha", 100),
		viewVideo("b", "beta", 500),
		viewVideo("c", "gamma", 100),
	}

	ranked := RankByViews(videos)
	if ranked[0].ID != "b" || ranked[1].ID != "a" || ranked[2].ID != "c" {
		t.Fatalf("unexpected rank order: %v %v %v", ranked[0].ID, ranked[1].ID, ranked[2].ID)
	}

	// 원본 순서는 보존되어야 한다.
	if videos[0].ID != "a" {
		t.Fatalf("RankByViews mutated its input")
	}
}
