package resolver

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kapu/trending-insights-go/internal/adapter"
	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/internal/service/analytics"
)

func newTestResolver() *Resolver {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(adapter.NewAnswerFormatter(), logger)
}

func int64Ptr(n int64) *int64 { return &n }

func testVideos() []domain.Video {
	return []domain.Video{
		{
			ID: "v1", Title: "Rocket Launch Recap", ChannelName: "SpaceDaily",
			CategoryName: "Science & Technology", ViewCount: 500,
			LikeCount: int64Ptr(50), CommentCount: int64Ptr(10),
			PublishedAt: "2024-03-10T08:00:00Z",
		},
		{
			ID: "v2", Title: "Lo-fi Beats", ChannelName: "ChillWave",
			CategoryName: "Music", ViewCount: 400,
			LikeCount: int64Ptr(8), CommentCount: int64Ptr(1),
			PublishedAt: "2024-03-01T08:00:00Z",
		},
		{
			ID: "v3", Title: "Goal Highlights", ChannelName: "SportsNow",
			CategoryName: "Sports", ViewCount: 300,
			LikeCount: int64Ptr(30), CommentCount: int64Ptr(6),
			PublishedAt: "2024-03-08T08:00:00Z",
		},
		{
			ID: "v4", Title: "More Beats", ChannelName: "ChillWave",
			CategoryName: "Music", ViewCount: 200,
			PublishedAt: "2024-02-20T08:00:00Z",
		},
		{
			ID: "v5", Title: "Cooking Basics", ChannelName: "KitchenLab",
			CategoryName: "Howto & Style", ViewCount: 100,
			LikeCount: int64Ptr(12), CommentCount: int64Ptr(2),
			PublishedAt: "2024-03-09T08:00:00Z",
		},
	}
}

func testDataset() *domain.Dataset {
	videos := testVideos()
	return &domain.Dataset{
		Region:   "US",
		Raw:      videos,
		Filtered: videos,
		Metrics:  analytics.Aggregate(videos, "US"),
	}
}

func testNow() time.Time {
	return time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
}

func TestResolveRequiresData(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	empty := &domain.Dataset{Region: "US"}

	got := r.Resolve("total views", empty, testNow())
	if got != adapter.MsgLoadDataFirst {
		t.Fatalf("Resolve() without data = %q, want load guidance", got)
	}
}

func TestResolveRuleSelection(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	ds := testDataset()
	now := testNow()

	tests := map[string]struct {
		query string
		want  []string
	}{
		"total views": {
			query: "what are the total views?",
			want:  []string{"1,500", "total"},
		},
		"average views": {
			query: "average views per video",
			want:  []string{"300", "average"},
		},
		"median views": {
			query: "median views please",
			want:  []string{"300", "median"},
		},
		"video count": {
			query: "how many videos are in this dashboard?",
			want:  []string{"5"},
		},
		"top video": {
			query: "which is the most viewed video?",
			want:  []string{"Rocket Launch Recap", "500"},
		},
		"top channels": {
			query: "which channel has the most videos?",
			want:  []string{"ChillWave"},
		},
		"channel summary": {
			query: "tell me about the chillwave channel",
			want:  []string{"ChillWave", "2", "600"},
		},
		"engagement": {
			query: "how is the engagement looking?",
			want:  []string{"Rocket Launch Recap", "10.00%"},
		},
		"why trending": {
			query: "why is it trending?",
			want:  []string{"Rocket Launch Recap", "100"},
		},
		"fallback summary": {
			query: "tell me something interesting",
			want:  []string{"5", "1,500"},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := r.Resolve(tc.query, ds, now)
			for _, fragment := range tc.want {
				if !strings.Contains(got, fragment) {
					t.Fatalf("Resolve(%q) = %q, missing %q", tc.query, got, fragment)
				}
			}
		})
	}
}

// 카테고리 질의는 전체 집계보다 먼저 평가되어야 한다.
// "music"이 언급되면 전체 1위(Rocket Launch Recap)가 아니라 Music 1위를 답한다.
func TestResolveCategoryRulesTakePriority(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	ds := testDataset()

	got := r.Resolve("what is the top video in music?", ds, testNow())
	if !strings.Contains(got, "Lo-fi Beats") {
		t.Fatalf("category query answered %q, want Music top video", got)
	}
	if strings.Contains(got, "Rocket Launch Recap") {
		t.Fatalf("category query leaked global top video: %q", got)
	}

	got = r.Resolve("which channel leads in music?", ds, testNow())
	if !strings.Contains(got, "ChillWave") {
		t.Fatalf("category channel query answered %q, want ChillWave", got)
	}
}

// 카테고리+조회수 규칙과 카테고리+채널 규칙을 동시에 만족하는 질문은
// 선언 순서상 앞선 규칙이 이긴다.
func TestResolveCategoryTopVideoBeatsCategoryTopChannel(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	ds := testDataset()

	got := r.Resolve("in the music category, which channel has the most views?", ds, testNow())
	if !strings.Contains(got, "Lo-fi Beats") {
		t.Fatalf("dual-matching query answered %q, want the Music top video", got)
	}
	if strings.Contains(got, "strongest channel") {
		t.Fatalf("dual-matching query fell through to the channel rule: %q", got)
	}
}

// 미래 날짜로 게시된 영상에는 신선도 문구를 붙이지 않는다.
func TestResolveWhyTrendingIgnoresFutureDates(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	videos := []domain.Video{
		{
			ID: "v9", Title: "Premiere Teaser", ChannelName: "SpaceDaily",
			CategoryName: "Science & Technology", ViewCount: 700,
			LikeCount: int64Ptr(70), CommentCount: int64Ptr(14),
			PublishedAt: "2024-03-25T00:00:00Z",
		},
	}
	ds := &domain.Dataset{
		Region:   "US",
		Raw:      videos,
		Filtered: videos,
		Metrics:  analytics.Aggregate(videos, "US"),
	}

	got := r.Resolve("why is this video popular?", ds, testNow())
	if strings.Contains(got, "very recent") || strings.Contains(got, "last week") {
		t.Fatalf("future-dated video got a recency remark: %q", got)
	}
}

func TestResolveEngagementExcludesVideosWithoutLikes(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	ds := testDataset()

	got := r.Resolve("show engagement", ds, testNow())
	if strings.Contains(got, "More Beats") {
		t.Fatalf("engagement answer included a video without like data: %q", got)
	}
}

func TestResolveEngagementInsufficientData(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	videos := []domain.Video{
		{ID: "v1", Title: "No Likes", ChannelName: "Quiet", CategoryName: "Music", ViewCount: 100},
	}
	ds := &domain.Dataset{
		Region:   "US",
		Raw:      videos,
		Filtered: videos,
		Metrics:  analytics.Aggregate(videos, "US"),
	}

	got := r.Resolve("engagement?", ds, testNow())
	if got != adapter.MsgInsufficientEngagement {
		t.Fatalf("Resolve() = %q, want insufficient engagement notice", got)
	}
}

func TestResolveWhyTrendingMentionsRecency(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	ds := testDataset()

	// v1은 기준 시각 하루 전 게시: "very recent" 문구가 붙어야 한다.
	got := r.Resolve("why is this video so popular?", ds, testNow())
	if !strings.Contains(strings.ToLower(got), "recent") {
		t.Fatalf("why-trending answer missing recency note: %q", got)
	}
}
