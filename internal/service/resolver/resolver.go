// Package resolver: 자유 텍스트 질문을 현재 대시보드에 대한 답변으로 해석한다.
//
// 해석은 고정된 전순서 규칙 목록을 위에서 아래로 평가하는 방식이다.
// 첫 번째로 조건이 참이 되는 규칙이 응답을 결정하며, 이후 규칙은 조건이
// 맞더라도 절대 평가되지 않는다. 평가 순서 자체가 감사 가능한 계약이므로
// 규칙은 명시적인 슬라이스로 선언한다.
package resolver

import (
	"log/slog"
	"sort"
	"time"

	"github.com/kapu/trending-insights-go/internal/adapter"
	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/internal/service/analytics"
	"github.com/kapu/trending-insights-go/internal/service/matcher"
	"github.com/kapu/trending-insights-go/internal/util"
)

// Resolver: 규칙 기반 질의 해석기
type Resolver struct {
	formatter *adapter.AnswerFormatter
	rules     []rule
	logger    *slog.Logger
}

// queryContext: 단일 질의 해석에 필요한 모든 입력의 스냅샷.
// 해석 도중 데이터셋이 교체되어도 영향을 받지 않는다.
type queryContext struct {
	query       string // 소문자화된 질의
	videos      []domain.Video
	metrics     *domain.Metrics
	category    domain.Category
	hasCategory bool
	channel     string
	hasChannel  bool
	now         time.Time
}

// rule: (조건, 응답 생성기) 쌍. name은 로깅 전용이다.
type rule struct {
	name    string
	matches func(qc *queryContext) bool
	answer  func(qc *queryContext) string
}

// New: 규칙 목록이 구성된 Resolver를 생성한다.
func New(formatter *adapter.AnswerFormatter, logger *slog.Logger) *Resolver {
	r := &Resolver{
		formatter: formatter,
		logger:    logger,
	}
	r.rules = r.buildRules()
	return r
}

// Resolve: 현재 데이터셋에 대해 질문에 답한다.
// 데이터가 아직 없으면 모든 규칙 평가에 앞서 고정 안내 문구를 반환한다.
func (r *Resolver) Resolve(text string, ds *domain.Dataset, now time.Time) string {
	if !ds.HasData() {
		return adapter.MsgLoadDataFirst
	}

	qc := &queryContext{
		query:   util.Normalize(util.TruncateString(text, constants.QueryLimits.MaxQueryLength)),
		videos:  ds.Filtered,
		metrics: ds.Metrics,
		now:     now,
	}
	qc.category, qc.hasCategory = matcher.FindCategory(qc.query, qc.videos)
	qc.channel, qc.hasChannel = matcher.FindChannel(qc.query, qc.videos)

	for _, rule := range r.rules {
		if rule.matches(qc) {
			r.logger.Debug("Query matched rule", slog.String("rule", rule.name))
			return rule.answer(qc)
		}
	}

	// fallback 규칙이 항상 매칭되므로 도달하지 않는다.
	return r.formatter.Summary(qc.metrics)
}

func (qc *queryContext) hasAny(phrases ...string) bool {
	return util.ContainsAny(qc.query, phrases...)
}

func (r *Resolver) buildRules() []rule {
	return []rule{
		{
			name: "category_top_video",
			matches: func(qc *queryContext) bool {
				return qc.hasCategory &&
					qc.hasAny("view", "views", "top", "highest", "most", "popular", "best")
			},
			answer: r.answerCategoryTopVideo,
		},
		{
			name: "category_top_channel",
			matches: func(qc *queryContext) bool {
				return qc.hasCategory && qc.hasAny("channel")
			},
			answer: r.answerCategoryTopChannel,
		},
		{
			name: "channel_summary",
			matches: func(qc *queryContext) bool {
				mentionsChannel := qc.hasAny("this channel", "that channel") ||
					(qc.hasAny("channel") && !qc.hasAny("which channel"))
				return mentionsChannel && qc.hasChannel
			},
			answer: r.answerChannelSummary,
		},
		{
			name: "total_views",
			matches: func(qc *queryContext) bool {
				return qc.hasAny("total views", "overall views", "sum of views", "all views")
			},
			answer: func(qc *queryContext) string { return r.formatter.TotalViews(qc.metrics) },
		},
		{
			name: "average_views",
			matches: func(qc *queryContext) bool {
				return qc.hasAny("average views", "avg views", "mean views", "typical views")
			},
			answer: func(qc *queryContext) string { return r.formatter.AverageViews(qc.metrics) },
		},
		{
			name: "median_views",
			matches: func(qc *queryContext) bool {
				return qc.hasAny("median views", "middle views", "50th percentile")
			},
			answer: func(qc *queryContext) string { return r.formatter.MedianViews(qc.metrics) },
		},
		{
			name: "top_channels",
			matches: func(qc *queryContext) bool {
				return qc.hasAny("top channel", "which channel", "most videos", "most trending videos", "best channel")
			},
			answer: func(qc *queryContext) string { return r.formatter.TopChannels(qc.metrics) },
		},
		{
			name: "top_video",
			matches: func(qc *queryContext) bool {
				combined := qc.hasAny("highest", "most", "top", "maximum", "max", "best") &&
					qc.hasAny("view", "views", "popular")
				return combined ||
					qc.hasAny("highest viewed video", "most viewed video", "top video", "best video")
			},
			answer: r.answerTopVideo,
		},
		{
			name: "engagement",
			matches: func(qc *queryContext) bool {
				return qc.hasAny("engagement", "sentiment", "like ratio", "likes to views", "audience reaction")
			},
			answer: r.answerEngagement,
		},
		{
			name: "why_trending",
			matches: func(qc *queryContext) bool {
				return qc.hasAny("why") && qc.hasAny("trending", "popular", "viral")
			},
			answer: r.answerWhyTrending,
		},
		{
			name: "video_count",
			matches: func(qc *queryContext) bool {
				return qc.hasAny("how many videos", "number of videos", "video count",
					"how many are trending", "videos are trending")
			},
			answer: func(qc *queryContext) string { return r.formatter.VideoCount(qc.metrics) },
		},
		{
			name:    "fallback_summary",
			matches: func(qc *queryContext) bool { return true },
			answer:  func(qc *queryContext) string { return r.formatter.Summary(qc.metrics) },
		},
	}
}

func (r *Resolver) answerCategoryTopVideo(qc *queryContext) string {
	top, ok := analytics.TopViewedInCategory(qc.videos, qc.category.NormalizedKey)
	if !ok {
		// 카테고리 목록은 현재 영상들에서 파생되므로 도달하지 않지만,
		// 규칙 계약상 빈 카테고리는 요약으로 떨어진다.
		return r.formatter.Summary(qc.metrics)
	}
	return r.formatter.CategoryTopVideo(qc.category.DisplayName, qc.metrics.Region, &top)
}

func (r *Resolver) answerCategoryTopChannel(qc *queryContext) string {
	channel, views, ok := analytics.TopChannelInCategory(qc.videos, qc.category.NormalizedKey)
	if !ok {
		return r.formatter.Summary(qc.metrics)
	}
	return r.formatter.CategoryTopChannel(qc.category.DisplayName, qc.metrics.Region, channel, views)
}

func (r *Resolver) answerChannelSummary(qc *queryContext) string {
	count, views := analytics.ChannelSummary(qc.videos, qc.channel)
	return r.formatter.ChannelSummary(qc.channel, qc.metrics.Region, count, views)
}

func (r *Resolver) answerTopVideo(qc *queryContext) string {
	top, ok := analytics.TopViewed(qc.videos)
	if !ok {
		return r.formatter.Summary(qc.metrics)
	}
	return r.formatter.TopVideo(qc.metrics.Region, &top)
}

// answerEngagement: 좋아요/조회수 비율 상위 영상을 보고한다.
// 두 값이 모두 있는 영상만 표본이 되며, 표본이 비면 고정 안내 문구를 반환한다.
func (r *Resolver) answerEngagement(qc *queryContext) string {
	type rated struct {
		video domain.Video
		rate  float64
	}

	sample := make([]rated, 0, len(qc.videos))
	for i := range qc.videos {
		if rate, ok := qc.videos[i].LikeRate(); ok {
			sample = append(sample, rated{video: qc.videos[i], rate: rate})
		}
	}
	if len(sample) == 0 {
		return adapter.MsgInsufficientEngagement
	}

	sort.SliceStable(sample, func(i, j int) bool {
		return sample[i].rate > sample[j].rate
	})
	if len(sample) > constants.QueryLimits.EngagementTopN {
		sample = sample[:constants.QueryLimits.EngagementTopN]
	}

	entries := make([]string, 0, len(sample))
	for i := range sample {
		entries = append(entries, r.formatter.EngagementEntry(&sample[i].video, sample[i].rate))
	}
	return r.formatter.Engagement(entries)
}

// answerWhyTrending: 최고 조회수 영상에 대한 설명을 생성한다.
// 백분위, 좋아요/댓글 비율 대 중앙값 비교, 게시 시점 기반 신선도 문구를 조합한다.
func (r *Resolver) answerWhyTrending(qc *queryContext) string {
	ranked := analytics.RankByViews(qc.videos)
	top := ranked[0]

	rankIndex := 0
	for i := range ranked {
		if ranked[i].ID == top.ID {
			rankIndex = i
			break
		}
	}
	percentile := 100 - (float64(rankIndex)/float64(len(ranked)))*100

	parts := []string{r.formatter.WhyTrendingOpening(&top, qc.metrics.Region, percentile)}

	if likeRate, ok := top.LikeRate(); ok && qc.metrics.MedianLikeRate > 0 {
		switch {
		case likeRate > qc.metrics.MedianLikeRate*1.5:
			parts = append(parts, r.formatter.WhyTrendingLikeHigh(likeRate))
		case likeRate < qc.metrics.MedianLikeRate*0.7:
			parts = append(parts, r.formatter.WhyTrendingLikeLow(likeRate))
		}
	}

	if commentRate, ok := top.CommentRate(); ok && qc.metrics.MedianCommentRate > 0 {
		if commentRate > qc.metrics.MedianCommentRate*1.5 {
			parts = append(parts, r.formatter.WhyTrendingDiscussion())
		}
	}

	if days := util.DaysSinceDate(top.PublishedDate(), qc.now); days >= 0 {
		if days <= 3 {
			parts = append(parts, r.formatter.WhyTrendingVeryRecent())
		} else if days <= 7 {
			parts = append(parts, r.formatter.WhyTrendingLastWeek())
		}
	}

	answer := parts[0]
	for _, part := range parts[1:] {
		answer += " " + part
	}
	return answer
}
