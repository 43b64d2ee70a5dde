// Package adapter: 질의 응답과 상태 메시지를 사용자 문장으로 변환한다.
package adapter

import (
	"fmt"
	"strings"

	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/internal/util"
)

// AnswerFormatter: 분석 결과를 자연어 답변 문장으로 포맷팅한다.
// 숫자는 항상 천 단위 구분 기호를 붙인다. ("1,500" 형태)
type AnswerFormatter struct{}

// NewAnswerFormatter 는 동작을 수행한다.
func NewAnswerFormatter() *AnswerFormatter {
	return &AnswerFormatter{}
}

// CategoryTopVideo: 카테고리 내 최고 조회수 영상 답변
func (f *AnswerFormatter) CategoryTopVideo(category, region string, v *domain.Video) string {
	name := v.CategoryName
	if name == "" {
		name = category
	}
	return fmt.Sprintf(
		"In the %q category for %s in this range, the top trending video by views is %q by %q with %s views, published on %s.",
		name, region, v.Title, v.ChannelName, util.FormatCount(v.ViewCount), v.PublishedDate(),
	)
}

// CategoryTopChannel: 카테고리 내 총 조회수 기준 최고 채널 답변
func (f *AnswerFormatter) CategoryTopChannel(category, region, channel string, views int64) string {
	return fmt.Sprintf(
		"Within the %q category for %s, the strongest channel by views is %q with %s views in the current trending set.",
		category, region, channel, util.FormatCount(views),
	)
}

// ChannelSummary: 특정 채널의 영상 수/총 조회수 답변
func (f *AnswerFormatter) ChannelSummary(channel, region string, count int, views int64) string {
	return fmt.Sprintf(
		"Channel %q has %d videos in the current trending dashboard for %s, with a total of %s views.",
		channel, count, region, util.FormatCount(views),
	)
}

// TotalViews: 총 조회수 답변
func (f *AnswerFormatter) TotalViews(m *domain.Metrics) string {
	return fmt.Sprintf(
		"The %d videos in the selected date/category range for %s have a total of %s views.",
		m.TotalVideos, m.Region, util.FormatCount(m.TotalViews),
	)
}

// AverageViews: 평균 조회수 답변 (반올림)
func (f *AnswerFormatter) AverageViews(m *domain.Metrics) string {
	return fmt.Sprintf(
		"Average views per trending video in this range for %s are about %s.",
		m.Region, util.FormatRoundedCount(m.AvgViews),
	)
}

// MedianViews: 중앙값 조회수 답변 (반올림)
func (f *AnswerFormatter) MedianViews(m *domain.Metrics) string {
	return fmt.Sprintf(
		"Median views per trending video in this range for %s are roughly %s.",
		m.Region, util.FormatRoundedCount(m.MedianViews),
	)
}

// TopChannels: 영상 수 기준/조회수 기준 상위 채널 동시 답변
func (f *AnswerFormatter) TopChannels(m *domain.Metrics) string {
	return fmt.Sprintf(
		"In the selected range for %s, the channel with the most trending videos is %q with %d videos. "+
			"The channel with the highest total views is %q with %s views across its trending videos.",
		m.Region, m.TopChannelByVideos, m.TopChannelVideoCount,
		m.TopChannelByViews, util.FormatCount(m.TopChannelTotalViews),
	)
}

// TopVideo: 전체 범위 최고 조회수 영상 답변
func (f *AnswerFormatter) TopVideo(region string, v *domain.Video) string {
	return fmt.Sprintf(
		"The most viewed trending video in this range for %s is %q by %q with %s views, published on %s.",
		region, v.Title, v.ChannelName, util.FormatCount(v.ViewCount), v.PublishedDate(),
	)
}

// EngagementEntry: 참여도 상위 영상 한 건의 문구
func (f *AnswerFormatter) EngagementEntry(v *domain.Video, rate float64) string {
	return fmt.Sprintf("%q (%s) has a like-to-view ratio of %.2f%%", v.Title, v.ChannelName, rate*100)
}

// Engagement: 참여도 상위 영상들을 하나의 답변으로 묶는다.
func (f *AnswerFormatter) Engagement(entries []string) string {
	return fmt.Sprintf(
		"Based on like-to-view ratio, the most positively engaged videos in this dashboard are: %s.",
		strings.Join(entries, "; "),
	)
}

// WhyTrendingOpening: "왜 트렌딩인가" 설명의 첫 문장 (조회수 + 백분위)
func (f *AnswerFormatter) WhyTrendingOpening(v *domain.Video, region string, percentile float64) string {
	return fmt.Sprintf(
		"%q is trending in %s because it has a very high view count of %s, placing it around the top %.1f%% of videos in this dashboard.",
		v.Title, region, util.FormatCount(v.ViewCount), percentile,
	)
}

// WhyTrendingLikeHigh: 좋아요 비율이 중앙값을 크게 웃돌 때의 문장
func (f *AnswerFormatter) WhyTrendingLikeHigh(rate float64) string {
	return fmt.Sprintf(
		"Its like-to-view ratio (~%.2f%%) is well above the dashboard median, suggesting strong audience approval.",
		rate*100,
	)
}

// WhyTrendingLikeLow: 좋아요 비율이 중앙값을 크게 밑돌 때의 문장
func (f *AnswerFormatter) WhyTrendingLikeLow(rate float64) string {
	return fmt.Sprintf(
		"Its like-to-view ratio (~%.2f%%) is below the typical video here, indicating mixed reactions despite high views.",
		rate*100,
	)
}

// WhyTrendingDiscussion: 댓글 비율이 높을 때의 문장
func (f *AnswerFormatter) WhyTrendingDiscussion() string {
	return "It also drives a lot of discussion, with a high comments-per-view rate versus other trending videos."
}

// WhyTrendingVeryRecent: 게시 3일 이내일 때의 문장
func (f *AnswerFormatter) WhyTrendingVeryRecent() string {
	return "It is also very recent, published within the last few days."
}

// WhyTrendingLastWeek: 게시 7일 이내일 때의 문장
func (f *AnswerFormatter) WhyTrendingLastWeek() string {
	return "It was published within the last week, so it is still fresh content."
}

// VideoCount: 영상 개수 답변
func (f *AnswerFormatter) VideoCount(m *domain.Metrics) string {
	return fmt.Sprintf(
		"There are %d trending videos in the selected date/category range for %s.",
		m.TotalVideos, m.Region,
	)
}

// Summary: 어떤 규칙에도 해당하지 않을 때의 종합 요약 답변
func (f *AnswerFormatter) Summary(m *domain.Metrics) string {
	return fmt.Sprintf(
		"Summary for %s in the selected filters: %d trending videos with a total of %s views, average %s views per video. "+
			"The channel with the most trending videos is %q (%d videos), and the channel with the highest total views is %q (%s views).",
		m.Region, m.TotalVideos, util.FormatCount(m.TotalViews), util.FormatRoundedCount(m.AvgViews),
		m.TopChannelByVideos, m.TopChannelVideoCount,
		m.TopChannelByViews, util.FormatCount(m.TopChannelTotalViews),
	)
}

// LoadConfirmation: 로드 명령 해석 결과 확인 문구
func (f *AnswerFormatter) LoadConfirmation(limit int, region string) string {
	return fmt.Sprintf(
		"Okay, I'll load the top %d trending YouTube videos for region %s. "+
			"I'll show basic metrics like total views, average views and the top channels.",
		limit, region,
	)
}
