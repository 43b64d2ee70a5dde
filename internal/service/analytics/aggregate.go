package analytics

import (
	"sort"

	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/internal/util"
)

// Aggregate: 필터링된 영상 목록에서 대시보드 메트릭을 계산한다.
// 빈 입력이면 0으로 채워진 Metrics를 반환한다. (상위 채널은 "데이터 없음" 마커)
func Aggregate(videos []domain.Video, region string) *domain.Metrics {
	if len(videos) == 0 {
		return domain.EmptyMetrics(region)
	}

	var totalViews int64
	views := make([]float64, 0, len(videos))
	for i := range videos {
		totalViews += videos[i].ViewCount
		views = append(views, float64(videos[i].ViewCount))
	}

	likeRates := make([]float64, 0, len(videos))
	commentRates := make([]float64, 0, len(videos))
	for i := range videos {
		if rate, ok := videos[i].LikeRate(); ok {
			likeRates = append(likeRates, rate)
		}
		if rate, ok := videos[i].CommentRate(); ok {
			commentRates = append(commentRates, rate)
		}
	}

	byVideos, videoCount := topChannelByVideos(videos)
	byViews, viewTotal := topChannelByViews(videos)

	return &domain.Metrics{
		Region:               region,
		TotalVideos:          len(videos),
		TotalViews:           totalViews,
		AvgViews:             float64(totalViews) / float64(len(videos)),
		MedianViews:          util.Median(views),
		TopChannelByVideos:   byVideos,
		TopChannelVideoCount: videoCount,
		TopChannelByViews:    byViews,
		TopChannelTotalViews: viewTotal,
		MedianLikeRate:       util.Median(likeRates),
		MedianCommentRate:    util.Median(commentRates),
	}
}

// channelTotals: 채널별 누적값을 최초 등장 순서대로 모은다.
// 동점 시 먼저 등장한 채널이 이겨야 하므로 map 순회 순서에 의존하면 안 된다.
type channelTotals struct {
	order  []string
	counts map[string]int
	views  map[string]int64
}

func collectChannelTotals(videos []domain.Video) *channelTotals {
	totals := &channelTotals{
		counts: make(map[string]int),
		views:  make(map[string]int64),
	}
	for i := range videos {
		name := videos[i].ChannelName
		if name == "" {
			name = "Unknown"
		}
		if _, seen := totals.counts[name]; !seen {
			totals.order = append(totals.order, name)
		}
		totals.counts[name]++
		totals.views[name] += videos[i].ViewCount
	}
	return totals
}

func topChannelByVideos(videos []domain.Video) (string, int) {
	totals := collectChannelTotals(videos)

	best := ""
	bestCount := 0
	for _, name := range totals.order {
		if totals.counts[name] > bestCount {
			bestCount = totals.counts[name]
			best = name
		}
	}
	return best, bestCount
}

func topChannelByViews(videos []domain.Video) (string, int64) {
	totals := collectChannelTotals(videos)

	best := ""
	var bestViews int64
	for _, name := range totals.order {
		if totals.views[name] > bestViews {
			bestViews = totals.views[name]
			best = name
		}
	}
	return best, bestViews
}

// ChannelSummary: 특정 채널이 현재 필터 결과에서 차지하는 영상 수와 총 조회수를 계산한다.
func ChannelSummary(videos []domain.Video, channelName string) (count int, totalViews int64) {
	key := util.Normalize(channelName)
	for i := range videos {
		if util.Normalize(videos[i].ChannelName) == key {
			count++
			totalViews += videos[i].ViewCount
		}
	}
	return count, totalViews
}

// TopViewedInCategory: 카테고리 내 최고 조회수 영상을 반환한다.
// 안정 정렬과 동일한 규칙: 동점이면 먼저 등장한 영상이 이긴다.
func TopViewedInCategory(videos []domain.Video, normalizedCategory string) (domain.Video, bool) {
	var best domain.Video
	found := false
	for i := range videos {
		if util.Normalize(videos[i].EffectiveCategory()) != normalizedCategory {
			continue
		}
		if !found || videos[i].ViewCount > best.ViewCount {
			best = videos[i]
			found = true
		}
	}
	return best, found
}

// TopChannelInCategory: 카테고리 내 총 조회수 기준 최고 채널을 반환한다. (동점 시 최초 등장)
func TopChannelInCategory(videos []domain.Video, normalizedCategory string) (string, int64, bool) {
	inCategory := make([]domain.Video, 0)
	for i := range videos {
		if util.Normalize(videos[i].EffectiveCategory()) == normalizedCategory {
			inCategory = append(inCategory, videos[i])
		}
	}
	if len(inCategory) == 0 {
		return "", 0, false
	}

	name, views := topChannelByViews(inCategory)
	return name, views, true
}

// TopViewed: 전체 필터 결과에서 최고 조회수 영상을 반환한다.
func TopViewed(videos []domain.Video) (domain.Video, bool) {
	var best domain.Video
	found := false
	for i := range videos {
		if !found || videos[i].ViewCount > best.ViewCount {
			best = videos[i]
			found = true
		}
	}
	return best, found
}

// RankByViews: 조회수 내림차순 순위 목록을 반환한다.
// 안정 정렬이므로 동점 영상은 입력 순서를 유지한다.
func RankByViews(videos []domain.Video) []domain.Video {
	ranked := append([]domain.Video(nil), videos...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount > ranked[j].ViewCount
	})
	return ranked
}
