package domain

// NoDataChannel: 빈 데이터셋에서 상위 채널 자리에 들어가는 명시적 "데이터 없음" 마커
const NoDataChannel = "N/A"

// Metrics: 필터링된 데이터셋에서 파생된 대시보드 통계.
// 필터 결과가 바뀔 때마다 처음부터 다시 계산되며, 절대 제자리에서 수정되지 않는다.
type Metrics struct {
	Region               string  `json:"region"`
	TotalVideos          int     `json:"totalVideos"`
	TotalViews           int64   `json:"totalViews"`
	AvgViews             float64 `json:"avgViews"`
	MedianViews          float64 `json:"medianViews"`
	TopChannelByVideos   string  `json:"topChannelByVideos"`
	TopChannelVideoCount int     `json:"topChannelVideoCount"`
	TopChannelByViews    string  `json:"topChannelByViews"`
	TopChannelTotalViews int64   `json:"topChannelTotalViews"`
	MedianLikeRate       float64 `json:"medianLikeRate"`
	MedianCommentRate    float64 `json:"medianCommentRate"`
}

// EmptyMetrics: 빈 데이터셋에 대한 0으로 채워진 Metrics를 반환한다.
func EmptyMetrics(region string) *Metrics {
	return &Metrics{
		Region:             region,
		TopChannelByVideos: NoDataChannel,
		TopChannelByViews:  NoDataChannel,
	}
}
