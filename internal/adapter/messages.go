package adapter

// 사용자에게 그대로 노출되는 고정 메시지 모음.
// 테스트가 문구를 그대로 검증하므로 변경 시 주의해야 한다.
const (
	// MsgLoadDataFirst: 데이터가 로드되기 전에 질문이 들어왔을 때의 안내 문구
	MsgLoadDataFirst = "First load trending data and choose a date/category range, then ask questions about it."

	// MsgInsufficientEngagement: 좋아요 정보가 부족해 참여도 분석이 불가능할 때
	MsgInsufficientEngagement = "Not enough like information is available to analyse engagement for this dashboard."

	// MsgNoTrendingVideos: 제공자가 빈 결과를 돌려줬을 때
	MsgNoTrendingVideos = "No trending videos found."

	// MsgNothingToExport: 내보낼 필터 결과가 없을 때
	MsgNothingToExport = "Nothing to export. Load and filter data first."

	// MsgLoadBeforeSnapshot: 스냅샷 저장 전에 대시보드 로드가 필요할 때
	MsgLoadBeforeSnapshot = "Load a dashboard before saving a snapshot."
)
