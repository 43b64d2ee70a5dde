package domain

// Snapshot: 이름 붙여 저장된 데이터셋 뷰 하나.
// 저장 레이아웃(키 이름 포함)은 영속화를 거쳐 변경 없이 왕복해야 한다.
type Snapshot struct {
	SavedAt   string   `json:"savedAt"`
	Region    string   `json:"region"`
	StartDate *string  `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	Category  string   `json:"category"` // "__ALL__" 센티널 또는 카테고리 표시 이름
	Metrics   *Metrics `json:"metrics"`
	Videos    []Video  `json:"videos"`
}
