package domain

import "time"

// Dataset: 현재 대시보드가 바라보는 "완결된" 데이터셋 하나.
// 로드/필터 변경 시 전체가 통째로 교체되며, 부분적으로 수정된 상태가
// 외부에 관측되는 일은 없다.
type Dataset struct {
	Region    string
	Raw       []Video // 마지막으로 완료된 로드의 원본 목록
	StartDate string  // 비어있으면 하한 없음
	EndDate   string  // 비어있으면 상한 없음
	Category  string  // "__ALL__" 센티널 또는 카테고리 표시 이름
	Filtered  []Video
	Metrics   *Metrics
	LoadedAt  time.Time
}

// FilterState 는 타입이다.
type FilterState struct {
	StartDate string
	EndDate   string
	Category  string
}

// HasData: 질의에 응답할 수 있는 상태인지 확인한다.
// 필터 결과와 메트릭이 모두 존재해야 한다.
func (d *Dataset) HasData() bool {
	return d != nil && len(d.Filtered) > 0 && d.Metrics != nil
}
