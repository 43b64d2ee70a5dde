package util

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// Median: 값들의 중앙값을 계산합니다. 입력은 변경되지 않는다.
// 짝수 개면 가운데 두 값의 평균, 홀수 개면 가운데 값, 빈 입력이면 0을 반환한다.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// FormatCount: 숫자를 천 단위 구분 기호가 있는 문자열로 포맷팅합니다.
// 예: 1500 -> "1,500"
func FormatCount(n int64) string {
	return countPrinter.Sprintf("%d", n)
}

// FormatRoundedCount: 실수를 반올림한 뒤 천 단위 구분 기호를 붙여 포맷팅한다.
func FormatRoundedCount(f float64) string {
	return FormatCount(RoundToInt64(f))
}

// RoundToInt64: 실수를 가장 가까운 정수로 반올림합니다.
func RoundToInt64(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return int64(f - 0.5)
}
