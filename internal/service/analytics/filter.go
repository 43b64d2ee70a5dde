// Package analytics: 필터 파이프라인과 메트릭 집계기.
// 두 연산 모두 입력에 대한 순수 함수이며 입력 순서를 보존한다.
package analytics

import (
	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
)

// Filter: 날짜 구간 필터와 카테고리 동등 필터를 차례로 적용한다.
//
// 날짜 비교는 고정폭 YYYY-MM-DD 문자열의 사전식 비교다. 형식이 고정폭
// ISO이기 때문에 안전하며, 이 불변식은 domain.Video.PublishedDate가 보장한다.
// 구간이 하나라도 지정되면 날짜가 없는 항목은 탈락하고, 둘 다 비어있으면
// 날짜 없는 항목을 포함해 전부 통과한다.
func Filter(videos []domain.Video, startDate, endDate, category string) []domain.Video {
	filtered := filterByDate(videos, startDate, endDate)
	return filterByCategory(filtered, category)
}

func filterByDate(videos []domain.Video, startDate, endDate string) []domain.Video {
	if startDate == "" && endDate == "" {
		return videos
	}

	result := make([]domain.Video, 0, len(videos))
	for i := range videos {
		date := videos[i].PublishedDate()
		if date == "" {
			continue
		}
		if startDate != "" && date < startDate {
			continue
		}
		if endDate != "" && date > endDate {
			continue
		}
		result = append(result, videos[i])
	}
	return result
}

func filterByCategory(videos []domain.Video, category string) []domain.Video {
	if category == "" || category == constants.CategoryAll {
		return videos
	}

	result := make([]domain.Video, 0, len(videos))
	for i := range videos {
		if videos[i].EffectiveCategory() == category {
			result = append(result, videos[i])
		}
	}
	return result
}
