package domain

import "github.com/kapu/trending-insights-go/internal/util"

// Category 는 타입이다.
type Category struct {
	DisplayName   string
	NormalizedKey string // 소문자화된 DisplayName, 매칭 키로 사용
}

// BuildCategoryList: 주어진 영상 목록에서 중복 제거된 카테고리 목록을 만든다.
// 순서는 최초 등장 순서를 유지한다.
func BuildCategoryList(videos []Video) []Category {
	seen := make(map[string]struct{})
	categories := make([]Category, 0)

	for i := range videos {
		name := videos[i].EffectiveCategory()
		key := util.Normalize(name)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		categories = append(categories, Category{
			DisplayName:   name,
			NormalizedKey: key,
		})
	}

	return categories
}
