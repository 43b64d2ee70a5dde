// Package matcher: 자유 텍스트 질의에서 카테고리/채널 언급을 추출한다.
// 매칭 대상은 항상 "현재 필터링된" 영상 목록이다. 사용자가 보고 있는
// 범위 밖의 엔티티는 답변 대상이 아니기 때문이다.
package matcher

import (
	"strings"

	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/internal/util"
)

// FindCategory: 질의 텍스트에서 카테고리 언급을 찾는다.
//
// 1차: 카테고리 이름(소문자)이 질의(소문자)에 부분 문자열로 포함되는지를
// 목록 순서대로 검사한다. 2차(1차 실패 시): 질의를 영숫자 토큰으로 나누고,
// 길이 4 이상인 토큰이 카테고리 이름에 포함되는지를 질의 토큰 순서 →
// 카테고리 목록 순서로 검사한다. 각 단계 모두 첫 히트가 이긴다.
func FindCategory(text string, videos []domain.Video) (domain.Category, bool) {
	query := util.Normalize(text)
	categories := domain.BuildCategoryList(videos)

	for _, cat := range categories {
		if strings.Contains(query, cat.NormalizedKey) {
			return cat, true
		}
	}

	for _, token := range util.Tokenize(query) {
		if len(token) < constants.QueryLimits.MinFuzzyTokenLen {
			continue
		}
		for _, cat := range categories {
			if strings.Contains(cat.NormalizedKey, token) {
				return cat, true
			}
		}
	}

	return domain.Category{}, false
}

// FindChannel: 질의 텍스트에 포함된 채널 이름을 찾는다.
// 영상 목록 순서대로 검사하며 첫 히트가 이긴다. 빈 이름은 매칭되지 않는다.
func FindChannel(text string, videos []domain.Video) (string, bool) {
	query := util.Normalize(text)

	for i := range videos {
		name := videos[i].ChannelName
		lower := util.Normalize(name)
		if lower != "" && strings.Contains(query, lower) {
			return name, true
		}
	}

	return "", false
}
