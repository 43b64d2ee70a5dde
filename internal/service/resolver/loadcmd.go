package resolver

import (
	"regexp"

	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/util"
)

// controlWordRegex: 질의를 제어 명령으로 분류하는 키워드 집합.
// 대시보드 조작 의도를 넓게 잡기 위해 단어 경계 없이 매칭한다.
var controlWordRegex = regexp.MustCompile(`(?i)(show|create|build|make|load|dashboard|trending)`)

// limitRegex: 1~2자리 숫자. 경계가 있어야 "2024" 같은 연도와 섞이지 않는다.
var limitRegex = regexp.MustCompile(`\b(\d{1,2})\b`)

// regionPhrase: 지역 언급 구문과 ISO 3166-1 코드의 대응.
// 평가 순서가 의미를 가지므로 맵이 아닌 슬라이스로 선언한다.
type regionPhrase struct {
	phrase string
	code   string
}

var regionPhrases = []regionPhrase{
	{"india", "IN"},
	{"us", "US"},
	{"usa", "US"},
	{"united states", "US"},
	{"uk", "GB"},
	{"united kingdom", "GB"},
	{"germany", "DE"},
	{"france", "FR"},
	{"japan", "JP"},
	{"brazil", "BR"},
}

// LoadRequest: 제어 명령에서 해석한 적재 매개변수
type LoadRequest struct {
	Region string
	Limit  int
}

// IsControlCommand: 질의가 데이터 적재/대시보드 제어 명령인지 판별한다.
// 규칙 평가에 앞서 원문 그대로 검사한다.
func IsControlCommand(text string) bool {
	return controlWordRegex.MatchString(text)
}

// ParseLoadRequest: 제어 명령 텍스트에서 지역과 개수를 해석한다.
// 언급이 없으면 기본값(지역 US, 개수 25)을 사용한다.
func ParseLoadRequest(text string) LoadRequest {
	return ParseLoadRequestWith(text, constants.TrendingDefaults.Region, constants.TrendingDefaults.Limit)
}

// ParseLoadRequestWith: ParseLoadRequest와 같되, 언급이 없을 때 쓸 기본값을
// 호출자가 지정한다. 유효하지 않은 기본값은 전역 기본값으로 대체된다.
func ParseLoadRequestWith(text, defaultRegion string, defaultLimit int) LoadRequest {
	if defaultRegion == "" {
		defaultRegion = constants.TrendingDefaults.Region
	}
	if defaultLimit < constants.TrendingDefaults.MinLimit || defaultLimit > constants.TrendingDefaults.MaxLimit {
		defaultLimit = constants.TrendingDefaults.Limit
	}

	req := LoadRequest{
		Region: defaultRegion,
		Limit:  defaultLimit,
	}

	lower := util.Normalize(text)
	for _, rp := range regionPhrases {
		if util.ContainsAny(lower, rp.phrase) {
			req.Region = rp.code
			break
		}
	}

	// 마지막에 언급된 유효한 숫자가 이긴다. "top 10 from 50"은 50건이다.
	matches := limitRegex.FindAllStringSubmatch(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		n := 0
		for _, c := range matches[i][1] {
			n = n*10 + int(c-'0')
		}
		if n >= constants.TrendingDefaults.MinLimit && n <= constants.TrendingDefaults.MaxLimit {
			req.Limit = n
			break
		}
	}

	return req
}
