package domain

import (
	"fmt"

	"github.com/kapu/trending-insights-go/internal/util"
)

// Video: 트렌딩 레코드 하나를 나타내는 정규화된 모델.
// JSON 태그는 저장 레이아웃과 API 응답에 그대로 노출되므로 변경하면 안 된다.
type Video struct {
	ID              string `json:"video_id"`
	Title           string `json:"title"`
	ChannelName     string `json:"channel_title"`
	CategoryID      string `json:"category_id"`
	CategoryName    string `json:"category_name,omitempty"`
	ViewCount       int64  `json:"view_count"`
	LikeCount       *int64 `json:"like_count"`
	CommentCount    *int64 `json:"comment_count"`
	DurationSeconds *int64 `json:"duration_seconds"`
	PublishedAt     string `json:"published_at"`
}

// EffectiveCategory: 카테고리 표시 이름을 반환한다.
// 이름이 없으면 "Category <categoryID>" 폴백을 사용하며, 이 폴백 문자열은
// 필터/매칭의 동등 비교 전반에 그대로 참여한다.
func (v *Video) EffectiveCategory() string {
	if v.CategoryName != "" {
		return v.CategoryName
	}
	return fmt.Sprintf("Category %s", v.CategoryID)
}

// PublishedDate: 게시 시각의 날짜 부분(YYYY-MM-DD)을 반환한다.
func (v *Video) PublishedDate() string {
	return util.DatePart(v.PublishedAt)
}

// LikeRate: 좋아요 수를 조회수로 나눈 비율을 반환한다.
// 조회수가 0이거나 좋아요 수가 없으면 ok=false. 비율 표본에서 제외된다는 뜻이다.
func (v *Video) LikeRate() (float64, bool) {
	if v.ViewCount == 0 || v.LikeCount == nil {
		return 0, false
	}
	return float64(*v.LikeCount) / float64(v.ViewCount), true
}

// CommentRate: 댓글 수를 조회수로 나눈 비율을 반환한다.
func (v *Video) CommentRate() (float64, bool) {
	if v.ViewCount == 0 || v.CommentCount == nil {
		return 0, false
	}
	return float64(*v.CommentCount) / float64(v.ViewCount), true
}
