package matcher

import (
	"testing"

	"github.com/kapu/trending-insights-go/internal/domain"
)

func categoryVideo(id, category, channel string) domain.Video {
	return domain.Video{
		ID:           id,
		Title:        "title-" + id,
		ChannelName:  channel,
		CategoryID:   "10",
		CategoryName: category,
		ViewCount:    100,
	}
}

func TestFindCategoryExactSubstring(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		categoryVideo("a", "Gaming", "alpha"),
		categoryVideo("b", "Music", "beta"),
	}

	cat, ok := FindCategory("which video has highest views in gaming category?", videos)
	if !ok || cat.DisplayName != "Gaming" {
		t.Fatalf("FindCategory = %v (%v), expected Gaming", cat.DisplayName, ok)
	}
}

func TestFindCategoryTokenFallback(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		categoryVideo("a", "Science & Technology", "alpha"),
	}

	// 정확한 이름은 없지만 "science" 토큰이 카테고리 이름에 포함됨
	cat, ok := FindCategory("top science videos please", videos)
	if !ok || cat.DisplayName != "Science & Technology" {
		t.Fatalf("token fallback failed: %v (%v)", cat.DisplayName, ok)
	}

	// 길이 4 미만 토큰은 퍼지 매칭에서 제외
	if _, ok := FindCategory("sci now", videos); ok {
		t.Fatalf("short token should not match")
	}
}

func TestFindCategoryFirstSeenOrder(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		categoryVideo("a", "Music", "alpha"),
		categoryVideo("b", "Gaming", "beta"),
	}

	// 두 카테고리 모두 질의에 등장하면 목록 순서(최초 등장 순)가 이긴다.
	cat, ok := FindCategory("music or gaming?", videos)
	if !ok || cat.DisplayName != "Music" {
		t.Fatalf("expected first-seen category Music, got %v", cat.DisplayName)
	}
}

func TestFindCategoryFallbackLabel(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		categoryVideo("a", "", "alpha"), // 폴백 레이블: "Category 10"
	}

	cat, ok := FindCategory("what is trending in category 10?", videos)
	if !ok || cat.DisplayName != "Category 10" {
		t.Fatalf("fallback label not matchable: %v (%v)", cat.DisplayName, ok)
	}
}

func TestFindChannel(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		categoryVideo("a", "Gaming", "PixelForge"),
		categoryVideo("b", "Music", "SoundWave Studio"),
	}

	name, ok := FindChannel("how is soundwave studio doing?", videos)
	if !ok || name != "SoundWave Studio" {
		t.Fatalf("FindChannel = %q (%v), expected SoundWave Studio", name, ok)
	}

	if _, ok := FindChannel("how is some other channel doing?", videos); ok {
		t.Fatalf("expected no channel match")
	}
}

func TestFindChannelSkipsEmptyNames(t *testing.T) {
	t.Parallel()

	videos := []domain.Video{
		categoryVideo("a", "Gaming", ""),
		categoryVideo("b", "Gaming", "beta"),
	}

	// 빈 채널 이름은 모든 질의의 부분 문자열이지만 매칭되면 안 된다.
	name, ok := FindChannel("tell me about beta", videos)
	if !ok || name != "beta" {
		t.Fatalf("FindChannel = %q (%v), expected beta", name, ok)
	}
}
