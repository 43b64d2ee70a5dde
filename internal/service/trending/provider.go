// Package trending: YouTube Data API에서 인기 급상승 영상을 가져와
// 정규화된 도메인 모델로 변환하는 공급자.
package trending

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"log/slog"

	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/internal/service/cache"
	"github.com/kapu/trending-insights-go/internal/util"
	"github.com/kapu/trending-insights-go/pkg/errors"
)

// Provider: YouTube API 클라이언트 래퍼.
// 요청 빈도 제한과 지수 백오프 재시도를 내장하며, 지역별 카테고리
// id→이름 매핑은 Valkey에 캐싱한다.
type Provider struct {
	service *youtube.Service
	cache   *cache.Service
	logger  *slog.Logger
	limiter *rate.Limiter
	sf      singleflight.Group
}

// NewProvider: 트렌딩 공급자 인스턴스를 생성한다.
func NewProvider(ctx context.Context, apiKey string, cacheService *cache.Service, logger *slog.Logger) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Provider{
		service: service,
		cache:   cacheService,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(constants.ProviderConfig.RateLimitInterval), constants.ProviderConfig.RateLimitBurst),
	}, nil
}

// FetchTrending: 지정된 지역의 인기 급상승 영상을 조회한다.
// limit은 API 허용 범위로 잘라낸다. 영상 목록과 카테고리 매핑은
// 동시에 가져오며, 매핑 조회 실패는 치명적이지 않다. 이름이 없는
// 카테고리는 이후 표시 단계에서 id 기반 폴백으로 대체된다.
func (p *Provider) FetchTrending(ctx context.Context, region string, limit int) ([]domain.Video, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = constants.TrendingDefaults.Region
	}
	if limit < constants.TrendingDefaults.MinLimit {
		limit = constants.TrendingDefaults.Limit
	}
	if limit > constants.TrendingDefaults.MaxLimit {
		limit = constants.TrendingDefaults.MaxLimit
	}

	var (
		items      []*youtube.Video
		categories map[string]string
		itemsErr   error
		catErr     error
	)

	p2 := pool.New().WithMaxGoroutines(2)
	p2.Go(func() {
		items, itemsErr = p.fetchMostPopular(ctx, region, limit)
	})
	p2.Go(func() {
		categories, catErr = p.CategoryMap(ctx, region)
	})
	p2.Wait()

	if itemsErr != nil {
		return nil, itemsErr
	}
	if catErr != nil {
		p.logger.Warn("Category map unavailable, falling back to category ids",
			slog.String("region", region),
			slog.Any("error", catErr),
		)
		categories = map[string]string{}
	}

	videos := make([]domain.Video, 0, len(items))
	for _, item := range items {
		videos = append(videos, normalizeVideo(item, categories))
	}

	p.logger.Info("Trending videos fetched",
		slog.String("region", region),
		slog.Int("requested", limit),
		slog.Int("received", len(videos)),
	)
	return videos, nil
}

// fetchMostPopular: mostPopular 차트를 조회한다. (요청 빈도 제한 + 재시도)
func (p *Provider) fetchMostPopular(ctx context.Context, region string, limit int) ([]*youtube.Video, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	var items []*youtube.Video
	operation := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, constants.ProviderConfig.RequestTimeout)
		defer cancel()

		response, err := p.service.Videos.
			List([]string{"snippet", "statistics", "contentDetails"}).
			Chart("mostPopular").
			RegionCode(region).
			MaxResults(int64(limit)).
			Context(reqCtx).
			Do()
		if err != nil {
			if !isRetryable(err) {
				return backoff.Permanent(err)
			}
			p.logger.Warn("Trending fetch failed, will retry",
				slog.String("region", region),
				slog.Any("error", err),
			)
			return err
		}

		items = response.Items
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = constants.ProviderConfig.RetryInitialWait
	policy.MaxElapsedTime = constants.ProviderConfig.RetryMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, wrapAPIError("trending.fetch", err)
	}
	return items, nil
}

// CategoryMap: 지역의 카테고리 id→표시 이름 매핑을 반환한다.
// Valkey 캐시를 먼저 확인하고, 미스일 때만 API를 호출한다.
// 동시 미스는 singleflight로 묶어 API 호출을 한 번으로 줄인다.
func (p *Provider) CategoryMap(ctx context.Context, region string) (map[string]string, error) {
	cacheKey := constants.ProviderConfig.CategoryCachePfx + region

	var cached map[string]string
	if err := p.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	value, err, _ := p.sf.Do(cacheKey, func() (any, error) {
		var again map[string]string
		if err := p.cache.Get(ctx, cacheKey, &again); err == nil && len(again) > 0 {
			return again, nil
		}

		fetched, err := p.fetchCategoryMap(ctx, region)
		if err != nil {
			return nil, err
		}

		if err := p.cache.Set(ctx, cacheKey, fetched, constants.CacheTTL.CategoryMap); err != nil {
			p.logger.Warn("Failed to cache category map",
				slog.String("region", region),
				slog.Any("error", err),
			)
		}
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	categories, ok := value.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("invalid singleflight result type: %T", value)
	}
	return categories, nil
}

func (p *Provider) fetchCategoryMap(ctx context.Context, region string) (map[string]string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, constants.ProviderConfig.RequestTimeout)
	defer cancel()

	response, err := p.service.VideoCategories.
		List([]string{"snippet"}).
		RegionCode(region).
		Context(reqCtx).
		Do()
	if err != nil {
		return nil, wrapAPIError("categories.fetch", err)
	}

	categories := make(map[string]string, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.Title == "" {
			continue
		}
		categories[item.Id] = item.Snippet.Title
	}

	p.logger.Debug("Category map fetched",
		slog.String("region", region),
		slog.Int("categories", len(categories)),
	)
	return categories, nil
}

// isRetryable: 일시적 오류(429, 5xx)만 재시도 대상으로 분류한다.
func isRetryable(err error) bool {
	apiErr := &googleapi.Error{}
	if goerrors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	// 네트워크 수준 오류는 상태 코드가 없으므로 재시도한다.
	return true
}

func wrapAPIError(operation string, err error) error {
	apiErr := &googleapi.Error{}
	if goerrors.As(err, &apiErr) {
		return errors.NewAPIError(operation, apiErr.Code, apiErr.Message, err)
	}
	return errors.NewAPIError(operation, 0, "request failed", err)
}

// normalizeVideo: API 응답 항목 하나를 도메인 모델로 변환한다.
// API는 숨겨진 좋아요/댓글 수를 0으로 돌려주므로, 0은 값이 없는 것으로
// 취급하여 비율 표본에서 제외한다.
func normalizeVideo(item *youtube.Video, categories map[string]string) domain.Video {
	video := domain.Video{
		ID: item.Id,
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.ChannelName = item.Snippet.ChannelTitle
		video.CategoryID = item.Snippet.CategoryId
		video.CategoryName = categories[item.Snippet.CategoryId]
		video.PublishedAt = item.Snippet.PublishedAt
	}

	if item.Statistics != nil {
		video.ViewCount = int64(item.Statistics.ViewCount)
		if item.Statistics.LikeCount > 0 {
			likes := int64(item.Statistics.LikeCount)
			video.LikeCount = &likes
		}
		if item.Statistics.CommentCount > 0 {
			comments := int64(item.Statistics.CommentCount)
			video.CommentCount = &comments
		}
	}

	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		seconds := util.ParseISODuration(item.ContentDetails.Duration)
		video.DurationSeconds = &seconds
	}

	return video
}
