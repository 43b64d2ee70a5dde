// Package dashboard: 현재 데이터셋 컨텍스트를 관리하는 오케스트레이션 계층.
//
// 로드, 필터 변경, 질의 응답, 스냅샷, CSV 내보내기가 전부 이 계층을
// 거친다. 데이터셋은 원자적으로 교체되는 포인터 하나로 유지되므로
// 어떤 읽기도 부분적으로 갱신된 상태를 보지 않는다.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"log/slog"

	"github.com/kapu/trending-insights-go/internal/adapter"
	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/internal/service/analytics"
	"github.com/kapu/trending-insights-go/internal/service/resolver"
	"github.com/kapu/trending-insights-go/internal/util"
	"github.com/kapu/trending-insights-go/pkg/errors"
)

// VideoProvider: 트렌딩 영상 공급자 계약
type VideoProvider interface {
	FetchTrending(ctx context.Context, region string, limit int) ([]domain.Video, error)
}

// SnapshotStore: 스냅샷 영속 저장소 계약
type SnapshotStore interface {
	Save(ctx context.Context, snap *domain.Snapshot) (int, error)
	List(ctx context.Context) ([]domain.Snapshot, error)
	LoadAt(ctx context.Context, index int) (*domain.Snapshot, bool, error)
	DeleteAt(ctx context.Context, index int) (bool, error)
}

// Service: 대시보드 상태와 그에 대한 모든 연산
type Service struct {
	provider  VideoProvider
	store     SnapshotStore
	resolver  *resolver.Resolver
	formatter *adapter.AnswerFormatter
	logger    *slog.Logger

	current   atomic.Pointer[domain.Dataset]
	stateMu   sync.Mutex // 데이터셋 교체 직렬화
	requestID atomic.Int64
	appliedID int64 // stateMu 보호
	loads     singleflight.Group
	now       func() time.Time
}

// Dependencies: 서비스 생성에 필요한 의존성 묶음
type Dependencies struct {
	Provider  VideoProvider
	Store     SnapshotStore
	Resolver  *resolver.Resolver
	Formatter *adapter.AnswerFormatter
	Logger    *slog.Logger
}

// NewService: 대시보드 서비스를 생성한다.
func NewService(deps Dependencies) (*Service, error) {
	if deps.Provider == nil {
		return nil, fmt.Errorf("video provider is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	if deps.Resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if deps.Formatter == nil {
		return nil, fmt.Errorf("answer formatter is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &Service{
		provider:  deps.Provider,
		store:     deps.Store,
		resolver:  deps.Resolver,
		formatter: deps.Formatter,
		logger:    deps.Logger,
		now:       time.Now,
	}, nil
}

// Current: 현재 데이터셋을 반환한다. 로드 전에는 nil이다.
func (s *Service) Current() *domain.Dataset {
	return s.current.Load()
}

// Load: 지역의 트렌딩 영상을 가져와 대시보드 데이터셋을 교체한다.
// 같은 지역/개수의 동시 요청은 singleflight로 묶인다. 각 로드는
// 단조 증가하는 요청 id를 받으며, 더 새로운 로드가 이미 반영된 뒤에
// 완료된 오래된 로드는 버려진다. 실패는 기존 데이터셋을 건드리지 않는다.
func (s *Service) Load(ctx context.Context, region string, limit int) (*domain.Dataset, error) {
	id := s.requestID.Add(1)

	key := fmt.Sprintf("%s:%d", region, limit)
	value, err, _ := s.loads.Do(key, func() (any, error) {
		return s.provider.FetchTrending(ctx, region, limit)
	})
	if err != nil {
		s.logger.Error("Dashboard load failed",
			slog.String("region", region),
			slog.Int("limit", limit),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to load trending data: %w", err)
	}

	videos, ok := value.([]domain.Video)
	if !ok {
		return nil, fmt.Errorf("invalid singleflight result type: %T", value)
	}

	ds := &domain.Dataset{
		Region:   region,
		Raw:      videos,
		Category: constants.CategoryAll,
		Filtered: videos,
		Metrics:  analytics.Aggregate(videos, region),
		LoadedAt: s.now(),
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if id < s.appliedID {
		s.logger.Debug("Discarding superseded load",
			slog.Int64("request_id", id),
			slog.Int64("applied_id", s.appliedID),
		)
		return s.current.Load(), nil
	}
	s.appliedID = id
	s.current.Store(ds)

	s.logger.Info("Dashboard loaded",
		slog.String("region", region),
		slog.Int("videos", len(videos)),
		slog.Int64("request_id", id),
	)
	return ds, nil
}

// SetFilter: 보관 중인 원본 목록에서 필터 결과와 메트릭을 다시 계산한다.
// 빈 문자열 날짜는 해당 경계 없음, 빈 카테고리는 전체를 뜻한다.
// 검증 실패나 데이터 부재 시 기존 데이터셋은 그대로 유지된다.
func (s *Service) SetFilter(ctx context.Context, startDate, endDate, category string) (*domain.Dataset, error) {
	if startDate != "" && !util.IsValidDate(startDate) {
		return nil, errors.NewValidationError("start date must be YYYY-MM-DD", "startDate")
	}
	if endDate != "" && !util.IsValidDate(endDate) {
		return nil, errors.NewValidationError("end date must be YYYY-MM-DD", "endDate")
	}
	if category == "" {
		category = constants.CategoryAll
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	prev := s.current.Load()
	if prev == nil {
		return nil, errors.NewServiceError("dashboard", "filter", fmt.Errorf("no dataset loaded"))
	}

	filtered := analytics.Filter(prev.Raw, startDate, endDate, category)
	ds := &domain.Dataset{
		Region:    prev.Region,
		Raw:       prev.Raw,
		StartDate: startDate,
		EndDate:   endDate,
		Category:  category,
		Filtered:  filtered,
		Metrics:   analytics.Aggregate(filtered, prev.Region),
		LoadedAt:  prev.LoadedAt,
	}
	s.current.Store(ds)

	s.logger.Info("Dashboard filter applied",
		slog.String("start_date", startDate),
		slog.String("end_date", endDate),
		slog.String("category", category),
		slog.Int("matched", len(filtered)),
	)
	return ds, nil
}

// ChatResult: 채팅 한 건의 처리 결과.
// 제어 명령이면 Loaded가 참이고 적용된 지역/개수가 채워진다.
type ChatResult struct {
	Reply  string `json:"reply"`
	Loaded bool   `json:"loaded"`
	Region string `json:"region,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// Ask: 자유 텍스트 메시지를 처리한다.
// 제어 명령은 로드 경로로, 그 외에는 현재 데이터셋에 대한 질의로 해석한다.
func (s *Service) Ask(ctx context.Context, text string) (*ChatResult, error) {
	return s.AskWithDefaults(ctx, text, "", 0)
}

// AskWithDefaults: Ask와 같되, 제어 명령에 지역/개수 언급이 없을 때 쓸
// 기본값을 호출자가 지정한다.
func (s *Service) AskWithDefaults(ctx context.Context, text, defaultRegion string, defaultLimit int) (*ChatResult, error) {
	if resolver.IsControlCommand(text) {
		req := resolver.ParseLoadRequestWith(text, defaultRegion, defaultLimit)
		ds, err := s.Load(ctx, req.Region, req.Limit)
		if err != nil {
			return nil, err
		}

		reply := s.formatter.LoadConfirmation(req.Limit, req.Region)
		if !ds.HasData() {
			reply = adapter.MsgNoTrendingVideos
		}
		return &ChatResult{
			Reply:  reply,
			Loaded: true,
			Region: req.Region,
			Limit:  req.Limit,
		}, nil
	}

	reply := s.resolver.Resolve(text, s.current.Load(), s.now())
	return &ChatResult{Reply: reply}, nil
}

// SaveSnapshot: 현재 데이터셋 뷰를 저장소에 추가하고 부여된 인덱스를 반환한다.
func (s *Service) SaveSnapshot(ctx context.Context) (int, error) {
	ds := s.current.Load()
	if !ds.HasData() {
		return 0, errors.NewValidationError(adapter.MsgLoadBeforeSnapshot, "dataset")
	}

	snap := &domain.Snapshot{
		SavedAt:  s.now().UTC().Format(time.RFC3339),
		Region:   ds.Region,
		Category: ds.Category,
		Metrics:  ds.Metrics,
		Videos:   ds.Filtered,
	}
	if ds.StartDate != "" {
		start := ds.StartDate
		snap.StartDate = &start
	}
	if ds.EndDate != "" {
		end := ds.EndDate
		snap.EndDate = &end
	}
	if snap.Category == "" {
		snap.Category = constants.CategoryAll
	}

	return s.store.Save(ctx, snap)
}

// Snapshots: 저장된 스냅샷 목록을 인덱스 순서대로 반환한다.
func (s *Service) Snapshots(ctx context.Context) ([]domain.Snapshot, error) {
	return s.store.List(ctx)
}

// LoadSnapshot: 저장된 뷰로 대시보드 데이터셋을 되살린다.
// 스냅샷의 영상 목록이 새 원본이 되며, 반영 시점 이후에 완료되는
// 더 오래된 로드가 덮어쓰지 못하도록 요청 id를 갱신한다.
func (s *Service) LoadSnapshot(ctx context.Context, index int) (*domain.Dataset, bool, error) {
	snap, found, err := s.store.LoadAt(ctx, index)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	ds := &domain.Dataset{
		Region:   snap.Region,
		Raw:      snap.Videos,
		Category: snap.Category,
		Filtered: snap.Videos,
		Metrics:  snap.Metrics,
		LoadedAt: s.now(),
	}
	if snap.StartDate != nil {
		ds.StartDate = *snap.StartDate
	}
	if snap.EndDate != nil {
		ds.EndDate = *snap.EndDate
	}
	if ds.Metrics == nil {
		ds.Metrics = analytics.Aggregate(ds.Filtered, ds.Region)
	}

	s.stateMu.Lock()
	s.appliedID = s.requestID.Add(1)
	s.current.Store(ds)
	s.stateMu.Unlock()

	s.logger.Info("Snapshot restored",
		slog.Int("index", index),
		slog.String("region", ds.Region),
		slog.Int("videos", len(ds.Filtered)),
	)
	return ds, true, nil
}

// DeleteSnapshot: 주어진 인덱스의 스냅샷을 제거한다.
func (s *Service) DeleteSnapshot(ctx context.Context, index int) (bool, error) {
	return s.store.DeleteAt(ctx, index)
}
