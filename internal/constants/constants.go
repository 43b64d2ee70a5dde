// Package constants: 서비스 전역 튜닝 값 모음
package constants

import "time"

// TrendingDefaults 는 패키지 변수다.
var TrendingDefaults = struct {
	Region   string
	Limit    int
	MinLimit int
	MaxLimit int
}{
	Region:   "US",
	Limit:    25,
	MinLimit: 1,
	MaxLimit: 50, // YouTube API 상한
}

// CacheTTL 는 패키지 변수다.
var CacheTTL = struct {
	CategoryMap time.Duration
}{
	CategoryMap: 6 * time.Hour, // 카테고리 id→이름 매핑은 거의 변하지 않음
}

// ProviderConfig 는 패키지 변수다.
var ProviderConfig = struct {
	RequestTimeout     time.Duration
	RetryMaxElapsed    time.Duration
	RetryInitialWait   time.Duration
	RateLimitInterval  time.Duration
	RateLimitBurst     int
	CategoryCachePfx   string
}{
	RequestTimeout:    10 * time.Second,
	RetryMaxElapsed:   20 * time.Second,
	RetryInitialWait:  500 * time.Millisecond,
	RateLimitInterval: 100 * time.Millisecond, // 초당 10 요청
	RateLimitBurst:    1,
	CategoryCachePfx:  "trending:categories:",
}

// ValkeyConfig 는 패키지 변수다.
var ValkeyConfig = struct {
	ReadyTimeout      time.Duration
	DialTimeout       time.Duration
	ConnWriteTimeout  time.Duration
	BlockingPoolSize  int
	PipelineMultiplex int
}{
	ReadyTimeout:      5 * time.Second,
	DialTimeout:       5 * time.Second,
	ConnWriteTimeout:  5 * time.Second,
	BlockingPoolSize:  100,
	PipelineMultiplex: 4,
}

// SnapshotConfig 는 패키지 변수다.
var SnapshotConfig = struct {
	ListKey string
}{
	ListKey: "trending:snapshots",
}

// ServerTimeout 는 패키지 변수다.
var ServerTimeout = struct {
	ReadHeader     time.Duration
	Read           time.Duration
	Write          time.Duration
	Idle           time.Duration
	Shutdown       time.Duration
	MaxHeaderBytes int
}{
	ReadHeader:     5 * time.Second,
	Read:           30 * time.Second,
	Write:          30 * time.Second,
	Idle:           60 * time.Second,
	Shutdown:       10 * time.Second,
	MaxHeaderBytes: 1 << 20,
}

// AppTimeout 는 패키지 변수다.
var AppTimeout = struct {
	Build time.Duration
}{
	Build: 30 * time.Second,
}

// ServerConfig 는 패키지 변수다.
var ServerConfig = struct {
	TrustedProxies []string
}{
	TrustedProxies: []string{"127.0.0.1"},
}

// QueryLimits 는 패키지 변수다.
var QueryLimits = struct {
	MaxQueryLength   int
	MinFuzzyTokenLen int
	EngagementTopN   int
}{
	MaxQueryLength:   500,
	MinFuzzyTokenLen: 4, // 이보다 짧은 토큰은 카테고리 퍼지 매칭에서 제외
	EngagementTopN:   3,
}

// CategoryAll: 카테고리 필터가 비활성화 상태임을 나타내는 센티널 값.
// 스냅샷 레이아웃에 그대로 저장되므로 변경하면 기존 데이터와 호환되지 않는다.
const CategoryAll = "__ALL__"
