// Package snapshot: 대시보드 뷰의 추가 전용(append-only) 영속 저장소.
//
// 스냅샷은 Valkey 리스트 하나에 JSON 문서로 쌓이며 0부터 시작하는
// 리스트 인덱스로 참조된다. 삭제 시 뒤따르는 스냅샷의 인덱스가
// 하나씩 앞으로 당겨진다.
package snapshot

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
	"github.com/kapu/trending-insights-go/pkg/errors"
)

// deleteAtLua: 리스트의 특정 인덱스 원소를 원자적으로 제거한다.
// LSET으로 묘비 값을 심은 뒤 LREM으로 걷어내는 방식이다.
const deleteAtLua = `
local value = redis.call('LINDEX', KEYS[1], ARGV[1])
if value == false then
  return 0
end
redis.call('LSET', KEYS[1], ARGV[1], '__TOMBSTONE__')
redis.call('LREM', KEYS[1], 1, '__TOMBSTONE__')
return 1
`

// Store: Valkey 리스트 기반 스냅샷 저장소
type Store struct {
	client   valkey.Client
	deleteAt *valkey.Lua
	logger   *slog.Logger
}

// NewStore: 스냅샷 저장소를 생성한다.
func NewStore(client valkey.Client, logger *slog.Logger) *Store {
	return &Store{
		client:   client,
		deleteAt: valkey.NewLuaScript(deleteAtLua),
		logger:   logger,
	}
}

// Save: 스냅샷을 리스트 끝에 추가하고 부여된 인덱스를 반환한다.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) (int, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return 0, errors.NewCacheError("marshal failed", "save", constants.SnapshotConfig.ListKey, err)
	}

	resp := s.client.Do(ctx, s.client.B().Rpush().Key(constants.SnapshotConfig.ListKey).Element(string(payload)).Build())
	if resp.Error() != nil {
		s.logger.Error("Snapshot save failed", slog.Any("error", resp.Error()))
		return 0, errors.NewCacheError("rpush failed", "save", constants.SnapshotConfig.ListKey, resp.Error())
	}

	length, err := resp.AsInt64()
	if err != nil {
		return 0, errors.NewCacheError("rpush conversion failed", "save", constants.SnapshotConfig.ListKey, err)
	}

	index := int(length) - 1
	s.logger.Info("Snapshot saved",
		slog.Int("index", index),
		slog.String("region", snap.Region),
		slog.Int("videos", len(snap.Videos)),
	)
	return index, nil
}

// List: 저장된 모든 스냅샷을 인덱스 순서대로 반환한다.
func (s *Store) List(ctx context.Context) ([]domain.Snapshot, error) {
	resp := s.client.Do(ctx, s.client.B().Lrange().Key(constants.SnapshotConfig.ListKey).Start(0).Stop(-1).Build())
	if resp.Error() != nil {
		s.logger.Error("Snapshot list failed", slog.Any("error", resp.Error()))
		return nil, errors.NewCacheError("lrange failed", "list", constants.SnapshotConfig.ListKey, resp.Error())
	}

	raw, err := resp.AsStrSlice()
	if err != nil {
		return nil, errors.NewCacheError("lrange conversion failed", "list", constants.SnapshotConfig.ListKey, err)
	}

	snapshots := make([]domain.Snapshot, 0, len(raw))
	for i, doc := range raw {
		var snap domain.Snapshot
		if err := json.Unmarshal([]byte(doc), &snap); err != nil {
			s.logger.Error("Snapshot decode failed", slog.Int("index", i), slog.Any("error", err))
			return nil, errors.NewCacheError("unmarshal failed", "list", constants.SnapshotConfig.ListKey, err)
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// Count: 저장된 스냅샷 개수를 반환한다.
func (s *Store) Count(ctx context.Context) (int, error) {
	resp := s.client.Do(ctx, s.client.B().Llen().Key(constants.SnapshotConfig.ListKey).Build())
	if resp.Error() != nil {
		return 0, errors.NewCacheError("llen failed", "count", constants.SnapshotConfig.ListKey, resp.Error())
	}

	length, err := resp.AsInt64()
	if err != nil {
		return 0, errors.NewCacheError("llen conversion failed", "count", constants.SnapshotConfig.ListKey, err)
	}

	return int(length), nil
}

// LoadAt: 주어진 인덱스의 스냅샷을 조회한다.
// 인덱스가 범위를 벗어나면 (nil, false, nil)을 반환한다.
func (s *Store) LoadAt(ctx context.Context, index int) (*domain.Snapshot, bool, error) {
	if index < 0 {
		return nil, false, nil
	}

	resp := s.client.Do(ctx, s.client.B().Lindex().Key(constants.SnapshotConfig.ListKey).Index(int64(index)).Build())
	if valkey.IsValkeyNil(resp.Error()) {
		return nil, false, nil
	}
	if resp.Error() != nil {
		s.logger.Error("Snapshot load failed", slog.Int("index", index), slog.Any("error", resp.Error()))
		return nil, false, errors.NewCacheError("lindex failed", "load", constants.SnapshotConfig.ListKey, resp.Error())
	}

	doc, err := resp.ToString()
	if err != nil {
		return nil, false, errors.NewCacheError("lindex conversion failed", "load", constants.SnapshotConfig.ListKey, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(doc), &snap); err != nil {
		s.logger.Error("Snapshot decode failed", slog.Int("index", index), slog.Any("error", err))
		return nil, false, errors.NewCacheError("unmarshal failed", "load", constants.SnapshotConfig.ListKey, err)
	}

	return &snap, true, nil
}

// DeleteAt: 주어진 인덱스의 스냅샷을 제거한다.
// 제거 이후 뒤쪽 스냅샷들의 인덱스는 하나씩 당겨진다.
// 인덱스가 범위를 벗어나면 (false, nil)을 반환한다.
func (s *Store) DeleteAt(ctx context.Context, index int) (bool, error) {
	if index < 0 {
		return false, nil
	}

	resp := s.deleteAt.Exec(ctx, s.client,
		[]string{constants.SnapshotConfig.ListKey},
		[]string{strconv.Itoa(index)},
	)
	if resp.Error() != nil {
		s.logger.Error("Snapshot delete failed", slog.Int("index", index), slog.Any("error", resp.Error()))
		return false, errors.NewCacheError("delete script failed", "delete", constants.SnapshotConfig.ListKey, resp.Error())
	}

	removed, err := resp.AsInt64()
	if err != nil {
		return false, errors.NewCacheError("delete conversion failed", "delete", constants.SnapshotConfig.ListKey, err)
	}

	if removed > 0 {
		s.logger.Info("Snapshot deleted", slog.Int("index", index))
	}
	return removed > 0, nil
}
