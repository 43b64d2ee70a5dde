package snapshot

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/valkey-io/valkey-go"

	"github.com/kapu/trending-insights-go/internal/constants"
	"github.com/kapu/trending-insights-go/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mini := miniredis.RunT(t)
	host, portStr, err := net.SplitHostPort(mini.Addr())
	if err != nil {
		t.Fatalf("failed to split address: %v", err)
	}
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:       []string{net.JoinHostPort(host, portStr)},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("failed to create valkey client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		t.Fatalf("failed to ping miniredis: %v", err)
	}

	t.Cleanup(func() {
		client.Close()
		mini.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(client, logger)
}

func strPtr(s string) *string { return &s }

func testSnapshot(region string) *domain.Snapshot {
	return &domain.Snapshot{
		SavedAt:   "2024-03-11T12:00:00Z",
		Region:    region,
		StartDate: strPtr("2024-03-01"),
		EndDate:   nil,
		Category:  constants.CategoryAll,
		Metrics: &domain.Metrics{
			Region:               region,
			TotalVideos:          2,
			TotalViews:           900,
			AvgViews:             450,
			MedianViews:          450,
			TopChannelByVideos:   "SpaceDaily",
			TopChannelVideoCount: 1,
			TopChannelByViews:    "SpaceDaily",
			TopChannelTotalViews: 500,
		},
		Videos: []domain.Video{
			{ID: "v1", Title: "Rocket Launch Recap", ChannelName: "SpaceDaily", CategoryName: "Science & Technology", ViewCount: 500, PublishedAt: "2024-03-10T08:00:00Z"},
			{ID: "v2", Title: "Lo-fi Beats", ChannelName: "ChillWave", CategoryName: "Music", ViewCount: 400, PublishedAt: "2024-03-01T08:00:00Z"},
		},
	}
}

func TestStoreSaveAssignsSequentialIndexes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for want := 0; want < 3; want++ {
		index, err := store.Save(ctx, testSnapshot("US"))
		if err != nil {
			t.Fatalf("save %d failed: %v", want, err)
		}
		if index != want {
			t.Fatalf("save returned index %d, want %d", index, want)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := testSnapshot("US")
	index, err := store.Save(ctx, original)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, found, err := store.LoadAt(ctx, index)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !found {
		t.Fatalf("expected snapshot at index %d", index)
	}

	if loaded.Region != original.Region || loaded.SavedAt != original.SavedAt {
		t.Fatalf("metadata mismatch: %+v", loaded)
	}
	if loaded.StartDate == nil || *loaded.StartDate != "2024-03-01" {
		t.Fatalf("start date mismatch: %v", loaded.StartDate)
	}
	if loaded.EndDate != nil {
		t.Fatalf("expected nil end date, got %v", *loaded.EndDate)
	}
	if loaded.Category != constants.CategoryAll {
		t.Fatalf("category mismatch: %q", loaded.Category)
	}
	if loaded.Metrics == nil || loaded.Metrics.TotalViews != 900 {
		t.Fatalf("metrics mismatch: %+v", loaded.Metrics)
	}
	if len(loaded.Videos) != 2 || loaded.Videos[0].ID != "v1" || loaded.Videos[1].ChannelName != "ChillWave" {
		t.Fatalf("videos mismatch: %+v", loaded.Videos)
	}
}

func TestStoreLoadAtOutOfRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, found, err := store.LoadAt(ctx, 0); err != nil || found {
		t.Fatalf("empty store LoadAt(0) = found=%v err=%v, want miss", found, err)
	}

	if _, err := store.Save(ctx, testSnapshot("US")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, found, err := store.LoadAt(ctx, 5); err != nil || found {
		t.Fatalf("LoadAt(5) = found=%v err=%v, want miss", found, err)
	}
	if _, found, err := store.LoadAt(ctx, -1); err != nil || found {
		t.Fatalf("LoadAt(-1) = found=%v err=%v, want miss", found, err)
	}
}

// 삭제 후 뒤쪽 스냅샷의 인덱스가 당겨지는지 확인한다.
func TestStoreDeleteAtReindexes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	regions := []string{"US", "JP", "GB"}
	for _, region := range regions {
		if _, err := store.Save(ctx, testSnapshot(region)); err != nil {
			t.Fatalf("save %s failed: %v", region, err)
		}
	}

	removed, err := store.DeleteAt(ctx, 0)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !removed {
		t.Fatalf("expected deletion at index 0")
	}

	loaded, found, err := store.LoadAt(ctx, 0)
	if err != nil || !found {
		t.Fatalf("LoadAt(0) after delete = found=%v err=%v", found, err)
	}
	if loaded.Region != "JP" {
		t.Fatalf("index 0 after delete = %q, want JP", loaded.Region)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("count after delete = %d, want 2", count)
	}
}

func TestStoreDeleteAtOutOfRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	removed, err := store.DeleteAt(ctx, 3)
	if err != nil {
		t.Fatalf("delete on empty store failed: %v", err)
	}
	if removed {
		t.Fatalf("expected no deletion on empty store")
	}
}
