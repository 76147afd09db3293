package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"kintai_backend/internal/feature/clock/domain/entity"
	"kintai_backend/internal/feature/clock/usecase"
)

// mockEventRepository はテスト用のEventRepositoryモック実装です。
type mockEventRepository struct {
	createFn     func(ctx context.Context, event *entity.ClockEvent) error
	findByUserFn func(ctx context.Context, userID string, order usecase.Order) ([]entity.ClockEvent, error)
	listByDateFn func(ctx context.Context, date string) ([]entity.ClockEvent, error)
	findCalls    int
}

func (m *mockEventRepository) Create(ctx context.Context, event *entity.ClockEvent) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) FindByUser(ctx context.Context, userID string, order usecase.Order) ([]entity.ClockEvent, error) {
	m.findCalls++
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, userID, order)
	}
	return nil, nil
}

func (m *mockEventRepository) ListByDate(ctx context.Context, date string) ([]entity.ClockEvent, error) {
	if m.listByDateFn != nil {
		return m.listByDateFn(ctx, date)
	}
	return nil, nil
}

func (m *mockEventRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (m *mockEventRepository) DeleteAll(ctx context.Context) (int64, error) {
	return 0, nil
}

// TestNewCachingEventRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingEventRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "clock",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "clock",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingEventRepository(nil, tt.ttl, &mockEventRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingEventRepository_FindByUser_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部リポジトリを直接呼び出すことを検証します。
func TestCachingEventRepository_FindByUser_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.ClockEvent{
		{ID: "e1", UserID: "user001", Timestamp: "2025-12-25T09:00:00.000Z", Date: "2025-12-25", Type: entity.ClockIn},
	}

	inner := &mockEventRepository{
		findByUserFn: func(ctx context.Context, userID string, order usecase.Order) ([]entity.ClockEvent, error) {
			return expected, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingEventRepository(nil, 5*time.Minute, inner, "clock")

	events, err := repo.FindByUser(context.Background(), "user001", usecase.Descending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != len(expected) {
		t.Errorf("expected %d events, got %d", len(expected), len(events))
	}
	if inner.findCalls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.findCalls)
	}
}

// TestCachingEventRepository_FindByUser_CacheMissThenHit はキャッシュミス時にストアへフォールバックし、結果が保存されることを検証します。
func TestCachingEventRepository_FindByUser_CacheMissThenHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	ctx := context.Background()

	stored := []entity.ClockEvent{
		{ID: "e1", UserID: "user001", Timestamp: "2025-12-25T09:00:00.000Z", Date: "2025-12-25", Type: entity.ClockIn},
	}
	inner := &mockEventRepository{
		findByUserFn: func(ctx context.Context, userID string, order usecase.Order) ([]entity.ClockEvent, error) {
			return stored, nil
		},
	}

	repo := NewCachingEventRepository(rdb, 5*time.Minute, inner, "clock")
	key := "clock:user:user001:order-0"
	payload, _ := json.Marshal(stored)

	// 1回目: キャッシュミス → ストアから取得してキャッシュに保存
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, payload, 5*time.Minute).SetVal("OK")

	events, err := repo.FindByUser(ctx, "user001", usecase.Descending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Errorf("unexpected events: %v", events)
	}
	if inner.findCalls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.findCalls)
	}

	// 2回目: キャッシュヒット → ストアへは到達しない
	mock.ExpectGet(key).SetVal(string(payload))

	events, err = repo.FindByUser(ctx, "user001", usecase.Descending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Errorf("unexpected events: %v", events)
	}
	if inner.findCalls != 1 {
		t.Errorf("expected inner not to be called on cache hit, got %d calls", inner.findCalls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingEventRepository_Create_InvalidatesUserCache は書き込み成功時にユーザーのキャッシュが無効化されることを検証します。
func TestCachingEventRepository_Create_InvalidatesUserCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	ctx := context.Background()

	inner := &mockEventRepository{}
	repo := NewCachingEventRepository(rdb, 5*time.Minute, inner, "clock")

	key := "clock:user:user001:order-0"
	mock.ExpectScan(0, "clock:user:user001:*", 100).SetVal([]string{key}, 0)
	mock.ExpectDel(key).SetVal(1)

	event := &entity.ClockEvent{ID: "e1", UserID: "user001", Timestamp: "2025-12-25T09:00:00.000Z", Date: "2025-12-25", Type: entity.ClockIn}
	if err := repo.Create(ctx, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingEventRepository_Create_InnerErrorSkipsInvalidation はストア書き込み失敗時にキャッシュ操作を行わないことを検証します。
func TestCachingEventRepository_Create_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()

	inner := &mockEventRepository{
		createFn: func(ctx context.Context, event *entity.ClockEvent) error {
			return usecase.ErrDuplicateEvent
		},
	}
	repo := NewCachingEventRepository(rdb, 5*time.Minute, inner, "clock")

	event := &entity.ClockEvent{ID: "e1", UserID: "user001", Timestamp: "2025-12-25T09:00:00.000Z", Date: "2025-12-25", Type: entity.ClockIn}
	err := repo.Create(context.Background(), event)
	if !errors.Is(err, usecase.ErrDuplicateEvent) {
		t.Fatalf("expected ErrDuplicateEvent, got %v", err)
	}

	// Redisへの操作は一切期待しない
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis operations: %v", err)
	}
}

// TestCachingEventRepository_ListByDate_Passthrough は日付別一覧がキャッシュを経由しないことを検証します。
func TestCachingEventRepository_ListByDate_Passthrough(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()

	expected := []entity.ClockEvent{
		{ID: "e1", UserID: "user001", Timestamp: "2025-12-25T00:30:00.000Z", Date: "2025-12-25", Type: entity.ClockIn},
	}
	inner := &mockEventRepository{
		listByDateFn: func(ctx context.Context, date string) ([]entity.ClockEvent, error) {
			return expected, nil
		},
	}
	repo := NewCachingEventRepository(rdb, 5*time.Minute, inner, "clock")

	events, err := repo.ListByDate(context.Background(), "2025-12-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event, got %d", len(events))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis operations: %v", err)
	}
}
