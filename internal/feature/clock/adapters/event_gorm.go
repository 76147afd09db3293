// Package adapters は打刻フィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"kintai_backend/internal/feature/clock/domain/entity"
	"kintai_backend/internal/feature/clock/usecase"
)

// eventGorm はEventRepositoryインターフェースのGORM実装です。
type eventGorm struct {
	db *gorm.DB
}

// eventGormがEventRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.EventRepository = (*eventGorm)(nil)

// NewEventRepository は指定されたgorm.DB接続でeventGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewEventRepository(db *gorm.DB) *eventGorm {
	return &eventGorm{db: db}
}

// ClockEventModel は打刻イベントのデータベースモデルです。
// (user_id, timestamp) の複合ユニークインデックスが主要な検索キーで、
// (date, timestamp) は日付別一覧用のセカンダリインデックスです。
type ClockEventModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	UserID    string  `gorm:"size:64;not null;uniqueIndex:clock_user_ts,priority:1"`
	Timestamp string  `gorm:"size:24;not null;uniqueIndex:clock_user_ts,priority:2"`
	Date      string  `gorm:"size:10;not null;index:clock_date_ts,priority:1"`
	Type      string  `gorm:"size:16;not null"`
	Location  *string `gorm:"size:255"`
	DeviceID  *string `gorm:"size:64"`
}

func (ClockEventModel) TableName() string {
	return "clock_events"
}

func toModel(e *entity.ClockEvent) ClockEventModel {
	return ClockEventModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Timestamp: e.Timestamp,
		Date:      e.Date,
		Type:      string(e.Type),
		Location:  e.Location,
		DeviceID:  e.DeviceID,
	}
}

func toEntity(m ClockEventModel) entity.ClockEvent {
	return entity.ClockEvent{
		ID:        m.ID,
		UserID:    m.UserID,
		Timestamp: m.Timestamp,
		Date:      m.Date,
		Type:      entity.ClockType(m.Type),
		Location:  m.Location,
		DeviceID:  m.DeviceID,
	}
}

// isDuplicateKey はユニーク制約違反かどうかを判定します。
// GORMのTranslateErrorによる変換に加え、PostgreSQLのエラーコード23505も直接確認します。
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create は打刻イベントをデータベースに追加します。
// 同じ(user_id, timestamp)のイベントが既に存在する場合、usecase.ErrDuplicateEventを返します。
// その他のストレージ障害はusecase.ErrStoreUnavailableでラップします。
func (r *eventGorm) Create(ctx context.Context, event *entity.ClockEvent) error {
	m := toModel(event)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrDuplicateEvent
		}
		return fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}
	return nil
}

// FindByUser はユーザーの全打刻をタイムスタンプ順で取得します。
// 打刻が存在しないユーザーの場合は空のスライスを返します。
func (r *eventGorm) FindByUser(ctx context.Context, userID string, order usecase.Order) ([]entity.ClockEvent, error) {
	orderExpr := "timestamp DESC"
	if order == usecase.Ascending {
		orderExpr = "timestamp ASC"
	}

	var rows []ClockEventModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(orderExpr).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}

	out := make([]entity.ClockEvent, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// ListByDate は指定日の全ユーザーの打刻を古い順で取得します。
func (r *eventGorm) ListByDate(ctx context.Context, date string) ([]entity.ClockEvent, error) {
	var rows []ClockEventModel
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}

	out := make([]entity.ClockEvent, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// DeleteByUser はユーザーの全打刻を削除し、削除件数を返します。
// 環境リセットツール専用です。
func (r *eventGorm) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&ClockEventModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteAll は全打刻を削除し、削除件数を返します。環境リセットツール専用です。
func (r *eventGorm) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&ClockEventModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, res.Error)
	}
	return res.RowsAffected, nil
}
