package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kintai_backend/internal/feature/clock/domain/entity"
)

const (
	// TimestampLayout は打刻時刻のフォーマットです（ミリ秒精度、UTC固定）。
	// タイムスタンプ文字列の辞書順が時系列順と一致することに依存しています。
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	// DateLayout は打刻日（UTC基準）のフォーマットです。
	DateLayout = "2006-01-02"
)

// recordUsecase は打刻作成のユースケースを実装します。
type recordUsecase struct {
	events EventRepository
	now    func() time.Time
}

// NewRecordUsecase はrecordUsecaseの新しいインスタンスを生成します。
// nowはテスト用に注入可能な時刻取得関数で、nilの場合はtime.Nowを使用します。
func NewRecordUsecase(events EventRepository, now func() time.Time) *recordUsecase {
	if now == nil {
		now = time.Now
	}
	return &recordUsecase{events: events, now: now}
}

// Record は出勤・退勤リクエストを検証し、打刻イベントとして永続化します。
// ID・タイムスタンプ・日付はサーバー側で割り当て、完成したイベントを返します。
// 出勤と退勤の交互チェックは行いません（連続して同じ種別の打刻が可能です）。
func (u *recordUsecase) Record(ctx context.Context, userID string, clockType entity.ClockType, location, deviceID *string) (*entity.ClockEvent, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if !clockType.IsValid() {
		return nil, ErrInvalidClockType
	}

	// タイムスタンプはサーバー時刻をUTCに正規化して使用する
	ts := u.now().UTC()
	event := &entity.ClockEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Timestamp: ts.Format(TimestampLayout),
		Date:      ts.Format(DateLayout),
		Type:      clockType,
		Location:  location,
		DeviceID:  deviceID,
	}

	// タイムスタンプ衝突（ErrDuplicateEvent）はリトライせず呼び出し元へそのまま返す
	if err := u.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
