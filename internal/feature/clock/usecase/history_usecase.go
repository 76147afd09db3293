package usecase

import (
	"context"
	"time"

	"kintai_backend/internal/feature/clock/domain/entity"
)

// TypeAll は種別フィルタなしを表すフィルタ値です。
const TypeAll = "all"

// HistoryFilter は打刻履歴取得の絞り込み条件です。
// UserID以外は省略可能で、省略されたフィルタは適用されません。
type HistoryFilter struct {
	UserID    string // 必須。対象ユーザー
	Type      string // "clock-in" / "clock-out" / "all"（空文字は"all"と同じ）
	StartDate string // YYYY-MM-DD、この日を含む
	EndDate   string // YYYY-MM-DD、この日を含む
}

// ClockStatus はユーザーの当日の勤務状態です。
type ClockStatus struct {
	ClockedIn bool               // 当日の最新打刻が出勤であればtrue
	LastEvent *entity.ClockEvent // 当日の最新打刻（打刻がなければnil）
}

// historyUsecase は打刻履歴取得のユースケースを実装します。
type historyUsecase struct {
	events EventRepository
	now    func() time.Time
}

// NewHistoryUsecase はhistoryUsecaseの新しいインスタンスを生成します。
// nowはテスト用に注入可能な時刻取得関数で、nilの場合はtime.Nowを使用します。
func NewHistoryUsecase(events EventRepository, now func() time.Time) *historyUsecase {
	if now == nil {
		now = time.Now
	}
	return &historyUsecase{events: events, now: now}
}

// validFilterType は履歴フィルタの種別指定が妥当かどうかを返します。
func validFilterType(t string) bool {
	return t == "" || t == TypeAll || entity.ClockType(t).IsValid()
}

// validDate はYYYY-MM-DD形式の日付かどうかを返します。
func validDate(date string) bool {
	if len(date) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// GetHistory はユーザーの打刻履歴を新しい順で返し、指定されたフィルタを適用します。
// フィルタはストアから取得した後にメモリ上で適用され、並び順を変えることはありません。
// 該当する打刻がない場合は空のスライスを返します（エラーではありません）。
func (u *historyUsecase) GetHistory(ctx context.Context, filter HistoryFilter) ([]entity.ClockEvent, error) {
	if filter.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if !validFilterType(filter.Type) {
		return nil, ErrInvalidClockType
	}
	if filter.StartDate != "" && !validDate(filter.StartDate) {
		return nil, ErrInvalidDate
	}
	if filter.EndDate != "" && !validDate(filter.EndDate) {
		return nil, ErrInvalidDate
	}

	events, err := u.events.FindByUser(ctx, filter.UserID, Descending)
	if err != nil {
		return nil, err
	}

	// フィルタ適用順: 種別 → 日付範囲。いずれも並び順を保持する。
	// 日付範囲は日単位で比較する（Dateは常にTimestampから導出されるため、
	// 辞書順比較がそのまま時系列比較になる）。
	out := make([]entity.ClockEvent, 0, len(events))
	for _, ev := range events {
		if filter.Type != "" && filter.Type != TypeAll && string(ev.Type) != filter.Type {
			continue
		}
		if filter.StartDate != "" && ev.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && ev.Date > filter.EndDate {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// GetDailyRecords は指定日の全ユーザーの打刻を古い順で返します。
func (u *historyUsecase) GetDailyRecords(ctx context.Context, date string) ([]entity.ClockEvent, error) {
	if !validDate(date) {
		return nil, ErrInvalidDate
	}
	return u.events.ListByDate(ctx, date)
}

// GetTodayStatus はユーザーの当日（UTC基準）の勤務状態を返します。
func (u *historyUsecase) GetTodayStatus(ctx context.Context, userID string) (*ClockStatus, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	events, err := u.events.FindByUser(ctx, userID, Descending)
	if err != nil {
		return nil, err
	}

	today := u.now().UTC().Format(DateLayout)
	for i := range events {
		if events[i].Date == today {
			// 降順取得なので最初に見つかった当日の打刻が最新
			return &ClockStatus{
				ClockedIn: events[i].Type == entity.ClockIn,
				LastEvent: &events[i],
			}, nil
		}
	}
	return &ClockStatus{}, nil
}
