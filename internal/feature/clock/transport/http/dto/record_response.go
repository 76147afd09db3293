package dto

import "kintai_backend/internal/feature/clock/domain/entity"

// RecordResponse は打刻イベントのレスポンスDTOです。
// 省略可能なフィールドは未設定の場合JSONから除外されます。
type RecordResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Timestamp string  `json:"timestamp"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Location  *string `json:"location,omitempty"`
	DeviceID  *string `json:"deviceId,omitempty"`
}

// StatusResponse は当日の勤務状態のレスポンスDTOです。
type StatusResponse struct {
	ClockedIn bool            `json:"clockedIn"`
	LastEvent *RecordResponse `json:"lastEvent,omitempty"`
}

// FromEntity はドメインエンティティをレスポンスDTOに変換します。
func FromEntity(e *entity.ClockEvent) RecordResponse {
	return RecordResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Timestamp: e.Timestamp,
		Date:      e.Date,
		Type:      string(e.Type),
		Location:  e.Location,
		DeviceID:  e.DeviceID,
	}
}

// FromEntities はエンティティのスライスをレスポンスDTOのスライスに変換します。
// 空の入力でも常に空スライスを返します（nilにはなりません）。
func FromEntities(events []entity.ClockEvent) []RecordResponse {
	out := make([]RecordResponse, 0, len(events))
	for i := range events {
		out = append(out, FromEntity(&events[i]))
	}
	return out
}
