// Package handler は打刻フィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kintai_backend/internal/api"
	"kintai_backend/internal/feature/clock/domain/entity"
	"kintai_backend/internal/feature/clock/transport/http/dto"
	"kintai_backend/internal/feature/clock/usecase"
	jwtmw "kintai_backend/internal/platform/jwt"
)

// RecordUsecase は打刻作成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RecordUsecase interface {
	Record(ctx context.Context, userID string, clockType entity.ClockType, location, deviceID *string) (*entity.ClockEvent, error)
}

// HistoryUsecase は打刻履歴取得のユースケースインターフェースを定義します。
type HistoryUsecase interface {
	GetHistory(ctx context.Context, filter usecase.HistoryFilter) ([]entity.ClockEvent, error)
	GetDailyRecords(ctx context.Context, date string) ([]entity.ClockEvent, error)
	GetTodayStatus(ctx context.Context, userID string) (*usecase.ClockStatus, error)
}

// ClockHandler は打刻操作のHTTPリクエストを処理します。
// ユーザーIDは認証ミドルウェアが解決済みのものを信頼し、再認証は行いません。
type ClockHandler struct {
	record  RecordUsecase
	history HistoryUsecase
}

// NewClockHandler はClockHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewClockHandler(record RecordUsecase, history HistoryUsecase) *ClockHandler {
	return &ClockHandler{record: record, history: history}
}

// currentUserID は認証ミドルウェアが設定したユーザーIDをコンテキストから取得します。
func currentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// writeError はユースケースのエラー種別をHTTPステータスに対応させます。
// ストレージエラーの詳細はレスポンスに含めません。
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidClockType),
		errors.Is(err, usecase.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	case errors.Is(err, usecase.ErrDuplicateEvent):
		c.JSON(http.StatusConflict, api.Error("clock event conflict"))
	case errors.Is(err, usecase.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, api.Error("service temporarily unavailable"))
	default:
		c.JSON(http.StatusInternalServerError, api.Error("internal server error"))
	}
}

// ClockIn は出勤打刻APIエンドポイントを処理します。
//
// エンドポイント例:
// POST /clock-in  {"location":"Tokyo Office","deviceId":"device-123"}
func (h *ClockHandler) ClockIn(c *gin.Context) {
	h.punch(c, entity.ClockIn)
}

// ClockOut は退勤打刻APIエンドポイントを処理します。
func (h *ClockHandler) ClockOut(c *gin.Context) {
	h.punch(c, entity.ClockOut)
}

// punch は打刻リクエストの共通処理です。
// - 認証済みユーザーIDをコンテキストから取得（なければ401）
// - 省略可能なボディをバインド（不正なJSONは400）
// - 成功時は作成されたイベントを201で返却
func (h *ClockHandler) punch(c *gin.Context, clockType entity.ClockType) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Error("authentication required"))
		return
	}

	var req dto.ClockReq
	// ボディなしの打刻を許可する
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("clock request validation failed", "error", err, "user_id", userID)
			c.JSON(http.StatusBadRequest, api.Error("invalid request"))
			return
		}
	}

	event, err := h.record.Record(c.Request.Context(), userID, clockType, optional(req.Location), optional(req.DeviceID))
	if err != nil {
		slog.Warn("clock record failed", "error", err, "user_id", userID, "type", string(clockType))
		writeError(c, err)
		return
	}

	slog.Info("clock event recorded", "user_id", userID, "type", string(clockType), "event_id", event.ID)
	c.JSON(http.StatusCreated, api.OK(dto.FromEntity(event)))
}

// optional は空文字を未設定（nil）として扱います。
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetRecords は認証済みユーザーの打刻履歴を新しい順で返します。
//
// エンドポイント例:
// GET /records?type=clock-in&startDate=2025-12-01&endDate=2025-12-31
func (h *ClockHandler) GetRecords(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Error("authentication required"))
		return
	}

	filter := usecase.HistoryFilter{
		UserID:    userID,
		Type:      c.Query("type"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	events, err := h.history.GetHistory(c.Request.Context(), filter)
	if err != nil {
		slog.Warn("history query failed", "error", err, "user_id", userID)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.FromEntities(events)))
}

// GetDailyRecords は指定日の全ユーザーの打刻を古い順で返します。
//
// エンドポイント例:
// GET /records/daily?date=2025-12-25
func (h *ClockHandler) GetDailyRecords(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, api.Error("authentication required"))
		return
	}

	events, err := h.history.GetDailyRecords(c.Request.Context(), c.Query("date"))
	if err != nil {
		slog.Warn("daily records query failed", "error", err, "date", c.Query("date"))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.FromEntities(events)))
}

// GetStatus は認証済みユーザーの当日の勤務状態を返します。
//
// エンドポイント例:
// GET /status
func (h *ClockHandler) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Error("authentication required"))
		return
	}

	status, err := h.history.GetTodayStatus(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("status query failed", "error", err, "user_id", userID)
		writeError(c, err)
		return
	}

	out := dto.StatusResponse{ClockedIn: status.ClockedIn}
	if status.LastEvent != nil {
		last := dto.FromEntity(status.LastEvent)
		out.LastEvent = &last
	}
	c.JSON(http.StatusOK, api.OK(out))
}
