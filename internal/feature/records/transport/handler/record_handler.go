// Package handler はrecordsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/api"
	"fitness_backend/internal/feature/records/domain/entity"
	"fitness_backend/internal/feature/records/transport/http/dto"
	jwtmw "fitness_backend/internal/platform/jwt"
)

// RecordsUsecase はフィットネス記録操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RecordsUsecase interface {
	// List は指定ユーザーの全記録を追記順で返します。
	List(ctx context.Context, userID uint) ([]entity.Record, error)
	// Append は記録を追記し、更新後の全記録を返します。
	Append(ctx context.Context, userID uint, record entity.Record) ([]entity.Record, error)
}

// RecordHandler はフィットネス記録のHTTPリクエストを処理します。
// 認証ゲート（AuthRequired + LoadUser）の内側でのみルーティングされる前提です。
type RecordHandler struct {
	uc RecordsUsecase
}

// NewRecordHandler は指定されたusecaseでRecordHandlerの新しいインスタンスを生成します。
func NewRecordHandler(uc RecordsUsecase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// List は呼び出し元ユーザーの全記録を追記順のJSON配列で返します。
//
// エンドポイント: GET /api/records
func (h *RecordHandler) List(c *gin.Context) {
	userID := c.MustGet(jwtmw.ContextUserID).(uint)

	records, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list records", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load records"})
		return
	}

	if records == nil {
		records = make([]entity.Record, 0)
	}
	c.JSON(http.StatusOK, records)
}

// Append は1件の記録を呼び出し元ユーザーに追記し、更新後の全記録を返します。
//
// エンドポイント: POST /api/records
func (h *RecordHandler) Append(c *gin.Context) {
	userID := c.MustGet(jwtmw.ContextUserID).(uint)

	var req dto.RecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("append record validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	records, err := h.uc.Append(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		// ストアの生エラーはクライアントに返さない
		slog.Error("failed to append record", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "failed to save record"})
		return
	}

	slog.Info("record appended", "user_id", userID, "total", len(records))
	c.JSON(http.StatusCreated, records)
}
