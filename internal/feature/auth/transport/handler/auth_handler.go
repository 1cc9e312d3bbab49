// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/api"
	"fitness_backend/internal/feature/auth/domain/entity"
	"fitness_backend/internal/feature/auth/transport/http/dto"
	"fitness_backend/internal/feature/auth/usecase"
	recordentity "fitness_backend/internal/feature/records/domain/entity"
	jwtmw "fitness_backend/internal/platform/jwt"
)

// ContextUser はLoadUserが解決済みユーザーを格納するginコンテキストキーです。
const ContextUser = "currentUser"

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、作成されたユーザーと署名済みトークンを返します。
	Register(ctx context.Context, email, password, name string) (*entity.User, string, error)
	// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// VerifyUser はユーザーIDでユーザーを取得します。
	VerifyUser(ctx context.Context, userID uint) (*entity.User, error)
}

// RecordsReader はユーザービューに埋め込む記録一覧の読み取りを抽象化します。
type RecordsReader interface {
	List(ctx context.Context, userID uint) ([]recordentity.Record, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth    AuthUsecase
	records RecordsReader
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からユースケースを注入します。
func NewAuthHandler(auth AuthUsecase, records RecordsReader) *AuthHandler {
	return &AuthHandler{auth: auth, records: records}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド（必須チェックのみ）
// - メール重複時は400を返却
// - 成功時は201でユーザーの公開ビューとトークンを返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register failed: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email already registered"})
			return
		}
		// ストアの生エラーはクライアントに返さない
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "registration failed"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, api.AuthResponse{
		// 新規ユーザーの記録は常に空
		User:  api.NewUserResponse(user, nil),
		Token: token,
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// メール未登録とパスワード不一致は同じ汎用エラーになります。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// どの段階で失敗したかを呼び出し元に漏らさない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	records, err := h.records.List(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("login failed to load records", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, api.AuthResponse{
		User:  api.NewUserResponse(user, records),
		Token: token,
	})
}

// LoadUser は検証済みトークンのsubjectをユーザーエンティティに解決するミドルウェアです。
// jwtmw.AuthRequiredの後段で使用します。ユーザーが存在しない場合も、
// ヘッダー不正・署名不正と同じ汎用401を返し、失敗理由を区別させません。
func (h *AuthHandler) LoadUser(c *gin.Context) {
	userID, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please authenticate"})
		return
	}

	user, err := h.auth.VerifyUser(c.Request.Context(), userID.(uint))
	if err != nil {
		slog.Warn("auth gate rejected token subject", "error", err, "remote_addr", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "please authenticate"})
		return
	}

	c.Set(ContextUser, user)
	c.Next()
}

// VerifyToken は保存済みトークンの有効確認とセッション再構築用のエンドポイントです。
// 呼び出し元自身のユーザー公開ビューを返します。
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	user := c.MustGet(ContextUser).(*entity.User)

	records, err := h.records.List(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("verify-token failed to load records", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, api.VerifyResponse{User: api.NewUserResponse(user, records)})
}
