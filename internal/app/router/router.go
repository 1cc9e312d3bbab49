package router

import (
	authhandler "fitness_backend/internal/feature/auth/transport/handler"
	recordhandler "fitness_backend/internal/feature/records/transport/handler"
	jwtmw "fitness_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, records *recordhandler.RecordHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// 認証不要
	// 新規ユーザー登録
	api.POST("/register", auth.Register)
	// ログイン（JWT 発行）
	api.POST("/login", auth.Login)

	// 認証必須のルート
	// AuthRequired が署名を検証し、LoadUser が subject をユーザーに解決する
	// → どちらで失敗しても同じ汎用401になる
	protected := api.Group("/")
	protected.Use(jwtmw.AuthRequired(), auth.LoadUser)
	{
		protected.GET("/verify-token", auth.VerifyToken)
		protected.GET("/records", records.List)
		protected.POST("/records", records.Append)
	}

	return r
}
