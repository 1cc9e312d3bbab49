package dto

// LoginReq は/api/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
