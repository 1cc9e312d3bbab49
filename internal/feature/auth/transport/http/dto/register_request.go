// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/api/registerエンドポイントのリクエストボディを表します。
// 必須チェックのみを行います。メール形式やパスワード強度は検証しません。
type RegisterReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}
