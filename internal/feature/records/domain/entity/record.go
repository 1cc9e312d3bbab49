// Package entity はrecordsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Exercise は1件の筋力トレーニング種目を表します。
// Recordに埋め込まれる値型で、独立したライフサイクルは持ちません。
type Exercise struct {
	Name   string   `json:"name"`
	Sets   *float64 `json:"sets,omitempty"`
	Reps   *float64 `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// Record は1件のフィットネス記録を表します。
// すべての計測値は任意入力のためポインタで表現します。
// 記録は所有ユーザーに対して追記専用で、更新・削除はできません。
type Record struct {
	Date      *time.Time `json:"date,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	Calories  *float64   `json:"calories,omitempty"`
	Protein   *float64   `json:"protein,omitempty"`
	Carbs     *float64   `json:"carbs,omitempty"`
	Fat       *float64   `json:"fat,omitempty"`
	Exercises []Exercise `json:"exercises,omitempty"`
}
