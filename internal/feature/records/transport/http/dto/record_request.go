// Package dto はrecordsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"fitness_backend/internal/feature/records/domain/entity"
)

// ExerciseReq は記録追記リクエスト内の1種目を表します。
type ExerciseReq struct {
	Name   string   `json:"name"`
	Sets   *float64 `json:"sets"`
	Reps   *float64 `json:"reps"`
	Weight *float64 `json:"weight"`
}

// RecordReq はPOST /api/recordsのリクエストボディを表します。
// どのフィールドも省略可能で、構造以上の検証は行いません。
type RecordReq struct {
	Date      *time.Time    `json:"date"`
	Weight    *float64      `json:"weight"`
	Calories  *float64      `json:"calories"`
	Protein   *float64      `json:"protein"`
	Carbs     *float64      `json:"carbs"`
	Fat       *float64      `json:"fat"`
	Exercises []ExerciseReq `json:"exercises"`
}

// ToEntity はリクエストをドメインエンティティに変換します。
func (r RecordReq) ToEntity() entity.Record {
	var exercises []entity.Exercise
	for _, e := range r.Exercises {
		exercises = append(exercises, entity.Exercise{
			Name:   e.Name,
			Sets:   e.Sets,
			Reps:   e.Reps,
			Weight: e.Weight,
		})
	}
	return entity.Record{
		Date:      r.Date,
		Weight:    r.Weight,
		Calories:  r.Calories,
		Protein:   r.Protein,
		Carbs:     r.Carbs,
		Fat:       r.Fat,
		Exercises: exercises,
	}
}
