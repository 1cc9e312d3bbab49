package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitness_backend/internal/feature/records/domain/entity"
	"fitness_backend/internal/feature/records/usecase"
)

type recordGorm struct {
	db *gorm.DB
}

var _ usecase.RecordRepository = (*recordGorm)(nil)

// NewRecordRepository は指定されたgorm.DB接続でrecordGormの新しいインスタンスを生成します。
func NewRecordRepository(db *gorm.DB) *recordGorm {
	return &recordGorm{db: db}
}

// RecordModel はrecordsテーブルのGORMモデルです。
// 自動採番のIDが追記順を保存します。Exercisesは所有値としてJSONカラムに
// 直列化され、独立したテーブルやIDを持ちません。
type RecordModel struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	Date     *time.Time
	Weight   *float64
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64

	Exercises []entity.Exercise `gorm:"serializer:json"`

	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}

func toModel(userID uint, e entity.Record) RecordModel {
	return RecordModel{
		UserID:    userID,
		Date:      e.Date,
		Weight:    e.Weight,
		Calories:  e.Calories,
		Protein:   e.Protein,
		Carbs:     e.Carbs,
		Fat:       e.Fat,
		Exercises: e.Exercises,
	}
}

func toEntity(m RecordModel) entity.Record {
	return entity.Record{
		Date:      m.Date,
		Weight:    m.Weight,
		Calories:  m.Calories,
		Protein:   m.Protein,
		Carbs:     m.Carbs,
		Fat:       m.Fat,
		Exercises: m.Exercises,
	}
}

// Append は1件の記録を単一行INSERTで追記します。
// read-modify-writeを行わないため、並行追記で後勝ち上書きは発生しません。
func (r *recordGorm) Append(ctx context.Context, userID uint, record entity.Record) error {
	m := toModel(userID, record)
	return r.db.WithContext(ctx).Create(&m).Error
}

// ListByUser は指定ユーザーの記録を追記順（ID昇順）で取得します。
func (r *recordGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Record, error) {
	var rows []RecordModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
