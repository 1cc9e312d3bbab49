// Package usecase はフィットネス記録操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"fitness_backend/internal/feature/records/domain/entity"
)

// RecordRepository はフィットネス記録の永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RecordRepository interface {
	// ListByUser は指定ユーザーの全記録を追記順で取得します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Record, error)

	// Append は1件の記録をアトミックに追記します。
	// 単一行INSERTのため、同一ユーザーへの並行追記が互いを上書きすることはありません。
	Append(ctx context.Context, userID uint, record entity.Record) error
}

// recordsUsecase はフィットネス記録のユースケースを定義します。
type recordsUsecase struct {
	records RecordRepository
}

// NewRecordsUsecase はrecordsUsecaseの新しいインスタンスを生成します。
func NewRecordsUsecase(records RecordRepository) *recordsUsecase {
	return &recordsUsecase{records: records}
}

// List は指定ユーザーの全記録を追記順で返します。
func (ru *recordsUsecase) List(ctx context.Context, userID uint) ([]entity.Record, error) {
	rs, err := ru.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return rs, nil
}

// Append は記録を追記し、更新後の全記録を追記順で返します。
// 記録の構造的な検証は行いません。どのフィールドも省略可能です。
func (ru *recordsUsecase) Append(ctx context.Context, userID uint, record entity.Record) ([]entity.Record, error) {
	if err := ru.records.Append(ctx, userID, record); err != nil {
		return nil, fmt.Errorf("failed to append record: %w", err)
	}

	rs, err := ru.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return rs, nil
}
