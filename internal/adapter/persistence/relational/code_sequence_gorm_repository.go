package relational

import (
	"context"

	"printhub/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CodeSequenceGormRepository keeps named counters in code_sequences. Advance holds a
// row lock for the read-modify-write.
type CodeSequenceGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICodeSequence = (*CodeSequenceGormRepository)(nil)

func NewCodeSequenceGormRepository(db *gorm.DB) *CodeSequenceGormRepository {
	return &CodeSequenceGormRepository{db: db}
}

func (r *CodeSequenceGormRepository) Advance(ctx context.Context, key string, floor int) (int, error) {
	var next int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := codeSequenceModel{Name: key}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return err
		}

		var row codeSequenceModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("name = ?", key).Take(&row).Error; err != nil {
			return err
		}
		next = max(row.Value, int64(floor)) + 1
		return tx.Model(&codeSequenceModel{}).Where("name = ?", key).Update("value", next).Error
	})
	if err != nil {
		return 0, err
	}
	return int(next), nil
}
