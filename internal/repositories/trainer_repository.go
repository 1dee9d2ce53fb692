package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type ITrainerRepository interface {
	GetAll(ctx context.Context) ([]db_models.Trainer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trainer, error)
	Insert(ctx context.Context, trainer *db_models.Trainer) error
	Update(ctx context.Context, trainer *db_models.Trainer) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type TrainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) ITrainerRepository {
	return &TrainerRepository{db: db}
}

func (t *TrainerRepository) GetAll(ctx context.Context) ([]db_models.Trainer, error) {
	var trainers []db_models.Trainer
	err := t.db.WithContext(ctx).Order("name ASC").Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (t *TrainerRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trainer, error) {
	var trainer db_models.Trainer
	err := t.db.WithContext(ctx).First(&trainer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trainer, nil
}

func (t *TrainerRepository) Insert(ctx context.Context, trainer *db_models.Trainer) error {
	return t.db.WithContext(ctx).Create(trainer).Error
}

func (t *TrainerRepository) Update(ctx context.Context, trainer *db_models.Trainer) (int64, error) {
	result := t.db.WithContext(ctx).
		Model(&db_models.Trainer{}).
		Where("id = ?", trainer.ID).
		Updates(map[string]interface{}{
			"name":         trainer.Name,
			"salary_minor": trainer.SalaryMinor,
			"phone":        trainer.Phone,
			"specialties":  trainer.Specialties,
		})
	return result.RowsAffected, result.Error
}

func (t *TrainerRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := t.db.WithContext(ctx).Delete(&db_models.Trainer{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
