package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type IPlanRepository interface {
	GetPlanByID(ctx context.Context, planID uuid.UUID) (*db_models.Plan, error)
	GetAllPlans(ctx context.Context) ([]db_models.Plan, error)
	Insert(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, planID uuid.UUID, name string, priceMinor int64) (int64, error)
	Delete(ctx context.Context, planID uuid.UUID) (int64, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) GetPlanByID(ctx context.Context, planID uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Order("price_minor ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) Update(ctx context.Context, planID uuid.UUID, name string, priceMinor int64) (int64, error) {
	result := p.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("id = ?", planID).
		Updates(map[string]interface{}{"name": name, "price_minor": priceMinor})
	return result.RowsAffected, result.Error
}

// Delete removes the row for real. A soft delete would keep the name held
// by the unique index and block re-creating a plan with the same name.
func (p *PlanRepository) Delete(ctx context.Context, planID uuid.UUID) (int64, error) {
	result := p.db.WithContext(ctx).Unscoped().Delete(&db_models.Plan{}, "id = ?", planID)
	return result.RowsAffected, result.Error
}
