package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/models/response_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type PlanServiceInterface interface {
	GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, request request_models.UpdatePlanCatalogRequest) error
	DeletePlan(ctx context.Context, planID uuid.UUID) error
}

type PlanService struct {
	planRepo    repositories.IPlanRepository
	profileRepo repositories.ProfileRepository
}

func NewPlanService(planRepo repositories.IPlanRepository, profileRepo repositories.ProfileRepository) PlanServiceInterface {
	return &PlanService{
		planRepo:    planRepo,
		profileRepo: profileRepo,
	}
}

func (p *PlanService) GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, planToResponse(plan))
	}
	return result, nil
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	plan := &db_models.Plan{
		Name:       request.Name,
		PriceMinor: request.PriceMinor,
		Currency:   request.Currency,
	}
	if plan.Currency == "" {
		plan.Currency = "USD"
	}
	if len(request.Features) > 0 {
		plan.Features = datatypes.JSON(request.Features)
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPlanNameTaken
		}
		return nil, utils.ErrDatabaseError
	}

	response := planToResponse(*plan)
	return &response, nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID uuid.UUID, request request_models.UpdatePlanCatalogRequest) error {
	affected, err := p.planRepo.Update(ctx, planID, request.Name, request.PriceMinor)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrPlanNotFound
	}
	return nil
}

// DeletePlan refuses while any member still references the plan. Nulling
// references would silently downgrade members; restricting loses nothing.
func (p *PlanService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	referencing, err := p.profileRepo.CountByPlanID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if referencing > 0 {
		return utils.ErrPlanInUse
	}

	affected, err := p.planRepo.Delete(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrPlanNotFound
	}
	return nil
}

func planToResponse(plan db_models.Plan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:         plan.ID,
		Name:       plan.Name,
		PriceMinor: plan.PriceMinor,
		Currency:   plan.Currency,
		Features:   json.RawMessage(plan.Features),
	}
}
