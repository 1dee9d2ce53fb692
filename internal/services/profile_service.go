package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/models/response_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

// ProfileServiceInterface is the orchestrator for the member lifecycle:
// Registered-NoProfile -> Active via CompleteProfile, then Active -> Active
// plan changes. All member-facing operations take the gate-verified identity.
type ProfileServiceInterface interface {
	ProfileStatus(ctx context.Context, identity utils.Identity) (*response_models.ProfileStatusResponse, error)
	CompleteProfile(ctx context.Context, identity utils.Identity, request request_models.CompleteProfileRequest) error
	UpdatePlan(ctx context.Context, identity utils.Identity, request request_models.UpdatePlanRequest) error
	FullProfile(ctx context.Context, identity utils.Identity) (*response_models.MemberDetails, error)

	ListMembers(ctx context.Context) ([]response_models.MemberDetails, error)
	UpdateMember(ctx context.Context, profileID uuid.UUID, request request_models.UpdateMemberRequest) error
	DeleteMember(ctx context.Context, profileID uuid.UUID) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	planRepo    repositories.IPlanRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, planRepo repositories.IPlanRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		planRepo:    planRepo,
	}
}

// ProfileStatus: a profile row existing is the single source of truth for
// "profile completed".
func (s *ProfileService) ProfileStatus(ctx context.Context, identity utils.Identity) (*response_models.ProfileStatusResponse, error) {
	profile, err := s.profileRepo.FindByAccountID(ctx, identity.AccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.ProfileStatusResponse{Completed: profile != nil}, nil
}

// CompleteProfile performs the one-time Registered-NoProfile -> Active
// transition. A second attempt is rejected with a conflict; the unique index
// on account_id backstops two racing first attempts, and the loser gets the
// same conflict instead of a second row.
func (s *ProfileService) CompleteProfile(ctx context.Context, identity utils.Identity, request request_models.CompleteProfileRequest) error {
	planID, err := uuid.Parse(request.PlanID)
	if err != nil {
		return utils.ErrPlanNotFound
	}

	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	existing, err := s.profileRepo.FindByAccountID(ctx, identity.AccountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrProfileAlreadyExists
	}

	profile := &db_models.Profile{
		AccountID: identity.AccountID,
		Age:       request.Age,
		Gender:    db_models.Gender(request.Gender),
		Phone:     request.Phone,
		PlanID:    &planID,
	}

	if err := s.profileRepo.Insert(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrProfileAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

// UpdatePlan is the Active -> Active self-loop: it changes only the plan
// reference and requires the profile to exist.
func (s *ProfileService) UpdatePlan(ctx context.Context, identity utils.Identity, request request_models.UpdatePlanRequest) error {
	planID, err := uuid.Parse(request.PlanID)
	if err != nil {
		return utils.ErrPlanNotFound
	}

	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	affected, err := s.profileRepo.UpdatePlan(ctx, identity.AccountID, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrProfileNotFound
	}

	return nil
}

func (s *ProfileService) FullProfile(ctx context.Context, identity utils.Identity) (*response_models.MemberDetails, error) {
	row, err := s.profileRepo.MemberDetails(ctx, identity.AccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrProfileNotFound
	}

	details := memberRowToDetails(*row)
	return &details, nil
}

func (s *ProfileService) ListMembers(ctx context.Context) ([]response_models.MemberDetails, error) {
	rows, err := s.profileRepo.ListMembers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	members := make([]response_models.MemberDetails, 0, len(rows))
	for _, row := range rows {
		members = append(members, memberRowToDetails(row))
	}
	return members, nil
}

func (s *ProfileService) UpdateMember(ctx context.Context, profileID uuid.UUID, request request_models.UpdateMemberRequest) error {
	planID, err := uuid.Parse(request.PlanID)
	if err != nil {
		return utils.ErrPlanNotFound
	}

	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	err = s.profileRepo.UpdateMember(ctx, profileID, request.Name, request.Email, request.Age, db_models.Gender(request.Gender), request.Phone, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrProfileNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *ProfileService) DeleteMember(ctx context.Context, profileID uuid.UUID) error {
	affected, err := s.profileRepo.DeleteByID(ctx, profileID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrProfileNotFound
	}
	return nil
}

func memberRowToDetails(row repositories.MemberRow) response_models.MemberDetails {
	return response_models.MemberDetails{
		ProfileID:      row.ProfileID,
		AccountID:      row.AccountID,
		Name:           row.Name,
		Email:          row.Email,
		Age:            row.Age,
		Gender:         row.Gender,
		Phone:          row.Phone,
		PlanName:       row.PlanName,
		PlanPriceMinor: row.PlanPriceMinor,
		PlanCurrency:   row.PlanCurrency,
		JoinedAt:       row.JoinedAt,
	}
}
