package services

import (
	"context"
	"time"

	"fitcore/internal/models/response_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

// elitePlanName matches the tier the marketing site highlights.
const elitePlanName = "Elite Plan"

const recentMemberLimit = 5

type DashboardServiceInterface interface {
	UserCount(ctx context.Context) (*response_models.UserCountResponse, error)
	NewMembers(ctx context.Context) (*response_models.NewMembersResponse, error)
	RecentMembers(ctx context.Context) ([]response_models.RecentMember, error)
	EliteMembersCount(ctx context.Context) (*response_models.EliteCountResponse, error)
}

type DashboardService struct {
	profileRepo repositories.ProfileRepository
}

func NewDashboardService(profileRepo repositories.ProfileRepository) DashboardServiceInterface {
	return &DashboardService{profileRepo: profileRepo}
}

func (d *DashboardService) UserCount(ctx context.Context) (*response_models.UserCountResponse, error) {
	n, err := d.profileRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.UserCountResponse{TotalUsers: n}, nil
}

// NewMembers counts profiles completed in the last two days, the window the
// marketing widget shows.
func (d *DashboardService) NewMembers(ctx context.Context) (*response_models.NewMembersResponse, error) {
	since := time.Now().AddDate(0, 0, -2).Unix()
	n, err := d.profileRepo.CountJoinedSince(ctx, since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.NewMembersResponse{NewMembers: n}, nil
}

func (d *DashboardService) RecentMembers(ctx context.Context) ([]response_models.RecentMember, error) {
	rows, err := d.profileRepo.RecentMembers(ctx, recentMemberLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	members := make([]response_models.RecentMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, response_models.RecentMember{
			Name:     row.Name,
			Email:    row.Email,
			JoinedAt: row.JoinedAt,
			PlanName: row.PlanName,
		})
	}
	return members, nil
}

func (d *DashboardService) EliteMembersCount(ctx context.Context) (*response_models.EliteCountResponse, error) {
	n, err := d.profileRepo.CountByPlanName(ctx, elitePlanName)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.EliteCountResponse{EliteCount: n}, nil
}
