package response_models

type UserCountResponse struct {
	TotalUsers int64 `json:"totalUsers"`
}

type NewMembersResponse struct {
	NewMembers int64 `json:"newMembers"`
}

type EliteCountResponse struct {
	EliteCount int64 `json:"eliteCount"`
}

type RecentMember struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	JoinedAt int64   `json:"joined_at"`
	PlanName *string `json:"plan_name"`
}
