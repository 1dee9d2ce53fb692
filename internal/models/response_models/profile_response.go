package response_models

import "github.com/google/uuid"

type ProfileStatusResponse struct {
	Completed bool `json:"completed"`
}

// MemberDetails joins the signup identity, the profile and the referenced
// plan. Plan fields are nil when no plan is assigned.
type MemberDetails struct {
	ProfileID      uuid.UUID `json:"profile_id"`
	AccountID      uuid.UUID `json:"account_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Phone          string    `json:"phone"`
	PlanName       *string   `json:"plan_name"`
	PlanPriceMinor *int64    `json:"plan_price_minor"`
	PlanCurrency   *string   `json:"plan_currency"`
	JoinedAt       int64     `json:"joined_at"`
}
