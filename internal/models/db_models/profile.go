package db_models

import "github.com/google/uuid"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Profile completes an Account into an active member. The unique index on
// AccountID is what guarantees at most one profile per account, even under
// concurrent completion attempts.
type Profile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Age       int
	Gender    Gender `gorm:"size:10"`
	Phone     string
	PlanID    *uuid.UUID `gorm:"type:uuid;index"`

	Plan *Plan
}
