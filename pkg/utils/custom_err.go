package utils

import "errors"

var (
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrAccountNotFound      = errors.New("account not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already completed")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrPlanInUse            = errors.New("plan is assigned to members")
	ErrPlanNameTaken        = errors.New("plan name already exists")
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrDatabaseError        = errors.New("database error")
)
