package response_models

import "github.com/google/uuid"

type SignUpResponse struct {
	AccountID uuid.UUID `json:"account_id"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	AccountID uuid.UUID `json:"account_id"`
}
