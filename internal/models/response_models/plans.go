package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type PlanResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	PriceMinor int64           `json:"price_minor"`
	Currency   string          `json:"currency"`
	Features   json.RawMessage `json:"features,omitempty"`
}
