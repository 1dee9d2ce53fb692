package request_models

import "encoding/json"

type CreatePlanRequest struct {
	Name       string          `json:"name" binding:"required"`
	PriceMinor int64           `json:"price_minor" binding:"required,gt=0"`
	Currency   string          `json:"currency" binding:"omitempty,len=3"`
	Features   json.RawMessage `json:"features"`
}

type UpdatePlanCatalogRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceMinor int64  `json:"price_minor" binding:"required,gt=0"`
}
