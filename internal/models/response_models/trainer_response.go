package response_models

import "github.com/google/uuid"

type TrainerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	SalaryMinor int64     `json:"salary_minor"`
	Phone       string    `json:"phone"`
	Specialties []string  `json:"specialties"`
}
