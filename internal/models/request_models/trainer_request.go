package request_models

type TrainerRequest struct {
	Name        string   `json:"name" binding:"required"`
	SalaryMinor int64    `json:"salary_minor" binding:"required,gt=0"`
	Phone       string   `json:"phone" binding:"required"`
	Specialties []string `json:"specialties"`
}
