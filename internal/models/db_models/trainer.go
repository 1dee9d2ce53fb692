package db_models

import "github.com/lib/pq"

type Trainer struct {
	BaseModel
	Name        string
	SalaryMinor int64
	Phone       string
	Specialties pq.StringArray `gorm:"type:text[]"`
}
