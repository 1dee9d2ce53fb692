package db_models

import (
	"gorm.io/datatypes"
)

// Plan is a membership tier. Plans are admin-managed and referenced by zero
// or more profiles; a referenced plan cannot be deleted.
type Plan struct {
	BaseModel
	Name       string         `gorm:"uniqueIndex"`
	PriceMinor int64          // 2999 = $29.99
	Currency   string         `gorm:"size:3;default:'USD'"`
	Features   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
