package db_models

// Account is the signup identity. A member becomes "active" only once a
// Profile row exists for the account.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string

	Profile *Profile `gorm:"foreignKey:AccountID"`
}
