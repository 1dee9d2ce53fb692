package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

// MemberRow is the joined signup + profile + plan view used by the member
// dashboard and the admin member list.
type MemberRow struct {
	ProfileID      uuid.UUID `gorm:"column:profile_id"`
	AccountID      uuid.UUID `gorm:"column:account_id"`
	Name           string    `gorm:"column:name"`
	Email          string    `gorm:"column:email"`
	Age            int       `gorm:"column:age"`
	Gender         string    `gorm:"column:gender"`
	Phone          string    `gorm:"column:phone"`
	PlanName       *string   `gorm:"column:plan_name"`
	PlanPriceMinor *int64    `gorm:"column:plan_price_minor"`
	PlanCurrency   *string   `gorm:"column:plan_currency"`
	JoinedAt       int64     `gorm:"column:joined_at"`
}

type ProfileRepository interface {
	Insert(ctx context.Context, profile *db_models.Profile) error
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	UpdatePlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) (int64, error)
	MemberDetails(ctx context.Context, accountID uuid.UUID) (*MemberRow, error)
	ListMembers(ctx context.Context) ([]MemberRow, error)
	UpdateMember(ctx context.Context, profileID uuid.UUID, name, email string, age int, gender db_models.Gender, phone string, planID uuid.UUID) error
	DeleteByID(ctx context.Context, profileID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountJoinedSince(ctx context.Context, since int64) (int64, error)
	RecentMembers(ctx context.Context, limit int) ([]MemberRow, error)
	CountByPlanName(ctx context.Context, planName string) (int64, error)
	CountByPlanID(ctx context.Context, planID uuid.UUID) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Insert relies on the unique index on account_id: a racing second insert
// for the same account comes back as gorm.ErrDuplicatedKey.
func (p *profileRepository) Insert(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).Create(profile).Error
}

func (p *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (p *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

// UpdatePlan touches only plan_id. Zero rows affected means the account has
// no profile yet.
func (p *profileRepository) UpdatePlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) (int64, error) {
	result := p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ?", accountID).
		Update("plan_id", planID)
	return result.RowsAffected, result.Error
}

const memberSelect = `
	profiles.id AS profile_id,
	profiles.account_id AS account_id,
	accounts.name AS name,
	accounts.email AS email,
	profiles.age AS age,
	profiles.gender AS gender,
	profiles.phone AS phone,
	plans.name AS plan_name,
	plans.price_minor AS plan_price_minor,
	plans.currency AS plan_currency,
	profiles.created_at AS joined_at`

func (p *profileRepository) memberQuery(ctx context.Context) *gorm.DB {
	return p.db.WithContext(ctx).
		Table("profiles").
		Select(memberSelect).
		Joins("JOIN accounts ON accounts.id = profiles.account_id").
		Joins("LEFT JOIN plans ON plans.id = profiles.plan_id AND plans.deleted_at IS NULL").
		Where("profiles.deleted_at IS NULL")
}

func (p *profileRepository) MemberDetails(ctx context.Context, accountID uuid.UUID) (*MemberRow, error) {
	var row MemberRow
	err := p.memberQuery(ctx).
		Where("profiles.account_id = ?", accountID).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

func (p *profileRepository) ListMembers(ctx context.Context) ([]MemberRow, error) {
	var rows []MemberRow
	err := p.memberQuery(ctx).
		Order("profiles.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateMember applies the signup-row edit and the profile-row edit as one
// transaction so a mid-sequence failure cannot leave them inconsistent.
func (p *profileRepository) UpdateMember(ctx context.Context, profileID uuid.UUID, name, email string, age int, gender db_models.Gender, phone string, planID uuid.UUID) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile db_models.Profile
		if err := tx.First(&profile, "id = ?", profileID).Error; err != nil {
			return err
		}

		if err := tx.Model(&db_models.Account{}).
			Where("id = ?", profile.AccountID).
			Updates(map[string]interface{}{"name": name, "email": email}).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Profile{}).
			Where("id = ?", profileID).
			Updates(map[string]interface{}{
				"age":     age,
				"gender":  gender,
				"phone":   phone,
				"plan_id": planID,
			}).Error
	})
}

// DeleteByID is a hard delete so the unique account_id index cannot collide
// with a soft-deleted row if the member ever completes a profile again.
func (p *profileRepository) DeleteByID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := p.db.WithContext(ctx).Unscoped().Delete(&db_models.Profile{}, "id = ?", profileID)
	return result.RowsAffected, result.Error
}

func (p *profileRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&db_models.Profile{}).Count(&n).Error
	return n, err
}

func (p *profileRepository) CountJoinedSince(ctx context.Context, since int64) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("created_at >= ?", since).
		Count(&n).Error
	return n, err
}

func (p *profileRepository) RecentMembers(ctx context.Context, limit int) ([]MemberRow, error) {
	var rows []MemberRow
	err := p.memberQuery(ctx).
		Order("profiles.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (p *profileRepository) CountByPlanName(ctx context.Context, planName string) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).
		Table("profiles").
		Joins("JOIN plans ON plans.id = profiles.plan_id").
		Where("plans.name = ? AND profiles.deleted_at IS NULL", planName).
		Count(&n).Error
	return n, err
}

func (p *profileRepository) CountByPlanID(ctx context.Context, planID uuid.UUID) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("plan_id = ?", planID).
		Count(&n).Error
	return n, err
}
