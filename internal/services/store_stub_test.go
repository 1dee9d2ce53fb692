package services_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
	"fitcore/internal/repositories"
)

// memStore is an in-memory stand-in for the postgres repositories. It
// enforces the same uniqueness rules the real schema does (unique email,
// unique profile per account) so conflict paths behave like production.
type memStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]db_models.Account
	profiles map[uuid.UUID]db_models.Profile
	plans    map[uuid.UUID]db_models.Plan
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[uuid.UUID]db_models.Account),
		profiles: make(map[uuid.UUID]db_models.Profile),
		plans:    make(map[uuid.UUID]db_models.Plan),
	}
}

// ---- AccountRepository ----

func (m *memStore) Insert(ctx context.Context, account *db_models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.accounts {
		if existing.Email == account.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m.accounts[account.ID] = *account
	return nil
}

func (m *memStore) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if account, ok := m.accounts[id]; ok {
		copy := account
		return &copy, nil
	}
	return nil, nil
}

func (m *memStore) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.Email == email {
			copy := account
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	account.PasswordHash = passwordHash
	m.accounts[id] = account
	return nil
}

// ---- ProfileRepository ----

func (m *memStore) InsertProfile(ctx context.Context, profile *db_models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.profiles {
		if existing.AccountID == profile.AccountID {
			return gorm.ErrDuplicatedKey
		}
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.profiles[profile.ID] = *profile
	return nil
}

func (m *memStore) FindProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, profile := range m.profiles {
		if profile.AccountID == accountID {
			copy := profile
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if profile, ok := m.profiles[id]; ok {
		copy := profile
		return &copy, nil
	}
	return nil, nil
}

func (m *memStore) UpdateProfilePlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, profile := range m.profiles {
		if profile.AccountID == accountID {
			profile.PlanID = &planID
			m.profiles[id] = profile
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) memberRow(profile db_models.Profile) repositories.MemberRow {
	row := repositories.MemberRow{
		ProfileID: profile.ID,
		AccountID: profile.AccountID,
		Age:       profile.Age,
		Gender:    string(profile.Gender),
		Phone:     profile.Phone,
		JoinedAt:  profile.CreatedAt,
	}
	if account, ok := m.accounts[profile.AccountID]; ok {
		row.Name = account.Name
		row.Email = account.Email
	}
	if profile.PlanID != nil {
		if plan, ok := m.plans[*profile.PlanID]; ok {
			row.PlanName = &plan.Name
			row.PlanPriceMinor = &plan.PriceMinor
			row.PlanCurrency = &plan.Currency
		}
	}
	return row
}

func (m *memStore) ProfileMemberDetails(ctx context.Context, accountID uuid.UUID) (*repositories.MemberRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, profile := range m.profiles {
		if profile.AccountID == accountID {
			row := m.memberRow(profile)
			return &row, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListMemberRows(ctx context.Context) ([]repositories.MemberRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]repositories.MemberRow, 0, len(m.profiles))
	for _, profile := range m.profiles {
		rows = append(rows, m.memberRow(profile))
	}
	return rows, nil
}

func (m *memStore) UpdateMemberRows(ctx context.Context, profileID uuid.UUID, name, email string, age int, gender db_models.Gender, phone string, planID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[profileID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for id, account := range m.accounts {
		if account.Email == email && id != profile.AccountID {
			return gorm.ErrDuplicatedKey
		}
	}
	account := m.accounts[profile.AccountID]
	account.Name = name
	account.Email = email
	m.accounts[profile.AccountID] = account

	profile.Age = age
	profile.Gender = gender
	profile.Phone = phone
	profile.PlanID = &planID
	m.profiles[profileID] = profile
	return nil
}

func (m *memStore) DeleteProfileByID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[profileID]; !ok {
		return 0, nil
	}
	delete(m.profiles, profileID)
	return 1, nil
}

func (m *memStore) CountProfiles(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.profiles)), nil
}

func (m *memStore) CountProfilesJoinedSince(ctx context.Context, since int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, profile := range m.profiles {
		if profile.CreatedAt >= since {
			n++
		}
	}
	return n, nil
}

func (m *memStore) RecentMemberRows(ctx context.Context, limit int) ([]repositories.MemberRow, error) {
	rows, err := m.ListMemberRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *memStore) CountProfilesByPlanName(ctx context.Context, planName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, profile := range m.profiles {
		if profile.PlanID == nil {
			continue
		}
		if plan, ok := m.plans[*profile.PlanID]; ok && plan.Name == planName {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountProfilesByPlanID(ctx context.Context, planID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, profile := range m.profiles {
		if profile.PlanID != nil && *profile.PlanID == planID {
			n++
		}
	}
	return n, nil
}

// ---- IPlanRepository ----

func (m *memStore) GetPlanByID(ctx context.Context, planID uuid.UUID) (*db_models.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if plan, ok := m.plans[planID]; ok {
		copy := plan
		return &copy, nil
	}
	return nil, nil
}

func (m *memStore) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	plans := make([]db_models.Plan, 0, len(m.plans))
	for _, plan := range m.plans {
		plans = append(plans, plan)
	}
	return plans, nil
}

func (m *memStore) InsertPlan(ctx context.Context, plan *db_models.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.plans {
		if existing.Name == plan.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	m.plans[plan.ID] = *plan
	return nil
}

func (m *memStore) UpdatePlanRow(ctx context.Context, planID uuid.UUID, name string, priceMinor int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan, ok := m.plans[planID]
	if !ok {
		return 0, nil
	}
	plan.Name = name
	plan.PriceMinor = priceMinor
	m.plans[planID] = plan
	return 1, nil
}

func (m *memStore) DeletePlanRow(ctx context.Context, planID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[planID]; !ok {
		return 0, nil
	}
	delete(m.plans, planID)
	return 1, nil
}

func (m *memStore) addPlan(name string, priceMinor int64) db_models.Plan {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan := db_models.Plan{Name: name, PriceMinor: priceMinor, Currency: "USD"}
	plan.ID = uuid.New()
	m.plans[plan.ID] = plan
	return plan
}

func (m *memStore) addAccount(name, email, passwordHash string) db_models.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	account := db_models.Account{Name: name, Email: email, PasswordHash: passwordHash}
	account.ID = uuid.New()
	m.accounts[account.ID] = account
	return account
}

// Interface adapters: the repositories carry different method names than the
// single fixture struct, so thin wrappers bind them.

type accountRepoStub struct{ *memStore }

type profileRepoStub struct{ *memStore }

func (p profileRepoStub) Insert(ctx context.Context, profile *db_models.Profile) error {
	return p.InsertProfile(ctx, profile)
}

func (p profileRepoStub) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	return p.FindProfileByAccountID(ctx, accountID)
}

func (p profileRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	return p.FindProfileByID(ctx, id)
}

func (p profileRepoStub) UpdatePlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) (int64, error) {
	return p.UpdateProfilePlan(ctx, accountID, planID)
}

func (p profileRepoStub) MemberDetails(ctx context.Context, accountID uuid.UUID) (*repositories.MemberRow, error) {
	return p.ProfileMemberDetails(ctx, accountID)
}

func (p profileRepoStub) ListMembers(ctx context.Context) ([]repositories.MemberRow, error) {
	return p.ListMemberRows(ctx)
}

func (p profileRepoStub) UpdateMember(ctx context.Context, profileID uuid.UUID, name, email string, age int, gender db_models.Gender, phone string, planID uuid.UUID) error {
	return p.UpdateMemberRows(ctx, profileID, name, email, age, gender, phone, planID)
}

func (p profileRepoStub) DeleteByID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	return p.DeleteProfileByID(ctx, profileID)
}

func (p profileRepoStub) CountAll(ctx context.Context) (int64, error) {
	return p.CountProfiles(ctx)
}

func (p profileRepoStub) CountJoinedSince(ctx context.Context, since int64) (int64, error) {
	return p.CountProfilesJoinedSince(ctx, since)
}

func (p profileRepoStub) RecentMembers(ctx context.Context, limit int) ([]repositories.MemberRow, error) {
	return p.RecentMemberRows(ctx, limit)
}

func (p profileRepoStub) CountByPlanName(ctx context.Context, planName string) (int64, error) {
	return p.CountProfilesByPlanName(ctx, planName)
}

func (p profileRepoStub) CountByPlanID(ctx context.Context, planID uuid.UUID) (int64, error) {
	return p.CountProfilesByPlanID(ctx, planID)
}

type planRepoStub struct{ *memStore }

func (p planRepoStub) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.InsertPlan(ctx, plan)
}

func (p planRepoStub) Update(ctx context.Context, planID uuid.UUID, name string, priceMinor int64) (int64, error) {
	return p.UpdatePlanRow(ctx, planID, name, priceMinor)
}

func (p planRepoStub) Delete(ctx context.Context, planID uuid.UUID) (int64, error) {
	return p.DeletePlanRow(ctx, planID)
}
