package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/utils"
)

func newProfileService(store *memStore) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepoStub{store}, planRepoStub{store})
}

func memberIdentity(store *memStore) utils.Identity {
	account := store.addAccount("Amal", "a@x.com", "irrelevant")
	return utils.Identity{AccountID: account.ID, Email: account.Email}
}

func completeRequest(planID uuid.UUID) request_models.CompleteProfileRequest {
	return request_models.CompleteProfileRequest{
		Age:    25,
		Gender: "Male",
		Phone:  "999",
		PlanID: planID.String(),
	}
}

func TestProfileStatusFlipsOnCompletion(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)
	plan := store.addPlan("Basic Plan", 1999)
	ctx := context.Background()

	status, err := svc.ProfileStatus(ctx, identity)
	require.NoError(t, err)
	assert.False(t, status.Completed)

	require.NoError(t, svc.CompleteProfile(ctx, identity, completeRequest(plan.ID)))

	status, err = svc.ProfileStatus(ctx, identity)
	require.NoError(t, err)
	assert.True(t, status.Completed)
}

func TestCompleteProfileUnknownPlan(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)

	err := svc.CompleteProfile(context.Background(), identity, completeRequest(uuid.New()))
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	status, err := svc.ProfileStatus(context.Background(), identity)
	require.NoError(t, err)
	assert.False(t, status.Completed)
}

func TestCompleteProfileSecondAttemptConflicts(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)
	plan := store.addPlan("Basic Plan", 1999)
	ctx := context.Background()

	require.NoError(t, svc.CompleteProfile(ctx, identity, completeRequest(plan.ID)))

	err := svc.CompleteProfile(ctx, identity, completeRequest(plan.ID))
	assert.ErrorIs(t, err, utils.ErrProfileAlreadyExists)
	assert.Len(t, store.profiles, 1)
}

func TestCompleteProfileConcurrentAttempts(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)
	plan := store.addPlan("Basic Plan", 1999)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.CompleteProfile(context.Background(), identity, completeRequest(plan.ID))
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, utils.ErrProfileAlreadyExists):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, store.profiles, 1)
}

func TestUpdatePlanOnlyTouchesPlan(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)
	basic := store.addPlan("Basic Plan", 1999)
	elite := store.addPlan("Elite Plan", 4999)
	ctx := context.Background()

	require.NoError(t, svc.CompleteProfile(ctx, identity, completeRequest(basic.ID)))

	before, err := svc.FullProfile(ctx, identity)
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePlan(ctx, identity, request_models.UpdatePlanRequest{PlanID: elite.ID.String()}))

	after, err := svc.FullProfile(ctx, identity)
	require.NoError(t, err)

	require.NotNil(t, after.PlanName)
	assert.Equal(t, "Elite Plan", *after.PlanName)
	assert.Equal(t, int64(4999), *after.PlanPriceMinor)

	assert.Equal(t, before.Age, after.Age)
	assert.Equal(t, before.Gender, after.Gender)
	assert.Equal(t, before.Phone, after.Phone)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.JoinedAt, after.JoinedAt)
}

func TestUpdatePlanWithoutProfile(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)
	plan := store.addPlan("Basic Plan", 1999)

	err := svc.UpdatePlan(context.Background(), identity, request_models.UpdatePlanRequest{PlanID: plan.ID.String()})
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestFullProfileBeforeCompletion(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)

	_, err := svc.FullProfile(context.Background(), identity)
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestUpdateMemberUnknownProfile(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	plan := store.addPlan("Basic Plan", 1999)

	err := svc.UpdateMember(context.Background(), uuid.New(), request_models.UpdateMemberRequest{
		Name:   "Amal",
		Email:  "a@x.com",
		Age:    30,
		Gender: "Female",
		Phone:  "123",
		PlanID: plan.ID.String(),
	})
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestUpdateMemberAppliesBothTables(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)
	basic := store.addPlan("Basic Plan", 1999)
	elite := store.addPlan("Elite Plan", 4999)
	ctx := context.Background()

	require.NoError(t, svc.CompleteProfile(ctx, identity, completeRequest(basic.ID)))

	details, err := svc.FullProfile(ctx, identity)
	require.NoError(t, err)

	err = svc.UpdateMember(ctx, details.ProfileID, request_models.UpdateMemberRequest{
		Name:   "Amal K",
		Email:  "amal@x.com",
		Age:    26,
		Gender: "Male",
		Phone:  "888",
		PlanID: elite.ID.String(),
	})
	require.NoError(t, err)

	updated, err := svc.FullProfile(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "Amal K", updated.Name)
	assert.Equal(t, "amal@x.com", updated.Email)
	assert.Equal(t, 26, updated.Age)
	assert.Equal(t, "888", updated.Phone)
	require.NotNil(t, updated.PlanName)
	assert.Equal(t, "Elite Plan", *updated.PlanName)
}

func TestDeleteMember(t *testing.T) {
	store := newMemStore()
	svc := newProfileService(store)
	identity := memberIdentity(store)
	plan := store.addPlan("Basic Plan", 1999)
	ctx := context.Background()

	require.NoError(t, svc.CompleteProfile(ctx, identity, completeRequest(plan.ID)))

	details, err := svc.FullProfile(ctx, identity)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(ctx, details.ProfileID))

	status, err := svc.ProfileStatus(ctx, identity)
	require.NoError(t, err)
	assert.False(t, status.Completed)

	assert.ErrorIs(t, svc.DeleteMember(ctx, details.ProfileID), utils.ErrProfileNotFound)
}
