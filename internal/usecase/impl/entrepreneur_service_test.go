package impl

import (
	"context"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/errors"
	mockRepo "pawmart/internal/mocks/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// entrepreneurServiceFixtures holds all test dependencies for entrepreneur service tests.
type entrepreneurServiceFixtures struct {
	service          usecase.EntrepreneurUsecase
	txManager        *mockRepo.MockTransactionManager
	entrepreneurRepo *mockRepo.MockEntrepreneurRepository
}

func createTestEntrepreneurService(t *testing.T) entrepreneurServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	entrepreneurRepo := mockRepo.NewMockEntrepreneurRepository(t)

	service := NewEntrepreneurService(EntrepreneurServiceParams{
		TxManager:        txManager,
		EntrepreneurRepo: entrepreneurRepo,
		Logger:           newDiscardLogger(),
	})

	return entrepreneurServiceFixtures{
		service:          service,
		txManager:        txManager,
		entrepreneurRepo: entrepreneurRepo,
	}
}

func pendingProfile() *entity.EntrepreneurProfile {
	return &entity.EntrepreneurProfile{
		ID:           uuid.New(),
		AccountID:    uuid.New(),
		BusinessName: "Happy Paws",
		TaxID:        "1790012345001",
		State:        entity.StatePending,
	}
}

// expectTransitionTx wires the transaction mock so the inner callback runs
// against a fresh entrepreneur repository mock loaded with the given profile.
func expectTransitionTx(t *testing.T, fx entrepreneurServiceFixtures, ctx context.Context, profile *entity.EntrepreneurProfile) *mockRepo.MockEntrepreneurRepository {
	t.Helper()

	mockEntrepreneurRepo := mockRepo.NewMockEntrepreneurRepository(t)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewEntrepreneurRepository().Return(mockEntrepreneurRepo)

			mockEntrepreneurRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)

			return fn(mockFactory)
		})

	return mockEntrepreneurRepo
}

func TestEntrepreneurService_Transition_Approve(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	profile := pendingProfile()

	repoMock := expectTransitionTx(t, fx, ctx, profile)
	repoMock.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.EntrepreneurProfile")).
		Return(nil)

	updated, err := fx.service.Transition(ctx, profile.ID, usecase.TransitionInput{
		State:      entity.StateApproved,
		Commission: floatPtr(12.5),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StateApproved, updated.State)
	require.NotNil(t, updated.Commission)
	assert.InDelta(t, 12.5, *updated.Commission, 0.001)
}

func TestEntrepreneurService_Transition_ApproveBoundaryCommissions(t *testing.T) {
	for _, commission := range []float64{0, 100} {
		fx := createTestEntrepreneurService(t)

		ctx := context.Background()
		profile := pendingProfile()

		repoMock := expectTransitionTx(t, fx, ctx, profile)
		repoMock.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.EntrepreneurProfile")).
			Return(nil)

		updated, err := fx.service.Transition(ctx, profile.ID, usecase.TransitionInput{
			State:      entity.StateApproved,
			Commission: floatPtr(commission),
		})

		require.NoError(t, err)
		assert.InDelta(t, commission, *updated.Commission, 0.001)
	}
}

func TestEntrepreneurService_Transition_ApproveWithoutCommission(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	updated, err := fx.service.Transition(context.Background(), uuid.New(), usecase.TransitionInput{
		State: entity.StateApproved,
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCommission))
}

func TestEntrepreneurService_Transition_CommissionOutOfRange(t *testing.T) {
	for _, commission := range []float64{-0.01, 100.01, 250} {
		fx := createTestEntrepreneurService(t)

		updated, err := fx.service.Transition(context.Background(), uuid.New(), usecase.TransitionInput{
			State:      entity.StateApproved,
			Commission: floatPtr(commission),
		})

		assert.Nil(t, updated)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCommission))
	}
}

func TestEntrepreneurService_Transition_UnknownState(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	updated, err := fx.service.Transition(context.Background(), uuid.New(), usecase.TransitionInput{
		State: entity.ApprovalState("SUSPENDED"),
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidState))
}

func TestEntrepreneurService_Transition_NotFound(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEntrepreneurRepo := mockRepo.NewMockEntrepreneurRepository(t)

			mockFactory.EXPECT().NewEntrepreneurRepository().Return(mockEntrepreneurRepo)
			mockEntrepreneurRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrEntrepreneurNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.Transition(ctx, id, usecase.TransitionInput{
		State:      entity.StateApproved,
		Commission: floatPtr(10),
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

// Rejecting an approved profile clears its commission; any commission sent
// alongside the rejection is ignored.
func TestEntrepreneurService_Transition_RejectClearsCommission(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	profile := pendingProfile()
	profile.State = entity.StateApproved
	profile.Commission = floatPtr(12.5)

	repoMock := expectTransitionTx(t, fx, ctx, profile)
	repoMock.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.EntrepreneurProfile")).
		Return(nil)

	updated, err := fx.service.Transition(ctx, profile.ID, usecase.TransitionInput{
		State:      entity.StateRejected,
		Commission: floatPtr(50),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StateRejected, updated.State)
	assert.Nil(t, updated.Commission)
}

func TestEntrepreneurService_Transition_ReopenToPending(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	profile := pendingProfile()
	profile.State = entity.StateRejected

	repoMock := expectTransitionTx(t, fx, ctx, profile)
	repoMock.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.EntrepreneurProfile")).
		Return(nil)

	updated, err := fx.service.Transition(ctx, profile.ID, usecase.TransitionInput{
		State: entity.StatePending,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatePending, updated.State)
	assert.Nil(t, updated.Commission)
}

// UpdateProfile edits descriptive fields only; the state and commission the
// profile already has must survive the edit untouched.
func TestEntrepreneurService_UpdateProfile_PreservesStateAndCommission(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	profile := pendingProfile()
	profile.State = entity.StateApproved
	profile.Commission = floatPtr(12.5)

	repoMock := expectTransitionTx(t, fx, ctx, profile)
	repoMock.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.EntrepreneurProfile")).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, profile.ID, &usecase.UpdateEntrepreneurInput{
		BusinessName: strPtr("Happier Paws"),
		Schedule: &entity.WeekSchedule{
			{Day: "Saturday", OpensAt: strPtr("10:00"), ClosesAt: strPtr("14:00")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Happier Paws", updated.BusinessName)
	assert.Equal(t, entity.StateApproved, updated.State)
	require.NotNil(t, updated.Commission)
	assert.InDelta(t, 12.5, *updated.Commission, 0.001)
	require.Len(t, updated.Schedule, 7)
}

func TestEntrepreneurService_Delete_CascadesToAccount(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	profile := pendingProfile()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEntrepreneurRepo := mockRepo.NewMockEntrepreneurRepository(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewEntrepreneurRepository().Return(mockEntrepreneurRepo)
			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)

			mockEntrepreneurRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
			mockEntrepreneurRepo.EXPECT().SoftDelete(ctx, profile.ID).Return(nil)
			mockAccountRepo.EXPECT().SoftDelete(ctx, profile.AccountID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, profile.ID)

	require.NoError(t, err)
}

func TestEntrepreneurService_List_FiltersByState(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	state := entity.StatePending
	fx.entrepreneurRepo.EXPECT().
		ListByState(ctx, state).
		Return([]*entity.EntrepreneurProfile{pendingProfile()}, nil)

	profiles, err := fx.service.List(ctx, &state)

	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestEntrepreneurService_List_EmptyResultIsNotAnError(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	state := entity.StateRejected
	fx.entrepreneurRepo.EXPECT().
		ListByState(ctx, state).
		Return([]*entity.EntrepreneurProfile{}, nil)

	profiles, err := fx.service.List(ctx, &state)

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestEntrepreneurService_List_UnknownState(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	state := entity.ApprovalState("ARCHIVED")
	profiles, err := fx.service.List(context.Background(), &state)

	assert.Nil(t, profiles)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidState))
}

func TestEntrepreneurService_List_All(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	fx.entrepreneurRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.EntrepreneurProfile{pendingProfile(), pendingProfile()}, nil)

	profiles, err := fx.service.List(ctx, nil)

	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestEntrepreneurService_GetByID_NotFound(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.entrepreneurRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrEntrepreneurNotFound)

	profile, err := fx.service.GetByID(ctx, id)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestEntrepreneurService_GetByEmail(t *testing.T) {
	fx := createTestEntrepreneurService(t)

	ctx := context.Background()
	want := pendingProfile()
	fx.entrepreneurRepo.EXPECT().FindByEmail(ctx, "store@example.com").Return(want, nil)

	got, err := fx.service.GetByEmail(ctx, "store@example.com")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
