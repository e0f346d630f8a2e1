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

// petOwnerServiceFixtures holds all test dependencies for pet owner service tests.
type petOwnerServiceFixtures struct {
	service     usecase.PetOwnerUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
}

func createTestPetOwnerService(t *testing.T) petOwnerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewPetOwnerService(PetOwnerServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return petOwnerServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
	}
}

func petOwnerAccount() *entity.Account {
	return &entity.Account{
		ID:    uuid.New(),
		Email: "owner@example.com",
		Name:  "Test Owner",
		PetOwnerProfile: &entity.PetOwnerProfile{
			PhoneNumber: "0991234567",
			Addresses:   []string{"Av. Amazonas 123"},
		},
	}
}

func TestPetOwnerService_Get_Success(t *testing.T) {
	fx := createTestPetOwnerService(t)

	ctx := context.Background()
	account := petOwnerAccount()
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.Get(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestPetOwnerService_Get_NotFound(t *testing.T) {
	fx := createTestPetOwnerService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	got, err := fx.service.Get(ctx, id)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

// An account without a pet-owner profile is invisible to this usecase even
// though the account row exists.
func TestPetOwnerService_Get_AccountWithoutProfile(t *testing.T) {
	fx := createTestPetOwnerService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true}
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.Get(ctx, account.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPetOwnerService_Update_PartialFields(t *testing.T) {
	fx := createTestPetOwnerService(t)

	ctx := context.Background()
	account := petOwnerAccount()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Return(nil)

			return fn(mockFactory)
		})

	newAddresses := []string{"Calle Larga 45", "Av. Amazonas 123"}
	updated, err := fx.service.Update(ctx, account.ID, &usecase.UpdatePetOwnerInput{
		PhoneNumber: strPtr("0987654321"),
		Addresses:   &newAddresses,
	})

	require.NoError(t, err)
	assert.Equal(t, "0987654321", updated.PetOwnerProfile.PhoneNumber)
	assert.Equal(t, newAddresses, updated.PetOwnerProfile.Addresses)
	// Untouched fields keep their values.
	assert.Equal(t, "Test Owner", updated.Name)
}

func TestPetOwnerService_Delete_CascadesToAccount(t *testing.T) {
	fx := createTestPetOwnerService(t)

	ctx := context.Background()
	account := petOwnerAccount()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockPetOwnerRepo := mockRepo.NewMockPetOwnerRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewPetOwnerRepository().Return(mockPetOwnerRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
			mockPetOwnerRepo.EXPECT().SoftDelete(ctx, account.ID).Return(nil)
			mockAccountRepo.EXPECT().SoftDelete(ctx, account.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, account.ID)

	require.NoError(t, err)
}
