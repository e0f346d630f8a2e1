package impl

import (
	"context"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/errors"
	mockRepo "pawmart/internal/mocks/repository"
	mockSvc "pawmart/internal/mocks/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAdminService(AdminServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func adminAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		Name:         "Platform Admin",
		PasswordHash: "hashed_password",
		IsAdmin:      true,
	}
}

func TestAdminService_GetAdmin_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	account := adminAccount()
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.GetAdmin(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAdminService_GetAdmin_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	got, err := fx.service.GetAdmin(ctx, id)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

// A plain account is not visible through the admin usecase.
func TestAdminService_GetAdmin_NonAdminAccount(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "owner@example.com", PetOwnerProfile: &entity.PetOwnerProfile{}}
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.GetAdmin(ctx, account.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAdminService_UpdateAdmin_RehashesPassword(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	account := adminAccount()

	fx.hasher.EXPECT().Hash("NewPassword456!").Return("new_hashed_password", nil)

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

	updated, err := fx.service.UpdateAdmin(ctx, account.ID, &usecase.UpdateAdminInput{
		Name:     strPtr("Renamed Admin"),
		Password: strPtr("NewPassword456!"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", updated.Name)
	assert.Equal(t, "new_hashed_password", updated.PasswordHash)
	assert.Equal(t, "admin@example.com", updated.Email)
}
