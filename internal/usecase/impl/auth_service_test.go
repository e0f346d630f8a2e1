package impl

import (
	"context"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/domain/service"
	"pawmart/internal/errors"
	mockRepo "pawmart/internal/mocks/repository"
	mockSvc "pawmart/internal/mocks/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	accountRepo      *mockRepo.MockAccountRepository
	entrepreneurRepo *mockRepo.MockEntrepreneurRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	entrepreneurRepo := mockRepo.NewMockEntrepreneurRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		AccountRepo:      accountRepo,
		EntrepreneurRepo: entrepreneurRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          service,
		txManager:        txManager,
		accountRepo:      accountRepo,
		entrepreneurRepo: entrepreneurRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func approvedEntrepreneurAccount(email string) *entity.Account {
	commission := 12.5

	return &entity.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Store Owner",
		PasswordHash: "hashed_password",
		EntrepreneurProfile: &entity.EntrepreneurProfile{
			ID:           uuid.New(),
			BusinessName: "Happy Paws",
			TaxID:        "1790012345001",
			State:        entity.StateApproved,
			Commission:   &commission,
		},
	}
}

func TestAuthService_RegisterPetOwner_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterPetOwnerInput{
		Name:        "Test Owner",
		Email:       "owner@example.com",
		Password:    "Password123!",
		PhoneNumber: "0991234567",
		Addresses:   []string{"Av. Amazonas 123"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAccountNotFound)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterPetOwner(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.Equal(t, "hashed_password", output.Account.PasswordHash)
	require.NotNil(t, output.Account.PetOwnerProfile)
	assert.Equal(t, input.Addresses, output.Account.PetOwnerProfile.Addresses)
	assert.Nil(t, output.Account.EntrepreneurProfile)
}

func TestAuthService_RegisterPetOwner_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterPetOwnerInput{
		Name:     "Test Owner",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterPetOwner(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAuthService_RegisterEntrepreneur_ForcesPendingState(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterEntrepreneurInput{
		Name:         "Store Owner",
		Email:        "store@example.com",
		Password:     "Password123!",
		BusinessName: "Happy Paws",
		TaxID:        "1790012345001",
		Schedule: entity.WeekSchedule{
			{Day: "Monday", OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
		},
		AcceptedTerms: true,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockEntrepreneurRepo := mockRepo.NewMockEntrepreneurRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewEntrepreneurRepository().Return(mockEntrepreneurRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAccountNotFound)

			mockEntrepreneurRepo.EXPECT().
				FindByTaxID(ctx, input.TaxID).
				Return(nil, repository.ErrEntrepreneurNotFound)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterEntrepreneur(ctx, input)

	require.NoError(t, err)
	profile := output.Account.EntrepreneurProfile
	require.NotNil(t, profile)
	assert.Equal(t, entity.StatePending, profile.State)
	assert.Nil(t, profile.Commission)

	// The stored schedule covers all seven days, with the unnamed six closed.
	require.Len(t, profile.Schedule, 7)
	assert.Equal(t, "Monday", profile.Schedule[0].Day)
	assert.False(t, profile.Schedule[0].Closed)
	for _, entry := range profile.Schedule[1:] {
		assert.True(t, entry.Closed)
	}
}

func TestAuthService_RegisterEntrepreneur_DuplicateTaxID(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterEntrepreneurInput{
		Name:         "Store Owner",
		Email:        "store@example.com",
		Password:     "Password123!",
		BusinessName: "Happy Paws",
		TaxID:        "1790012345001",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockEntrepreneurRepo := mockRepo.NewMockEntrepreneurRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewEntrepreneurRepository().Return(mockEntrepreneurRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAccountNotFound)

			mockEntrepreneurRepo.EXPECT().
				FindByTaxID(ctx, input.TaxID).
				Return(&entity.EntrepreneurProfile{ID: uuid.New(), TaxID: input.TaxID}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterEntrepreneur(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateTaxID))
}

func TestAuthService_Login_PetOwner_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:              uuid.New(),
		Email:           "owner@example.com",
		PasswordHash:    "hashed_password",
		PetOwnerProfile: &entity.PetOwnerProfile{},
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(account.ID, account.Email).Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, entity.RolePetOwner, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), output.AccountID)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Empty(t, output.EntrepreneurID)
}

func TestAuthService_Login_Admin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "hashed_password",
		IsAdmin:      true,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(account.ID, account.Email).Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, entity.RoleAdmin, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
}

func TestAuthService_Login_Entrepreneur_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := approvedEntrepreneurAccount("store@example.com")

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(account.ID, account.Email).Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, entity.RoleEntrepreneur, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, account.EntrepreneurProfile.ID.String(), output.EntrepreneurID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, entity.RolePetOwner, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:              uuid.New(),
		Email:           "owner@example.com",
		PasswordHash:    "hashed_password",
		PetOwnerProfile: &entity.PetOwnerProfile{},
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", account.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, entity.RolePetOwner, usecase.LoginInput{
		Email:    account.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:              uuid.New(),
		Email:           "owner@example.com",
		PasswordHash:    "hashed_password",
		PetOwnerProfile: &entity.PetOwnerProfile{},
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	output, err := fx.service.Login(ctx, entity.RoleAdmin, usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// The approval check runs before the password check: an unapproved
// entrepreneur must get the approval error even with valid credentials, and
// the hasher must never be consulted.
func TestAuthService_Login_UnapprovedEntrepreneur(t *testing.T) {
	for _, state := range []entity.ApprovalState{entity.StatePending, entity.StateRejected} {
		t.Run(state.String(), func(t *testing.T) {
			fx := createTestAuthService(t)

			ctx := context.Background()
			account := &entity.Account{
				ID:           uuid.New(),
				Email:        "store@example.com",
				PasswordHash: "hashed_password",
				EntrepreneurProfile: &entity.EntrepreneurProfile{
					ID:    uuid.New(),
					State: state,
				},
			}

			fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

			output, err := fx.service.Login(ctx, entity.RoleEntrepreneur, usecase.LoginInput{
				Email:    account.Email,
				Password: "Password123!",
			})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrAccountNotApproved))
			fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	fx := createTestAuthService(t)

	identity := &service.TokenIdentity{AccountID: uuid.New(), Email: "owner@example.com"}
	fx.tokenService.EXPECT().Verify("signed.token.value").Return(identity, nil)

	got, err := fx.service.VerifyToken(context.Background(), "signed.token.value")

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().Verify("garbage").Return(nil, domainerrors.ErrInvalidToken)

	got, err := fx.service.VerifyToken(context.Background(), "garbage")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
