package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockAccessTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockAccessTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Name:                 "Ana Barbosa",
		Email:                "ana.barbosa@domain.com",
		Password:             "Password123!",
		PasswordConfirmation: "Password123!",
	}
	accountID := uuid.New()

	fx.accountRepo.EXPECT().
		LoadByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)

	// The hasher must receive the raw password, never the confirmation.
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, input.Name, account.Name)
			assert.Equal(t, input.Email, account.Email)
			assert.Equal(t, "hashed_password", account.Password)
			account.ID = accountID
		}).
		Return(nil)

	// The token is minted for the identity the insert produced.
	fx.tokenService.EXPECT().Generate(accountID, input.Email).Return("access_token", nil)

	fx.accountRepo.EXPECT().
		UpdateAccessToken(ctx, accountID, "access_token").
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, accountID, output.ID)
	assert.Equal(t, input.Name, output.Name)
	assert.Equal(t, input.Email, output.Email)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestAccountService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Name:                 "Ana Barbosa",
		Email:                "ana.barbosa@domain.com",
		Password:             "Password123!",
		PasswordConfirmation: "Password123!",
	}

	existing := &entity.Account{
		ID:       uuid.New(),
		Name:     "Ana Barbosa",
		Email:    input.Email,
		Password: "some_other_hash",
	}
	fx.accountRepo.EXPECT().
		LoadByEmail(ctx, input.Email).
		Return(existing, nil)

	// No hash, no insert, no token work. The mocks fail the test on any
	// unexpected call, so the absence of expectations is the assertion.
	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, output)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:       accountID,
		Name:     "Ana Barbosa",
		Email:    "ana.barbosa@domain.com",
		Password: "stored_hash",
	}

	fx.accountRepo.EXPECT().
		LoadByEmail(ctx, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Compare("Password123!", "stored_hash").Return(true, nil)
	fx.tokenService.EXPECT().Generate(accountID, account.Email).Return("fresh_token", nil)
	fx.accountRepo.EXPECT().
		UpdateAccessToken(ctx, accountID, "fresh_token").
		Return(nil)

	token, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    account.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh_token", token)
}

func TestAccountService_Authenticate_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		LoadByEmail(ctx, "nobody@domain.com").
		Return(nil, repository.ErrAccountNotFound)

	// The comparer must not run when there is no stored hash to compare against.
	token, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "nobody@domain.com",
		Password: "whatever",
	})

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAccountService_Authenticate_PasswordMismatch(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "ana.barbosa@domain.com",
		Password: "stored_hash",
	}

	fx.accountRepo.EXPECT().
		LoadByEmail(ctx, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Compare("wrong_password", "stored_hash").Return(false, nil)

	token, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    account.Email,
		Password: "wrong_password",
	})

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAccountService_AccountByToken_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:          uuid.New(),
		Email:       "ana.barbosa@domain.com",
		AccessToken: "valid_token",
	}

	fx.tokenService.EXPECT().Parse("valid_token").Return(&service.AccessTokenClaims{AccountID: account.ID, Email: account.Email}, nil)
	fx.accountRepo.EXPECT().
		LoadByToken(ctx, "valid_token").
		Return(account, nil)

	got, err := fx.service.AccountByToken(ctx, "valid_token")

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_AccountByToken_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().Parse("garbage").Return(nil, assert.AnError)

	// The store is never consulted for a token that fails verification.
	got, err := fx.service.AccountByToken(ctx, "garbage")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountService_AccountByToken_UnknownToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().Parse("orphan_token").Return(&service.AccessTokenClaims{}, nil)
	fx.accountRepo.EXPECT().
		LoadByToken(ctx, "orphan_token").
		Return(nil, repository.ErrAccountNotFound)

	got, err := fx.service.AccountByToken(ctx, "orphan_token")

	require.NoError(t, err)
	assert.Nil(t, got)
}
