// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.AccessTokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.AccessTokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// SignUp provisions a new account and attaches a fresh access token.
//
// The steps run strictly in order: duplicate lookup, hash, insert, token
// generation, token update. A duplicate email short-circuits to (nil, nil)
// without touching the store. Any collaborator fault aborts the remaining
// steps and propagates; there is no retry and no compensation — if the insert
// succeeded and a later step fails, the tokenless account row is left in
// place, and the next sign-up attempt with the same email short-circuits on it.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.logger.Info("Starting sign-up", slog.String("email", input.Email))

	_, err := srv.accountRepo.LoadByEmail(ctx, input.Email)
	if err == nil {
		// An account already holds this email. A normal outcome, not a fault.
		srv.logger.Debug("Sign-up rejected, email already registered", slog.String("email", input.Email))

		return nil, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to load account by email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	token, err := srv.tokenService.Generate(account.ID, account.Email)
	if err != nil {
		srv.logger.Error("Failed to generate access token after account creation",
			slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	if err := srv.accountRepo.UpdateAccessToken(ctx, account.ID, token); err != nil {
		return nil, errors.Wrap(err, "failed to update access token")
	}

	srv.logger.Debug("Sign-up completed", slog.Any("accountID", account.ID))

	return &usecase.SignUpOutput{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		AccessToken: token,
	}, nil
}

// Authenticate checks credentials against the store. A match mints a fresh
// access token, overwrites the stored one, and returns it. Unknown email and
// wrong password both yield an empty token with no error; the comparer is not
// consulted for an unknown email.
func (srv *accountService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (string, error) {
	srv.logger.Debug("Starting authentication", slog.String("email", input.Email))

	account, err := srv.accountRepo.LoadByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load account by email")
	}

	match, err := srv.hasher.Compare(input.Password, account.Password)
	if err != nil {
		srv.logger.Error("Password comparison failed", slog.Any("accountID", account.ID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to compare password")
	}
	if !match {
		srv.logger.Debug("Authentication rejected, password mismatch", slog.Any("accountID", account.ID))

		return "", nil
	}

	token, err := srv.tokenService.Generate(account.ID, account.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	if err := srv.accountRepo.UpdateAccessToken(ctx, account.ID, token); err != nil {
		return "", errors.Wrap(err, "failed to update access token")
	}

	return token, nil
}

// AccountByToken resolves an access token to the account it gates. A token
// that fails signature/expiry checks or matches no stored account yields
// (nil, nil); only storage faults produce an error.
func (srv *accountService) AccountByToken(ctx context.Context, token string) (*entity.Account, error) {
	if _, err := srv.tokenService.Parse(token); err != nil {
		return nil, nil
	}

	account, err := srv.accountRepo.LoadByToken(ctx, token)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account by token")
	}

	return account, nil
}
