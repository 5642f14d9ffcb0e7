// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// LoadByEmail retrieves a single account by its email address.
func (repo *accountRepository) LoadByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return the domain-specific sentinel.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account by email")
	}

	return toAccountDomain(&accountM), nil
}

// LoadByToken retrieves the account currently holding the given access token.
func (repo *accountRepository) LoadByToken(ctx context.Context, token string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("access_token = ?", token).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account by token")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The store assigns the ID and timestamps and
// writes them back onto the entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateAccessToken overwrites the account's current access token.
func (repo *accountRepository) UpdateAccessToken(ctx context.Context, accountID uuid.UUID, token string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Update("access_token", token).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update access token")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	var token string
	if data.AccessToken != nil {
		token = *data.AccessToken
	}

	return &entity.Account{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		Password:    data.Password,
		AccessToken: token,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
	}
	if data.AccessToken != "" {
		token := data.AccessToken
		accountM.AccessToken = &token
	}

	return accountM
}
