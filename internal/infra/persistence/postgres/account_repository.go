// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
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

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, "id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its normalized email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database. Uniqueness of the
// email is enforced by the database constraint in the same statement as the
// insert, so two concurrent registrations for one email cannot both succeed.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	// Map the pure domain entity to a GORM persistence model.
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", accountM.ID).
		Updates(map[string]any{
			"name":          accountM.Name,
			"email":         accountM.Email,
			"password_hash": accountM.PasswordHash,
			"role":          accountM.Role,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	// Re-read the row so callers observe the database-assigned timestamp.
	var saved model.AccountModel
	if err := repo.db.WithContext(ctx).First(&saved, "id = ?", accountM.ID).Error; err != nil {
		return errors.Wrap(err, "failed to reload account after update")
	}
	account.UpdatedAt = saved.UpdatedAt

	return nil
}

// CountAll returns the total number of accounts.
func (repo *accountRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return total, nil
}

// ListPage returns accounts ordered by creation time, oldest first.
func (repo *accountRepository) ListPage(ctx context.Context, offset, limit int) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
	}
}
