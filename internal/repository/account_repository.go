package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/photoproof/internal/logging"
)

// AccountRepository provides persistence APIs for accounts.
type AccountRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAccountRepository creates a new repository instance.
func NewAccountRepository(db *gorm.DB, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{db: db, logger: logger.Named("account_repository")}
}

// AutoMigrate ensures the accounts schema is available.
func (r *AccountRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Account{})
}

// Create persists a new account.
func (r *AccountRepository) Create(ctx context.Context, account *Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		wrapped := logging.NewOperationError("repository.create_account", account.Email, err)
		r.logger.Error("failed to create account", zap.Error(wrapped))
		return wrapped
	}
	return nil
}

// FindByEmail retrieves the account registered under the given email.
// Returns gorm.ErrRecordNotFound when no such account exists.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	if err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByID retrieves an account by primary key.
func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*Account, error) {
	var account Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Count returns the number of registered accounts.
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Account{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
