package account

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/example/photoproof/internal/logging"
	"github.com/example/photoproof/internal/repository"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository defines the persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, account *repository.Account) error
	FindByEmail(ctx context.Context, email string) (*repository.Account, error)
	FindByID(ctx context.Context, id uint) (*repository.Account, error)
}

// Service implements registration, login and logout.
type Service struct {
	repo     Repository
	sessions *SessionStore
	logger   *zap.Logger
}

// NewService constructs a new account service.
func NewService(repo Repository, sessions *SessionStore, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		logger:   logger.Named("account_service"),
	}
}

// Sessions exposes the session store for middleware wiring.
func (s *Service) Sessions() *SessionStore {
	return s.sessions
}

// Register creates an account with a bcrypt-hashed password. The duplicate
// check is a lookup, not a race-safe reservation; the unique index on
// email is the backstop.
func (s *Service) Register(ctx context.Context, name, email, password string) (*repository.Account, error) {
	opLogger := logging.WithOperation(s.logger, "account.register", email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		opLogger.Error("email lookup failed", zap.Error(err))
		return nil, logging.NewOperationError("account.register", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		opLogger.Error("password hashing failed", zap.Error(err))
		return nil, logging.NewOperationError("account.register", email, err)
	}

	acct := &repository.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, err
	}

	opLogger.Info("account registered", zap.Uint("account_id", acct.ID))
	return acct, nil
}

// Login verifies credentials and establishes a session, returning the
// account and the signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (*repository.Account, string, error) {
	opLogger := logging.WithOperation(s.logger, "account.login", email)

	acct, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		opLogger.Error("email lookup failed", zap.Error(err))
		return nil, "", logging.NewOperationError("account.login", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, acct.ID)
	if err != nil {
		opLogger.Error("session creation failed", zap.Error(err))
		return nil, "", logging.NewOperationError("account.login", email, err)
	}

	opLogger.Info("login succeeded", zap.Uint("account_id", acct.ID))
	return acct, token, nil
}

// Logout revokes the session behind the token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Get loads an account by id.
func (s *Service) Get(ctx context.Context, id uint) (*repository.Account, error) {
	return s.repo.FindByID(ctx, id)
}
