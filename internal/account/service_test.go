package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/example/photoproof/internal/repository"
)

type stubRepo struct {
	byEmail map[string]*repository.Account
	nextID  uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{byEmail: make(map[string]*repository.Account)}
}

func (s *stubRepo) Create(ctx context.Context, account *repository.Account) error {
	s.nextID++
	account.ID = s.nextID
	s.byEmail[account.Email] = account
	return nil
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*repository.Account, error) {
	if acct, ok := s.byEmail[email]; ok {
		return acct, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindByID(ctx context.Context, id uint) (*repository.Account, error) {
	for _, acct := range s.byEmail {
		if acct.ID == id {
			return acct, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCache struct {
	values map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{values: make(map[string]string)}
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.values[key] = value.(string)
	return nil
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (s *stubCache) Del(ctx context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func newTestService() (*Service, *stubRepo, *stubCache) {
	repo := newStubRepo()
	cache := newStubCache()
	sessions := NewSessionStore(cache, "test-secret", time.Hour, zap.NewNop())
	return NewService(repo, sessions, zap.NewNop()), repo, cache
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo, _ := newTestService()

	acct, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if acct.ID == 0 {
		t.Fatal("expected assigned id")
	}

	stored := repo.byEmail["a@x.com"]
	if stored.PasswordHash == "p" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestService()

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "p"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "B", "a@x.com", "q"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("account count changed: %d", len(repo.byEmail))
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	svc, _, _ := newTestService()

	registered, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	acct, token, err := svc.Login(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if acct.ID != registered.ID {
		t.Fatalf("expected account %d, got %d", registered.ID, acct.ID)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	actorID, err := svc.Sessions().Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if actorID != registered.ID {
		t.Fatalf("session resolves to %d, want %d", actorID, registered.ID)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "p"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "a@x.com", "nope")
	_, _, noSuchEmail := svc.Login(context.Background(), "b@x.com", "p")

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noSuchEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noSuchEmail)
	}
	if wrongPass.Error() != noSuchEmail.Error() {
		t.Fatalf("failure modes distinguishable: %q vs %q", wrongPass, noSuchEmail)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, cache := newTestService()

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "p"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, token, err := svc.Login(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if len(cache.values) != 0 {
		t.Fatalf("session key not deleted: %v", cache.values)
	}
	if _, err := svc.Sessions().Resolve(context.Background(), token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}
