package account

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session"

// ErrNoSession is returned when a token does not resolve to a live session.
var ErrNoSession = errors.New("no active session")

// SessionStore manages browser sessions. The cookie value is an HS256 JWT
// whose subject is a session id; the id maps to an account id in Redis
// with a TTL, so logout revokes the session server-side regardless of the
// cookie's lifetime.
type SessionStore struct {
	cache  Cache
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

// NewSessionStore constructs a session store signing tokens with secret.
func NewSessionStore(cache Cache, secret string, ttl time.Duration, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		cache:  cache,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger.Named("session_store"),
	}
}

// TTL returns the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Create establishes a session for the account and returns the signed token.
func (s *SessionStore) Create(ctx context.Context, accountID uint) (string, error) {
	sid := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKey(sid), strconv.FormatUint(uint64(accountID), 10), s.ttl); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Resolve verifies the token and returns the account id it belongs to.
// Invalid, expired, and revoked tokens all yield ErrNoSession.
func (s *SessionStore) Resolve(ctx context.Context, token string) (uint, error) {
	sid, err := s.parse(token)
	if err != nil {
		return 0, ErrNoSession
	}

	value, err := s.cache.Get(ctx, sessionKey(sid))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, err
	}

	accountID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		s.logger.Warn("corrupt session value", zap.String("session_id", sid), zap.Error(err))
		return 0, ErrNoSession
	}
	return uint(accountID), nil
}

// Destroy revokes the session behind the token. Unparseable tokens are a
// no-op: there is nothing to revoke.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	sid, err := s.parse(token)
	if err != nil {
		return nil
	}
	return s.cache.Del(ctx, sessionKey(sid))
}

func (s *SessionStore) parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

func sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}
