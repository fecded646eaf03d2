package session

import (
	"context"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/gateway"
	"github.com/exebone56/ecom-pulse2/models"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

// Session is the single source of truth for "who is logged in". It is an
// explicitly constructed object (no package globals): build one at program
// start, pass it to whatever composes the UI or CLI.
type Session struct {
	api    *gateway.Client
	store  TokenStore
	logger *logrus.Logger

	mu   sync.RWMutex
	user *models.User
}

func New(api *gateway.Client, store TokenStore, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = config.GetLogger()
	}
	return &Session{api: api, store: store, logger: logger}
}

// LoginResult is a discriminated outcome: callers render Error inline
// instead of handling a thrown failure.
type LoginResult struct {
	Success bool
	Error   string
	User    *models.User
}

func (s *Session) Login(ctx context.Context, email, password string) LoginResult {
	input := gateway.LoginInput{Email: email, Password: password}
	if err := validate.Struct(input); err != nil {
		return LoginResult{Error: "enter a valid email and password"}
	}

	resp, err := s.api.Login(ctx, input)
	if err != nil {
		return LoginResult{Error: err.Error()}
	}

	pair := models.TokenPair{Access: resp.Access, Refresh: resp.Refresh}
	if err := s.store.Set(pair); err != nil {
		config.LogError(s.logger, "session", "Login", "persist tokens", nil, err)
		return LoginResult{Error: "could not persist session"}
	}

	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	return LoginResult{Success: true, User: &user}
}

// Logout clears the persisted pair and the in-memory profile. Idempotent.
func (s *Session) Logout() {
	if err := s.store.Clear(); err != nil {
		config.LogError(s.logger, "session", "Logout", "clear tokens", nil, err)
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Bootstrap resolves the profile for a previously persisted token. An
// invalid or expired token triggers an implicit logout; that is not an error
// for the caller, just an unauthenticated start.
func (s *Session) Bootstrap(ctx context.Context) error {
	if _, err := s.store.Get(); err != nil {
		return nil
	}

	user, err := s.api.UserInfo(ctx)
	if err != nil {
		s.logger.WithField("module", "session").Info("stored token rejected, logging out")
		s.Logout()
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Authenticated() bool {
	return s.User() != nil
}

// TokenExpiresAt inspects the stored access token's exp claim without
// verifying the signature (the client has no key material). There is no
// refresh flow; expiry still surfaces reactively as a 401.
func (s *Session) TokenExpiresAt() (time.Time, bool) {
	pair, err := s.store.Get()
	if err != nil {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(pair.Access, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
