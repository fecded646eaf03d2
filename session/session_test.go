package session_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/gateway"
	"github.com/exebone56/ecom-pulse2/models"
	"github.com/exebone56/ecom-pulse2/session"
	"github.com/gin-gonic/gin"
)

// unsignedJWT builds a structurally valid token with the given exp; the
// session only reads claims, it never verifies signatures.
func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	enc := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	claims := enc(map[string]any{"exp": exp.Unix(), "user_id": 1})
	return fmt.Sprintf("%s.%s.sig", header, claims)
}

func authBackend(t *testing.T, accessToken string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login/", func(c *gin.Context) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		if body.Password != "correct horse" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token":  accessToken,
			"refresh_token": "refresh-1",
			"user": gin.H{
				"id": 1, "email": body.Email,
				"first_name": "Ann", "last_name": "Lee", "role": "manager",
			},
		})
	})
	r.GET("/user-info/", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+accessToken {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "token rejected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": 1, "email": "ann@example.com", "first_name": "Ann"})
	})
	return r
}

func newTestSession(t *testing.T, r *gin.Engine) (*session.Session, *session.FileTokenStore) {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	store := session.NewFileTokenStore(filepath.Join(t.TempDir(), "tokens.json"))
	cfg := &config.Config{BaseURL: srv.URL, HTTPTimeout: 5 * time.Second}
	api := gateway.NewClient(cfg, store)
	return session.New(api, store, nil), store
}

func TestLogin_PersistsTokensAndUser(t *testing.T) {
	token := unsignedJWT(t, time.Now().Add(time.Hour))
	sess, store := newTestSession(t, authBackend(t, token))

	result := sess.Login(context.Background(), "ann@example.com", "correct horse")
	if !result.Success {
		t.Fatalf("login failed: %s", result.Error)
	}
	if result.User == nil || result.User.FirstName != "Ann" {
		t.Errorf("user = %+v", result.User)
	}
	if !sess.Authenticated() {
		t.Error("session not authenticated after login")
	}

	pair, err := store.Get()
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	if pair.Access != token || pair.Refresh != "refresh-1" {
		t.Errorf("stored pair = %+v", pair)
	}
}

func TestLogin_BadCredentialsSurfacesServerMessage(t *testing.T) {
	sess, store := newTestSession(t, authBackend(t, "tok"))

	result := sess.Login(context.Background(), "ann@example.com", "wrong")
	if result.Success {
		t.Fatal("login succeeded with wrong password")
	}
	if result.Error != "invalid credentials" {
		t.Errorf("error = %q, want %q", result.Error, "invalid credentials")
	}
	if _, err := store.Get(); err == nil {
		t.Error("tokens persisted after failed login")
	}
}

// Client-side validation stops obviously bad input before any network call.
func TestLogin_InvalidEmailBlockedLocally(t *testing.T) {
	sess, _ := newTestSession(t, authBackend(t, "tok"))
	result := sess.Login(context.Background(), "not-an-email", "pw")
	if result.Success {
		t.Fatal("login succeeded with invalid email")
	}
	if result.Error != "enter a valid email and password" {
		t.Errorf("error = %q", result.Error)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	token := unsignedJWT(t, time.Now().Add(time.Hour))
	sess, store := newTestSession(t, authBackend(t, token))
	if r := sess.Login(context.Background(), "ann@example.com", "correct horse"); !r.Success {
		t.Fatalf("login: %s", r.Error)
	}

	sess.Logout()
	if sess.Authenticated() {
		t.Error("still authenticated after logout")
	}
	if _, err := store.Get(); err == nil {
		t.Error("tokens survive logout")
	}

	sess.Logout() // second logout must not fail
	if sess.Authenticated() {
		t.Error("authenticated after double logout")
	}
}

func TestBootstrap_NoStoredTokenIsNotAnError(t *testing.T) {
	sess, _ := newTestSession(t, authBackend(t, "tok"))
	if err := sess.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if sess.Authenticated() {
		t.Error("authenticated without any stored token")
	}
}

func TestBootstrap_ResolvesStoredToken(t *testing.T) {
	token := unsignedJWT(t, time.Now().Add(time.Hour))
	sess, store := newTestSession(t, authBackend(t, token))
	if err := store.Set(models.TokenPair{Access: token}); err != nil {
		t.Fatalf("store.Set: %v", err)
	}

	if err := sess.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if !sess.Authenticated() {
		t.Fatal("not authenticated after bootstrap with a valid token")
	}
	if got := sess.User().FirstName; got != "Ann" {
		t.Errorf("user first name = %q, want Ann", got)
	}
}

// A rejected stored token means an implicit logout, not an error.
func TestBootstrap_RejectedTokenLogsOut(t *testing.T) {
	sess, store := newTestSession(t, authBackend(t, "the-real-token"))
	if err := store.Set(models.TokenPair{Access: "stale-token"}); err != nil {
		t.Fatalf("store.Set: %v", err)
	}

	if err := sess.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if sess.Authenticated() {
		t.Error("authenticated with a rejected token")
	}
	if _, err := store.Get(); err == nil {
		t.Error("rejected token still stored")
	}
}

func TestTokenExpiresAt(t *testing.T) {
	exp := time.Now().Add(45 * time.Minute).Truncate(time.Second)
	token := unsignedJWT(t, exp)
	sess, store := newTestSession(t, authBackend(t, token))
	if err := store.Set(models.TokenPair{Access: token}); err != nil {
		t.Fatalf("store.Set: %v", err)
	}

	got, ok := sess.TokenExpiresAt()
	if !ok {
		t.Fatal("TokenExpiresAt not ok")
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %s, want %s", got, exp)
	}
}

func TestFileTokenStore_MissingFile(t *testing.T) {
	store := session.NewFileTokenStore(filepath.Join(t.TempDir(), "nope", "tokens.json"))
	if _, err := store.Get(); err == nil {
		t.Error("want error for missing token file")
	}
	if _, ok := store.AccessToken(); ok {
		t.Error("AccessToken ok for missing file")
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on missing file: %v", err)
	}
}
