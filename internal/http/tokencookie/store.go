// Package tokencookie enforces the platform's session contract in one
// place: access/refresh tokens are written both to a durable keyed store
// and to cookies, reads prefer the cookie copy and fall back to the durable
// one, and clearing auth removes both copies.
package tokencookie

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccessCookie  = "nv_access"
	RefreshCookie = "nv_refresh"
	ClientCookie  = "nv_client"

	// Cookie lifetime of the mirrored copies.
	TTL = 7 * 24 * time.Hour
)

// Pair is an access/refresh token pair.
type Pair struct {
	Access  string
	Refresh string
}

// Backend is the durable side of the dual-storage scheme.
type Backend interface {
	Put(ctx context.Context, clientKey string, p Pair, accountID string, expiresAt time.Time) error
	Get(ctx context.Context, clientKey string) (Pair, bool, error)
	AccountForAccess(ctx context.Context, accessToken string) (string, bool, error)
	Delete(ctx context.Context, clientKey string) error
}

// Store is the single entry point for session token reads and writes.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store { return &Store{backend: backend} }

// Issue mints an opaque token pair and writes it to both storages. The
// client key ties the durable rows to this browser; it is created here on
// first issue and reused afterwards.
func (s *Store) Issue(c *gin.Context, accountID string) (Pair, error) {
	p := Pair{Access: randomToken(), Refresh: randomToken()}

	clientKey, err := c.Cookie(ClientCookie)
	if err != nil || clientKey == "" {
		clientKey = uuid.NewString()
	}

	if err := s.backend.Put(c.Request.Context(), clientKey, p, accountID, time.Now().Add(TTL)); err != nil {
		return Pair{}, err
	}

	maxAge := int(TTL.Seconds())
	secure := c.Request.TLS != nil // opportunistic: only over encrypted transport
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ClientCookie, clientKey, maxAge, "/", "", secure, true)
	c.SetCookie(AccessCookie, p.Access, maxAge, "/", "", secure, true)
	c.SetCookie(RefreshCookie, p.Refresh, maxAge, "/", "", secure, true)
	return p, nil
}

// Tokens reads the current pair: cookie copy first, durable copy if the
// cookies are gone. Returns false when neither side has a session.
func (s *Store) Tokens(c *gin.Context) (Pair, bool) {
	access, aErr := c.Cookie(AccessCookie)
	refresh, rErr := c.Cookie(RefreshCookie)
	if aErr == nil && rErr == nil && access != "" && refresh != "" {
		return Pair{Access: access, Refresh: refresh}, true
	}

	clientKey, err := c.Cookie(ClientCookie)
	if err != nil || clientKey == "" {
		return Pair{}, false
	}
	p, ok, err := s.backend.Get(c.Request.Context(), clientKey)
	if err != nil || !ok {
		return Pair{}, false
	}
	return p, true
}

// AccountForAccess resolves an access token to its account id.
func (s *Store) AccountForAccess(ctx context.Context, accessToken string) (string, bool) {
	id, ok, err := s.backend.AccountForAccess(ctx, accessToken)
	if err != nil {
		return "", false
	}
	return id, ok
}

// Clear removes both copies of the session.
func (s *Store) Clear(c *gin.Context) {
	if clientKey, err := c.Cookie(ClientCookie); err == nil && clientKey != "" {
		_ = s.backend.Delete(c.Request.Context(), clientKey)
	}
	secure := c.Request.TLS != nil
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessCookie, "", -1, "/", "", secure, true)
	c.SetCookie(RefreshCookie, "", -1, "/", "", secure, true)
	c.SetCookie(ClientCookie, "", -1, "/", "", secure, true)
}

func randomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
