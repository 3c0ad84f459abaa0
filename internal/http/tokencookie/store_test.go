package tokencookie

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBackend struct {
	pairs    map[string]Pair
	accounts map[string]string // access token -> account id
	deleted  []string
}

func newMemBackend() *memBackend {
	return &memBackend{pairs: map[string]Pair{}, accounts: map[string]string{}}
}

func (m *memBackend) Put(_ context.Context, clientKey string, p Pair, accountID string, _ time.Time) error {
	m.pairs[clientKey] = p
	m.accounts[p.Access] = accountID
	return nil
}

func (m *memBackend) Get(_ context.Context, clientKey string) (Pair, bool, error) {
	p, ok := m.pairs[clientKey]
	return p, ok, nil
}

func (m *memBackend) AccountForAccess(_ context.Context, accessToken string) (string, bool, error) {
	id, ok := m.accounts[accessToken]
	return id, ok, nil
}

func (m *memBackend) Delete(_ context.Context, clientKey string) error {
	m.deleted = append(m.deleted, clientKey)
	delete(m.pairs, clientKey)
	return nil
}

func testContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func setCookieNames(w *httptest.ResponseRecorder) []string {
	var names []string
	for _, v := range w.Header().Values("Set-Cookie") {
		names = append(names, strings.SplitN(v, "=", 2)[0])
	}
	return names
}

func TestIssueWritesBothCopies(t *testing.T) {
	backend := newMemBackend()
	store := New(backend)
	c, w := testContext(t)

	p, err := store.Issue(c, "acct-1")
	require.NoError(t, err)
	require.NotEmpty(t, p.Access)
	require.NotEmpty(t, p.Refresh)
	assert.NotEqual(t, p.Access, p.Refresh)

	// Durable copy.
	require.Len(t, backend.pairs, 1)
	for _, stored := range backend.pairs {
		assert.Equal(t, p, stored)
	}

	// Cookie copy, Lax and HttpOnly, with the 7-day max age.
	names := setCookieNames(w)
	assert.Contains(t, names, AccessCookie)
	assert.Contains(t, names, RefreshCookie)
	assert.Contains(t, names, ClientCookie)
	for _, v := range w.Header().Values("Set-Cookie") {
		assert.Contains(t, v, "SameSite=Lax")
		assert.Contains(t, v, "Max-Age=604800")
		// Plain HTTP request: the Secure flag is withheld.
		assert.NotContains(t, v, "Secure")
	}
}

func TestTokensPrefersCookieCopy(t *testing.T) {
	backend := newMemBackend()
	backend.pairs["client-1"] = Pair{Access: "durable-a", Refresh: "durable-r"}
	store := New(backend)

	c, _ := testContext(t,
		&http.Cookie{Name: ClientCookie, Value: "client-1"},
		&http.Cookie{Name: AccessCookie, Value: "cookie-a"},
		&http.Cookie{Name: RefreshCookie, Value: "cookie-r"},
	)

	p, ok := store.Tokens(c)
	require.True(t, ok)
	assert.Equal(t, Pair{Access: "cookie-a", Refresh: "cookie-r"}, p)
}

func TestTokensFallsBackToDurableCopy(t *testing.T) {
	backend := newMemBackend()
	backend.pairs["client-1"] = Pair{Access: "durable-a", Refresh: "durable-r"}
	store := New(backend)

	c, _ := testContext(t, &http.Cookie{Name: ClientCookie, Value: "client-1"})

	p, ok := store.Tokens(c)
	require.True(t, ok)
	assert.Equal(t, Pair{Access: "durable-a", Refresh: "durable-r"}, p)
}

func TestTokensAbsentEverywhere(t *testing.T) {
	store := New(newMemBackend())
	c, _ := testContext(t)

	_, ok := store.Tokens(c)
	assert.False(t, ok)
}

func TestClearRemovesBothCopies(t *testing.T) {
	backend := newMemBackend()
	backend.pairs["client-1"] = Pair{Access: "a", Refresh: "r"}
	store := New(backend)

	c, w := testContext(t,
		&http.Cookie{Name: ClientCookie, Value: "client-1"},
		&http.Cookie{Name: AccessCookie, Value: "a"},
		&http.Cookie{Name: RefreshCookie, Value: "r"},
	)

	store.Clear(c)

	assert.Equal(t, []string{"client-1"}, backend.deleted)
	assert.Empty(t, backend.pairs)
	for _, v := range w.Header().Values("Set-Cookie") {
		assert.Contains(t, v, "Max-Age=0")
	}
	assert.Len(t, w.Header().Values("Set-Cookie"), 3)
}

func TestAccountForAccess(t *testing.T) {
	backend := newMemBackend()
	store := New(backend)
	c, _ := testContext(t)

	p, err := store.Issue(c, "acct-9")
	require.NoError(t, err)

	id, ok := store.AccountForAccess(context.Background(), p.Access)
	require.True(t, ok)
	assert.Equal(t, "acct-9", id)

	_, ok = store.AccountForAccess(context.Background(), "unknown")
	assert.False(t, ok)
}
