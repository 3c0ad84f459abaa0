package middleware

import (
	"github.com/gin-gonic/gin"

	"navlun.com/app/internal/http/tokencookie"
	"navlun.com/app/internal/shared/apperr"
)

const CtxKeyAccountID = "account_id"

// Auth resolves the request's session through the token store and, when
// valid, puts the account id on the context. Anonymous requests pass
// through untouched; RequireAuth decides who must be signed in.
func Auth(tokens *tokencookie.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		pair, ok := tokens.Tokens(c)
		if !ok {
			c.Next()
			return
		}
		accountID, ok := tokens.AccountForAccess(c.Request.Context(), pair.Access)
		if !ok {
			c.Next()
			return
		}
		c.Set(CtxKeyAccountID, accountID)
		c.Next()
	}
}

// CurrentAccountID returns the signed-in account, if any.
func CurrentAccountID(c *gin.Context) (string, bool) {
	if v, ok := c.Get(CtxKeyAccountID); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// RequireAuth aborts anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentAccountID(c); !ok {
			Fail(c, apperr.UnauthorizedErr("Sign in to continue."))
			return
		}
		c.Next()
	}
}
