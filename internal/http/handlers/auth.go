package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"navlun.com/app/internal/http/middleware"
	"navlun.com/app/internal/http/tokencookie"
	"navlun.com/app/internal/http/validation"
	"navlun.com/app/internal/modules/accounts"
	"navlun.com/app/internal/shared/apperr"
)

// AuthHandler owns registration, sign-in, and sign-out. Sessions are
// issued through the token store so both storage copies stay in step.
type AuthHandler struct {
	accounts *accounts.Service
	repo     *accounts.Repo
	tokens   *tokencookie.Store
}

func NewAuthHandler(svc *accounts.Service, repo *accounts.Repo, tokens *tokencookie.Store) *AuthHandler {
	return &AuthHandler{accounts: svc, repo: repo, tokens: tokens}
}

type registerReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role" binding:"omitempty,oneof=shipper provider"`
}

// Register creates the account and signs it in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please fill in the required fields.", validation.FromBindError(err, &req)))
		return
	}

	a, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password, req.CompanyName, req.Role)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if _, err := h.tokens.Issue(c, a.ID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please fill in the required fields.", validation.FromBindError(err, &req)))
		return
	}

	a, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if _, err := h.tokens.Issue(c, a.ID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

// Logout clears both copies of the session. Safe to call while already
// signed out.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.tokens.Clear(c)
	c.Status(http.StatusNoContent)
}

// Me returns the signed-in account.
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.CurrentAccountID(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Sign in to continue."))
		return
	}
	a, err := h.repo.GetByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.UnauthorizedErr("Sign in to continue."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, a)
}
