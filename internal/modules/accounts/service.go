package accounts

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"navlun.com/app/internal/shared/apperr"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service { return &Service{repo: repo} }

// Register creates an account with a bcrypt-hashed password. A taken email
// is a business rejection (conflict), distinct from infrastructure errors.
func (s *Service) Register(ctx context.Context, email, password, companyName, role string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, apperr.Wrap(err)
	}

	a := Account{
		Email:        email,
		PasswordHash: string(hashed),
		CompanyName:  companyName,
		Role:         role,
	}
	if a.Role == "" {
		a.Role = "shipper"
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		if isDuplicateKey(err) {
			return Account{}, apperr.ConflictErr("An account with this email already exists.")
		}
		return Account{}, apperr.Wrap(err)
	}
	return created, nil
}

// Authenticate checks the credential pair. Wrong email and wrong password
// produce the same public message.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, apperr.UnauthorizedErr("Email or password is incorrect.")
		}
		return Account{}, apperr.Wrap(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return Account{}, apperr.UnauthorizedErr("Email or password is incorrect.")
	}
	return a, nil
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
