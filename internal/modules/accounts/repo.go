package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, a Account) (Account, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return Account{}, err
	}
	return a, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (Account, error) {
	var a Account
	err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error
	return a, err
}

func (r *Repo) GetByID(ctx context.Context, id string) (Account, error) {
	var a Account
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return a, err
}
