package tokencookie

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenRecord is one durable session row, keyed by the client cookie.
type TokenRecord struct {
	ClientKey    string    `gorm:"primaryKey;type:char(36)"`
	AccountID    string    `gorm:"type:char(36);not null;index:ix_token_records_account"`
	AccessToken  string    `gorm:"type:char(64);not null;uniqueIndex:ux_token_records_access"`
	RefreshToken string    `gorm:"type:char(64);not null"`
	ExpiresAt    time.Time `gorm:"type:datetime(3);not null"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null"`
}

func (TokenRecord) TableName() string { return "token_records" }

// GormBackend stores the durable token copies in MySQL.
type GormBackend struct{ db *gorm.DB }

func NewGormBackend(db *gorm.DB) *GormBackend { return &GormBackend{db: db} }

func (b *GormBackend) Put(ctx context.Context, clientKey string, p Pair, accountID string, expiresAt time.Time) error {
	rec := TokenRecord{
		ClientKey:    clientKey,
		AccountID:    accountID,
		AccessToken:  p.Access,
		RefreshToken: p.Refresh,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	// Re-issuing for the same client replaces the previous pair.
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"account_id", "access_token", "refresh_token", "expires_at", "updated_at",
		}),
	}).Create(&rec).Error
}

func (b *GormBackend) Get(ctx context.Context, clientKey string) (Pair, bool, error) {
	var rec TokenRecord
	err := b.db.WithContext(ctx).
		Where("client_key = ? AND expires_at > ?", clientKey, time.Now()).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Pair{}, false, nil
	}
	if err != nil {
		return Pair{}, false, err
	}
	return Pair{Access: rec.AccessToken, Refresh: rec.RefreshToken}, true, nil
}

func (b *GormBackend) AccountForAccess(ctx context.Context, accessToken string) (string, bool, error) {
	var rec TokenRecord
	err := b.db.WithContext(ctx).
		Where("access_token = ? AND expires_at > ?", accessToken, time.Now()).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.AccountID, true, nil
}

func (b *GormBackend) Delete(ctx context.Context, clientKey string) error {
	return b.db.WithContext(ctx).Delete(&TokenRecord{}, "client_key = ?", clientKey).Error
}
