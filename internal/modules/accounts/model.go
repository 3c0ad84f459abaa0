package accounts

import "time"

// Account is a registered platform user (shipper or service provider).
type Account struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Email        string    `gorm:"type:varchar(191);not null;uniqueIndex:ux_accounts_email" json:"email"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	CompanyName  string    `gorm:"type:varchar(191)" json:"companyName"`
	Role         string    `gorm:"type:varchar(30);not null;default:shipper" json:"role"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (Account) TableName() string { return "accounts" }
