package pricing

import "time"

// InspectionPricing is one provider-owned price row for an inspection
// service in a given city.
type InspectionPricing struct {
	ID                string    `gorm:"primaryKey;type:char(36)" json:"id"`
	ServiceProviderID string    `gorm:"type:char(36);not null;index:ix_inspection_pricings_provider_created" json:"serviceProviderId"`
	Product           string    `gorm:"type:varchar(191);not null" json:"product"`
	City              string    `gorm:"type:varchar(191);not null" json:"city"`
	InspectionType    string    `gorm:"type:varchar(100);not null" json:"inspectionType"`
	Price             float64   `gorm:"not null" json:"price"`
	Currency          string    `gorm:"type:char(3);not null;default:USD" json:"currency"`
	Note              string    `gorm:"type:text" json:"note,omitempty"`
	Status            string    `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt         time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (InspectionPricing) TableName() string { return "inspection_pricings" }

// FreightRate is one provider-owned lane rate.
type FreightRate struct {
	ID                string    `gorm:"primaryKey;type:char(36)" json:"id"`
	ServiceProviderID string    `gorm:"type:char(36);not null;index:ix_freight_rates_provider_created" json:"serviceProviderId"`
	Origin            string    `gorm:"type:varchar(191);not null" json:"origin"`
	Destination       string    `gorm:"type:varchar(191);not null" json:"destination"`
	Mode              string    `gorm:"type:varchar(50);not null" json:"mode"`
	Rate              float64   `gorm:"not null" json:"rate"`
	Unit              string    `gorm:"type:varchar(50);not null;default:container" json:"unit"`
	Currency          string    `gorm:"type:char(3);not null;default:USD" json:"currency"`
	Note              string    `gorm:"type:text" json:"note,omitempty"`
	Status            string    `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt         time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (FreightRate) TableName() string { return "freight_rates" }
