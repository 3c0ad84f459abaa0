package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) CreateInspection(ctx context.Context, rec InspectionPricing) (InspectionPricing, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return InspectionPricing{}, err
	}
	return rec, nil
}

func (r *Repo) GetInspection(ctx context.Context, id string) (InspectionPricing, error) {
	var rec InspectionPricing
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	return rec, err
}

func (r *Repo) ListInspectionsByProvider(ctx context.Context, providerID string) ([]InspectionPricing, error) {
	var items []InspectionPricing
	err := r.db.WithContext(ctx).
		Where("service_provider_id = ?", providerID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) UpdateInspection(ctx context.Context, id string, fields map[string]any) (InspectionPricing, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&InspectionPricing{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return InspectionPricing{}, res.Error
	}
	if res.RowsAffected == 0 {
		return InspectionPricing{}, gorm.ErrRecordNotFound
	}
	return r.GetInspection(ctx, id)
}

func (r *Repo) DeleteInspection(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&InspectionPricing{}, "id = ?", id).Error
}

func (r *Repo) CreateFreightRate(ctx context.Context, rec FreightRate) (FreightRate, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return FreightRate{}, err
	}
	return rec, nil
}

func (r *Repo) GetFreightRate(ctx context.Context, id string) (FreightRate, error) {
	var rec FreightRate
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	return rec, err
}

func (r *Repo) ListFreightRatesByProvider(ctx context.Context, providerID string) ([]FreightRate, error) {
	var items []FreightRate
	err := r.db.WithContext(ctx).
		Where("service_provider_id = ?", providerID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) UpdateFreightRate(ctx context.Context, id string, fields map[string]any) (FreightRate, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&FreightRate{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return FreightRate{}, res.Error
	}
	if res.RowsAffected == 0 {
		return FreightRate{}, gorm.ErrRecordNotFound
	}
	return r.GetFreightRate(ctx, id)
}

func (r *Repo) DeleteFreightRate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&FreightRate{}, "id = ?", id).Error
}
