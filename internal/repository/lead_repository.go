package repository

import (
	"context"

	"gorm.io/gorm"

	"infracore/internal/model"
)

// LeadRepository persists captured leads. Leads are immutable after creation.
type LeadRepository interface {
	CreateContact(ctx context.Context, msg *model.ContactMessage) error
	CreateQuotation(ctx context.Context, quotation *model.Quotation) error
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository builds a GORM-backed repository.
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) CreateContact(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *leadRepository) CreateQuotation(ctx context.Context, quotation *model.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}
