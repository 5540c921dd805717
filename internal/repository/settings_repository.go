package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"infracore/internal/model"
)

// SettingsRepository reads and writes the single notification settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.NotificationSettings, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Create(ctx context.Context, settings *model.NotificationSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository builds a GORM-backed repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the first (by convention, only) settings row.
func (r *settingsRepository) Get(ctx context.Context) (*model.NotificationSettings, error) {
	var settings model.NotificationSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.NotificationSettings{}).Where("id = ?", id).Updates(updates).Error
}

func (r *settingsRepository) Create(ctx context.Context, settings *model.NotificationSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}
