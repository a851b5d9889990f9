// Package settingsrepo reads the runtime messaging configuration. The
// settings table holds a single row that admins edit at runtime, so it is
// re-read on every acquisition instead of cached.
package settingsrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// SettingsDTO represents the single messaging configuration row.
type SettingsDTO struct {
	ID               int64 `gorm:"primaryKey"`
	StaffChannelID   int64
	StaffBotToken    string
	CustomerBotToken string
}

// TableName specifies the database table name for the settings row.
func (SettingsDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get reads the current messaging configuration. A missing row is valid:
// the system runs with messaging disabled until an admin configures it.
func (r *GormSettingsRepository) Get(ctx context.Context) (ports.Settings, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Settings{}, nil
		}
		return ports.Settings{}, err
	}

	return ports.Settings{
		StaffChannelID:   dto.StaffChannelID,
		StaffBotToken:    dto.StaffBotToken,
		CustomerBotToken: dto.CustomerBotToken,
	}, nil
}
