package services

import (
	"clinic/constants"
	"clinic/models"
	"errors"

	"gorm.io/gorm"
)

// SettingsService đọc và cập nhật bản ghi cấu hình toàn cục (id=1)
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get trả về settings hiện tại, tự tạo bản ghi mặc định nếu chưa có
func (s *SettingsService) Get() (models.Settings, error) {
	var settings models.Settings
	err := s.db.First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Settings{
			ID:                   1,
			MaintenanceMinutes:   constants.DefaultMaintenanceMinutes,
			DefaultDurationHours: constants.DefaultDurationHours,
		}
		if err := s.db.Create(&settings).Error; err != nil {
			return settings, err
		}
		return settings, nil
	}
	if err != nil {
		return settings, err
	}
	return settings, nil
}

// MaintenanceMinutes trả về thời gian bảo trì giường sau mỗi ca
func (s *SettingsService) MaintenanceMinutes() int {
	settings, err := s.Get()
	if err != nil || settings.MaintenanceMinutes <= 0 {
		return constants.DefaultMaintenanceMinutes
	}
	return settings.MaintenanceMinutes
}

// Update cập nhật settings
func (s *SettingsService) Update(maintenanceMinutes, defaultDurationHours int) (models.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return settings, err
	}

	if maintenanceMinutes > 0 {
		settings.MaintenanceMinutes = maintenanceMinutes
	}
	if defaultDurationHours > 0 {
		settings.DefaultDurationHours = defaultDurationHours
	}

	if err := s.db.Save(&settings).Error; err != nil {
		return settings, err
	}
	return settings, nil
}
