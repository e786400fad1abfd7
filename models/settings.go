package models

import "time"

// Settings bản ghi cấu hình toàn cục, chỉ có một dòng id=1
type Settings struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	MaintenanceMinutes   int       `gorm:"default:30" json:"maintenanceMinutes"`
	DefaultDurationHours int       `gorm:"default:4" json:"defaultDurationHours"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
