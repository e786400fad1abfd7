package dto

// UpdateSettingsRequest là DTO cho request cập nhật cấu hình
type UpdateSettingsRequest struct {
	MaintenanceMinutes   int `json:"maintenanceMinutes"`
	DefaultDurationHours int `json:"defaultDurationHours"`
}
