package dto

import "time"

// CreateBedRequest là DTO cho request tạo giường
type CreateBedRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Type     int    `json:"type"`
	Capacity int    `json:"capacity"`
	Ward     string `json:"ward"`
	Room     string `json:"room"`
	Floor    int    `json:"floor"`
}

// UpdateBedRequest là DTO cho request cập nhật giường
type UpdateBedRequest struct {
	Code     string  `json:"code" binding:"required"`
	Name     *string `json:"name"`
	Type     *int    `json:"type"`
	Capacity *int    `json:"capacity"`
	Ward     *string `json:"ward"`
	Room     *string `json:"room"`
	Floor    *int    `json:"floor"`
}

// ChangeBedStatusRequest là DTO cho request đổi trạng thái giường
type ChangeBedStatusRequest struct {
	Code             string     `json:"code" binding:"required"`
	Status           int        `json:"status" binding:"required"`
	MaintenanceUntil *time.Time `json:"maintenanceUntil"`
}

// BedResponse là DTO cho response giường
type BedResponse struct {
	ID                uint       `json:"id"`
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	Type              int        `json:"type"`
	Status            int        `json:"status"`
	Capacity          int        `json:"capacity"`
	Ward              string     `json:"ward"`
	Room              string     `json:"room"`
	Floor             int        `json:"floor"`
	MaintenanceUntil  *time.Time `json:"maintenanceUntil"`
	LastMaintenanceAt *time.Time `json:"lastMaintenanceAt"`
	IsActive          bool       `json:"isActive"`
}

// BedAvailabilityResponse là DTO cho response kiểm tra giường trống
type BedAvailabilityResponse struct {
	BedResponse
	IsAvailable bool `json:"isAvailable"`
}
