package dto

// CreateShiftRequest là DTO cho request tạo ca làm việc
type CreateShiftRequest struct {
	Code      string  `json:"code" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	StaffIDs  []int64 `json:"staffIds"`
}

// UpdateShiftRequest là DTO cho request cập nhật ca làm việc
type UpdateShiftRequest struct {
	Code      string   `json:"code" binding:"required"`
	Name      *string  `json:"name"`
	StartTime *string  `json:"startTime"`
	EndTime   *string  `json:"endTime"`
	IsActive  *bool    `json:"isActive"`
	StaffIDs  *[]int64 `json:"staffIds"`
}

// ShiftWorkloadResponse là DTO cho response khối lượng công việc theo ca
type ShiftWorkloadResponse struct {
	ShiftCode string `json:"shiftCode"`
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName"`
	Sessions  int    `json:"sessions"`
}
