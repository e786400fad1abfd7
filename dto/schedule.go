package dto

import "time"

// CreateScheduleRequest là DTO cho request đặt lịch chạy thận
type CreateScheduleRequest struct {
	PatientMRN string `json:"patientMrn" binding:"required"`
	BedCode    string `json:"bedCode" binding:"required"`
	StaffID    *uint  `json:"staffId"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
}

// UpdateScheduleRequest là DTO cho request cập nhật lịch
type UpdateScheduleRequest struct {
	Code      string  `json:"code" binding:"required"`
	StaffID   *uint   `json:"staffId"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Status    *int    `json:"status"`
}

// CancelScheduleRequest là DTO cho request hủy lịch
type CancelScheduleRequest struct {
	Code   string `json:"code" binding:"required"`
	Reason string `json:"reason"`
}

// SchedulePatientResponse là DTO cho thông tin bệnh nhân trong lịch
type SchedulePatientResponse struct {
	ID   uint   `json:"id"`
	MRN  string `json:"mrn"`
	Name string `json:"name"`
}

// ScheduleBedResponse là DTO cho thông tin giường trong lịch
type ScheduleBedResponse struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Ward   string `json:"ward"`
	Status int    `json:"status"`
}

// ScheduleResponse là DTO cho response lịch chạy thận
type ScheduleResponse struct {
	ID              uint                    `json:"id"`
	Code            string                  `json:"code"`
	Patient         SchedulePatientResponse `json:"patient"`
	Bed             ScheduleBedResponse     `json:"bed"`
	Staff           *ActorResponse          `json:"staff,omitempty"`
	Date            string                  `json:"date"`
	StartTime       string                  `json:"startTime"`
	EndTime         string                  `json:"endTime"`
	Status          int                     `json:"status"`
	State           int                     `json:"state"`
	ActualStartAt   *time.Time              `json:"actualStartAt"`
	ActualEndAt     *time.Time              `json:"actualEndAt"`
	CancelRequested bool                    `json:"cancelRequested"`
	CancelApproved  bool                    `json:"cancelApproved"`
	CancelReason    string                  `json:"cancelReason"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// LifecycleResponse là DTO cho response các thao tác vòng đời
type LifecycleResponse struct {
	Schedule         ScheduleResponse `json:"schedule"`
	Message          string           `json:"message"`
	MaintenanceUntil *time.Time       `json:"maintenanceUntil,omitempty"`
}
