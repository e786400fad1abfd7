package models

import (
	"time"
)

// Schedule status constants
const (
	ScheduleStatusScheduled  = 0
	ScheduleStatusInProgress = 1
	ScheduleStatusCompleted  = 2
	ScheduleStatusCancelled  = 3
)

// Schedule lifecycle state constants
const (
	StateScheduled  = 0
	StateCheckedIn  = 1
	StateInProgress = 2
	StateCompleted  = 3
	StateNoShow     = 4
)

type Schedule struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	PatientID uint      `json:"patientId"`
	Patient   Patient   `json:"patient" gorm:"foreignKey:PatientID"`
	BedID     uint      `json:"bedId" gorm:"uniqueIndex:idx_bed_slot"`
	Bed       Bed       `json:"bed" gorm:"foreignKey:BedID"`
	StaffID   *uint     `json:"staffId"`
	Staff     *User     `json:"staff" gorm:"foreignKey:StaffID"`
	Date      time.Time `json:"date" gorm:"uniqueIndex:idx_bed_slot"`
	StartTime string    `json:"startTime" gorm:"uniqueIndex:idx_bed_slot"`
	EndTime   string    `json:"endTime" gorm:"uniqueIndex:idx_bed_slot"`
	Status    int       `json:"status"`
	State     int       `json:"state"`

	ActualStartAt *time.Time `json:"actualStartAt"`
	ActualEndAt   *time.Time `json:"actualEndAt"`

	CancelRequested bool   `json:"cancelRequested"`
	CancelApproved  bool   `json:"cancelApproved"`
	CancelReason    string `json:"cancelReason"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type ScheduleRequest struct {
	PatientMRN string `json:"patientMrn"`
	BedCode    string `json:"bedCode"`
	StaffID    *uint  `json:"staffId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// Terminal kiểm tra lịch đã ở trạng thái kết thúc chưa
func (s *Schedule) Terminal() bool {
	return s.State == StateCompleted || s.State == StateNoShow
}
