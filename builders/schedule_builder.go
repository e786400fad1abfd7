package builders

import (
	"time"

	"clinic/models"
)

// ScheduleBuilder giúp tạo lịch chạy thận theo từng bước
type ScheduleBuilder struct {
	schedule *models.Schedule
}

// NewScheduleBuilder tạo instance mới của ScheduleBuilder
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		schedule: &models.Schedule{},
	}
}

// WithCode thêm mã lịch
func (b *ScheduleBuilder) WithCode(code string) *ScheduleBuilder {
	b.schedule.Code = code
	return b
}

// WithPatient thêm thông tin bệnh nhân
func (b *ScheduleBuilder) WithPatient(patientID uint) *ScheduleBuilder {
	b.schedule.PatientID = patientID
	return b
}

// WithBed thêm thông tin giường
func (b *ScheduleBuilder) WithBed(bedID uint) *ScheduleBuilder {
	b.schedule.BedID = bedID
	return b
}

// WithStaff thêm nhân viên phụ trách
func (b *ScheduleBuilder) WithStaff(staffID *uint) *ScheduleBuilder {
	b.schedule.StaffID = staffID
	return b
}

// WithDate thêm ngày chạy thận
func (b *ScheduleBuilder) WithDate(date time.Time) *ScheduleBuilder {
	b.schedule.Date = date
	return b
}

// WithTimeSlot thêm khung giờ
func (b *ScheduleBuilder) WithTimeSlot(startTime, endTime string) *ScheduleBuilder {
	b.schedule.StartTime = startTime
	b.schedule.EndTime = endTime
	return b
}

// WithStatus thêm trạng thái
func (b *ScheduleBuilder) WithStatus(status int) *ScheduleBuilder {
	b.schedule.Status = status
	return b
}

// WithState thêm trạng thái vòng đời
func (b *ScheduleBuilder) WithState(state int) *ScheduleBuilder {
	b.schedule.State = state
	return b
}

// Build tạo lịch hoàn chỉnh
func (b *ScheduleBuilder) Build() *models.Schedule {
	return b.schedule
}
