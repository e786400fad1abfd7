package services

import (
	"clinic/builders"
	"clinic/commands"
	"clinic/constants"
	"clinic/errors"
	"clinic/models"
	"clinic/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleService xử lý đặt lịch chạy thận và kiểm tra xung đột
type ScheduleService struct {
	db       *gorm.DB
	beds     *BedService
	settings *SettingsService
}

func NewScheduleService(db *gorm.DB, beds *BedService, settings *SettingsService) *ScheduleService {
	return &ScheduleService{db: db, beds: beds, settings: settings}
}

// NewScheduleCode sinh mã lịch duy nhất
func NewScheduleCode() string {
	return "SCH-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// countsForConflict loại các lịch đã hủy hoặc vắng mặt khỏi kiểm tra xung đột
func countsForConflict(sch models.Schedule) bool {
	return sch.Status != constants.ScheduleStatusCancelled && sch.State != constants.StateNoShow
}

// HasBedConflict kiểm tra khoảng [startMin, endMin+buffer) có đè lên lịch nào
// của giường không. Hạn bảo trì cũng được cộng vào cuối các lịch đã có.
func HasBedConflict(existing []models.Schedule, startMin, endMin, bufferMin int) bool {
	for _, sch := range existing {
		if !countsForConflict(sch) {
			continue
		}
		eStart, err1 := utils.ParseClock(sch.StartTime)
		eEnd, err2 := utils.ParseClock(sch.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if utils.Overlaps(startMin, endMin+bufferMin, eStart, eEnd+bufferMin) {
			return true
		}
	}
	return false
}

// HasPersonConflict kiểm tra trùng lịch của bệnh nhân hoặc điều dưỡng với
// biên đóng [start, end] (không cộng thời gian bảo trì)
func HasPersonConflict(existing []models.Schedule, startMin, endMin int) bool {
	for _, sch := range existing {
		if !countsForConflict(sch) {
			continue
		}
		eStart, err1 := utils.ParseClock(sch.StartTime)
		eEnd, err2 := utils.ParseClock(sch.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if utils.OverlapsInclusive(startMin, endMin, eStart, eEnd) {
			return true
		}
	}
	return false
}

// BookSchedule kiểm tra xung đột và tạo lịch chạy thận mới.
// Thứ tự kiểm tra: định dạng → khoảng giờ → quá khứ → giường → trùng giường
// (có cộng thời gian bảo trì) → trùng bệnh nhân → trùng điều dưỡng.
func (s *ScheduleService) BookSchedule(req models.ScheduleRequest, now time.Time) (*models.Schedule, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không hợp lệ", err)
	}

	startMin, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ bắt đầu không hợp lệ", err)
	}
	endMin, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ kết thúc không hợp lệ", err)
	}

	if startMin >= endMin {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange, "Giờ kết thúc phải sau giờ bắt đầu", nil)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, errors.NewAppError(errors.ErrCodePastSchedule, "Ngày đặt lịch không được nhỏ hơn ngày hiện tại", nil)
	}
	if date.Equal(today) && startMin < utils.MinutesOfDay(now) {
		return nil, errors.NewAppError(errors.ErrCodePastSchedule, "Giờ bắt đầu đã trôi qua", nil)
	}

	bed, err := s.beds.GetByCode(req.BedCode)
	if err != nil {
		return nil, err
	}
	if !bed.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeBedNotFound, "Giường đã ngừng sử dụng", nil)
	}
	if bed.Status == constants.BedStatusMaintenance {
		return nil, errors.NewAppError(errors.ErrCodeBedUnavailable, "Giường đang bảo trì", nil)
	}

	bufferMin := s.settings.MaintenanceMinutes()

	var bedSchedules []models.Schedule
	if err := s.db.Where("bed_id = ? AND date = ?", bed.ID, date).Find(&bedSchedules).Error; err != nil {
		return nil, err
	}
	if HasBedConflict(bedSchedules, startMin, endMin, bufferMin) {
		return nil, errors.NewAppError(errors.ErrCodeBedBusy, "Giường đã được đặt trong khung giờ này", nil)
	}

	var patient models.Patient
	if err := s.db.Where("mrn = ?", req.PatientMRN).First(&patient).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodePatientNotFound, "Không tìm thấy bệnh nhân", err)
	}

	var patientSchedules []models.Schedule
	if err := s.db.Where("patient_id = ? AND date = ?", patient.ID, date).Find(&patientSchedules).Error; err != nil {
		return nil, err
	}
	if HasPersonConflict(patientSchedules, startMin, endMin) {
		return nil, errors.NewAppError(errors.ErrCodePatientDoubleBooked, "Bệnh nhân đã có lịch trong khung giờ này", nil)
	}

	if req.StaffID != nil {
		var staffSchedules []models.Schedule
		if err := s.db.Where("staff_id = ? AND date = ?", *req.StaffID, date).Find(&staffSchedules).Error; err != nil {
			return nil, err
		}
		if HasPersonConflict(staffSchedules, startMin, endMin) {
			return nil, errors.NewAppError(errors.ErrCodeStaffDoubleBooked, "Điều dưỡng đã có lịch trong khung giờ này", nil)
		}
	}

	schedule := builders.NewScheduleBuilder().
		WithCode(NewScheduleCode()).
		WithPatient(patient.ID).
		WithBed(bed.ID).
		WithStaff(req.StaffID).
		WithDate(date).
		WithTimeSlot(req.StartTime, req.EndTime).
		WithStatus(constants.ScheduleStatusScheduled).
		WithState(constants.StateScheduled).
		Build()

	// Đánh dấu giường bận chỉ mang tính thông tin, nguồn xung đột
	// chính thức vẫn là truy vấn lịch ở trên
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := commands.NewCreateScheduleCommand(schedule, tx).Execute(); err != nil {
			return err
		}
		return s.beds.LockBusy(tx, bed.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Đã tạo lịch %s: giường %s, ngày %s %s-%s", schedule.Code, req.BedCode, req.Date, req.StartTime, req.EndTime)

	if err := s.db.Preload("Patient").Preload("Bed").Preload("Staff").First(schedule, schedule.ID).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetByCode lấy lịch theo mã
func (s *ScheduleService) GetByCode(code string) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := s.db.Preload("Patient").Preload("Bed").Preload("Staff").
		Where("code = ?", code).First(&schedule).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeScheduleNotFound, "Không tìm thấy lịch", err)
	}
	return &schedule, nil
}

// RequestCancel ghi nhận yêu cầu hủy lịch
func (s *ScheduleService) RequestCancel(code, reason string) (*models.Schedule, error) {
	schedule, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}

	schedule.Status = constants.ScheduleStatusCancelled
	schedule.CancelRequested = true
	schedule.CancelReason = reason

	if err := commands.NewUpdateScheduleCommand(schedule, s.db).Execute(); err != nil {
		return nil, err
	}
	return schedule, nil
}

// ApproveCancel duyệt hủy lịch và trả giường về trạng thái sẵn sàng ngay,
// không cần chờ bảo trì vì ca chưa diễn ra
func (s *ScheduleService) ApproveCancel(code string) (*models.Schedule, error) {
	schedule, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		schedule.Status = constants.ScheduleStatusCancelled
		schedule.CancelApproved = true
		if err := tx.Save(schedule).Error; err != nil {
			return err
		}
		return s.beds.Release(tx, schedule.BedID)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// Delete xóa một lịch theo mã, trả về số bản ghi đã xóa
func (s *ScheduleService) Delete(code string) (int64, error) {
	schedule, err := s.GetByCode(code)
	if err != nil {
		return 0, err
	}

	cmd := commands.NewDeleteScheduleCommand(schedule.ID, s.db)
	if err := cmd.Execute(); err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// DeleteAll xóa toàn bộ lịch, yêu cầu cờ xác nhận tường minh
func (s *ScheduleService) DeleteAll(confirm bool) (int64, error) {
	if !confirm {
		return 0, errors.NewAppError(errors.ErrCodeConfirmationRequired, "Cần xác nhận trước khi xóa toàn bộ lịch", nil)
	}

	result := s.db.Where("1 = 1").Delete(&models.Schedule{})
	return result.RowsAffected, result.Error
}
