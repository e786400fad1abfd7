package services

import (
	"clinic/constants"
	"clinic/errors"
	"clinic/models"
	"clinic/utils"
	"time"

	"gorm.io/gorm"
)

// BedService quản lý giường chạy thận và các chuyển trạng thái của giường
type BedService struct {
	db *gorm.DB
}

func NewBedService(db *gorm.DB) *BedService {
	return &BedService{db: db}
}

// Create tạo giường mới, báo lỗi nếu trùng mã hoặc tên
func (s *BedService) Create(bed *models.Bed) error {
	var existing models.Bed
	if err := s.db.Where("code = ? OR name = ?", bed.Code, bed.Name).First(&existing).Error; err == nil {
		return errors.NewAppError(errors.ErrCodeDuplicateBed, "Giường với mã hoặc tên này đã tồn tại", nil)
	}

	if bed.Status == 0 {
		bed.Status = constants.BedStatusAvailable
	}
	if err := bed.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái giường không hợp lệ", err)
	}

	return s.db.Create(bed).Error
}

// GetByCode lấy giường theo mã
func (s *BedService) GetByCode(code string) (*models.Bed, error) {
	var bed models.Bed
	if err := s.db.Where("code = ?", code).First(&bed).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeBedNotFound, "Không tìm thấy giường", err)
	}
	return &bed, nil
}

// SetStatus đổi trạng thái giường trực tiếp (thao tác admin).
// Chuyển sang bảo trì mà không có hạn sẽ hủy toàn bộ lịch tương lai của giường.
func (s *BedService) SetStatus(code string, status int, until *time.Time, now time.Time) (*models.Bed, error) {
	bed, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}

	bed.Status = status
	if err := bed.ValidateStatus(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái giường không hợp lệ", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if status == constants.BedStatusMaintenance {
			bed.MaintenanceUntil = until
			bed.LastMaintenanceAt = &now
			if until == nil {
				if err := cancelFutureSchedules(tx, bed.ID, "Bed unavailable", now); err != nil {
					return err
				}
			}
		} else {
			bed.MaintenanceUntil = nil
		}
		return tx.Save(bed).Error
	})
	if err != nil {
		return nil, err
	}

	utils.LogInfo("Giường %s chuyển sang trạng thái %d", bed.Code, bed.Status)
	return bed, nil
}

// LockBusy đánh dấu giường đang được sử dụng
func (s *BedService) LockBusy(tx *gorm.DB, bedID uint) error {
	return tx.Model(&models.Bed{}).Where("id = ?", bedID).
		Update("status", constants.BedStatusBusy).Error
}

// LockMaintenance khóa giường để bảo trì đến thời điểm until
func (s *BedService) LockMaintenance(tx *gorm.DB, bedID uint, until time.Time, now time.Time) error {
	return tx.Model(&models.Bed{}).Where("id = ?", bedID).
		Updates(map[string]interface{}{
			"status":              constants.BedStatusMaintenance,
			"maintenance_until":   until,
			"last_maintenance_at": now,
		}).Error
}

// Release trả giường về trạng thái sẵn sàng
func (s *BedService) Release(tx *gorm.DB, bedID uint) error {
	return tx.Model(&models.Bed{}).Where("id = ?", bedID).
		Updates(map[string]interface{}{
			"status":            constants.BedStatusAvailable,
			"maintenance_until": nil,
		}).Error
}

// ReclaimExpired giải phóng các giường đã hết hạn bảo trì, trả về số giường được giải phóng.
// Gọi lặp lại an toàn: giường đã sẵn sàng không bị ảnh hưởng.
func (s *BedService) ReclaimExpired(now time.Time) (int64, error) {
	result := s.db.Model(&models.Bed{}).
		Where("status = ? AND maintenance_until IS NOT NULL AND maintenance_until <= ?",
			constants.BedStatusMaintenance, now).
		Updates(map[string]interface{}{
			"status":            constants.BedStatusAvailable,
			"maintenance_until": nil,
		})
	return result.RowsAffected, result.Error
}

// SoftDelete đánh dấu giường ngừng sử dụng và hủy các lịch tương lai của nó
func (s *BedService) SoftDelete(code string, now time.Time) error {
	bed, err := s.GetByCode(code)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		bed.IsActive = false
		if err := tx.Save(bed).Error; err != nil {
			return err
		}
		return cancelFutureSchedules(tx, bed.ID, "Bed unavailable", now)
	})
}

// cancelFutureSchedules hủy mọi lịch chưa diễn ra của một giường
func cancelFutureSchedules(tx *gorm.DB, bedID uint, reason string, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return tx.Model(&models.Schedule{}).
		Where("bed_id = ? AND date >= ? AND status NOT IN ?", bedID, today,
			[]int{constants.ScheduleStatusCompleted, constants.ScheduleStatusCancelled}).
		Updates(map[string]interface{}{
			"status":           constants.ScheduleStatusCancelled,
			"cancel_requested": true,
			"cancel_approved":  true,
			"cancel_reason":    reason,
		}).Error
}
