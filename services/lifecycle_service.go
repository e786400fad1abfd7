package services

import (
	"clinic/errors"
	"clinic/models"
	"time"

	"gorm.io/gorm"
)

// LifecycleService điều khiển vòng đời của một ca chạy thận:
// Scheduled → CheckedIn → InProgress → Completed, hoặc NoShow khi bệnh nhân vắng mặt.
// Mỗi chuyển trạng thái kéo theo thay đổi trạng thái giường tương ứng.
type LifecycleService struct {
	db       *gorm.DB
	beds     *BedService
	settings *SettingsService
}

func NewLifecycleService(db *gorm.DB, beds *BedService, settings *SettingsService) *LifecycleService {
	return &LifecycleService{db: db, beds: beds, settings: settings}
}

func (l *LifecycleService) getByCode(code string) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := l.db.Where("code = ?", code).First(&schedule).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeScheduleNotFound, "Không tìm thấy lịch", err)
	}
	return &schedule, nil
}

// CheckIn ghi nhận bệnh nhân đã đến, giường chuyển sang bận
func (l *LifecycleService) CheckIn(code string, now time.Time) (*models.Schedule, error) {
	schedule, err := l.getByCode(code)
	if err != nil {
		return nil, err
	}

	state := models.GetScheduleState(schedule.State)
	if err := state.CheckIn(schedule); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), nil)
	}

	if schedule.ActualStartAt == nil {
		schedule.ActualStartAt = &now
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(schedule).Error; err != nil {
			return err
		}
		return l.beds.LockBusy(tx, schedule.BedID)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// Start bắt đầu ca chạy thận. Gọi được thẳng từ Scheduled cho bệnh nhân vãng lai.
func (l *LifecycleService) Start(code string, now time.Time) (*models.Schedule, error) {
	schedule, err := l.getByCode(code)
	if err != nil {
		return nil, err
	}

	state := models.GetScheduleState(schedule.State)
	if err := state.Start(schedule); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), nil)
	}

	if schedule.ActualStartAt == nil {
		schedule.ActualStartAt = &now
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(schedule).Error; err != nil {
			return err
		}
		return l.beds.LockBusy(tx, schedule.BedID)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// Complete kết thúc ca và khóa giường bảo trì trong maintenanceMinutes phút.
// Đây là cơ chế đảm bảo thời gian vệ sinh giường giữa hai ca liên tiếp.
func (l *LifecycleService) Complete(code string, now time.Time) (*models.Schedule, time.Time, error) {
	schedule, err := l.getByCode(code)
	if err != nil {
		return nil, time.Time{}, err
	}

	state := models.GetScheduleState(schedule.State)
	if err := state.Complete(schedule); err != nil {
		return nil, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), nil)
	}

	maintenanceMinutes := l.settings.MaintenanceMinutes()
	until := now.Add(time.Duration(maintenanceMinutes) * time.Minute)
	schedule.ActualEndAt = &now

	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(schedule).Error; err != nil {
			return err
		}
		return l.beds.LockMaintenance(tx, schedule.BedID, until, now)
	})
	if err != nil {
		return nil, time.Time{}, err
	}
	return schedule, until, nil
}

// NoShow đánh dấu bệnh nhân vắng mặt, giường được trả về sẵn sàng ngay
// vì ca chưa từng sử dụng giường
func (l *LifecycleService) NoShow(code string) (*models.Schedule, error) {
	schedule, err := l.getByCode(code)
	if err != nil {
		return nil, err
	}

	state := models.GetScheduleState(schedule.State)
	if err := state.NoShow(schedule); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), nil)
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(schedule).Error; err != nil {
			return err
		}
		return l.beds.Release(tx, schedule.BedID)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}
