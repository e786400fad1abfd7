package services

import (
	"testing"

	"clinic/constants"
	"clinic/errors"
	"clinic/models"
)

func slot(start, end string) models.Schedule {
	return models.Schedule{
		StartTime: start,
		EndTime:   end,
		Status:    constants.ScheduleStatusScheduled,
		State:     constants.StateScheduled,
	}
}

func TestHasBedConflict(t *testing.T) {
	existing := []models.Schedule{slot("08:00", "10:00")}

	t.Run("window inside maintenance buffer is rejected", func(t *testing.T) {
		// 10:15 < 10:30 (10:00 + 30 phút bảo trì)
		if !HasBedConflict(existing, 10*60+15, 11*60, 30) {
			t.Fatalf("10:15-11:00 must conflict with 08:00-10:00 plus 30m buffer")
		}
	})

	t.Run("window exactly at buffered end is accepted", func(t *testing.T) {
		if HasBedConflict(existing, 10*60+30, 11*60, 30) {
			t.Fatalf("10:30-11:00 must not conflict with 08:00-10:00 plus 30m buffer")
		}
	})

	t.Run("buffer applies to requested window too", func(t *testing.T) {
		// Đặt 07:00-07:45: 07:45 + 30 phút = 08:15 đè lên 08:00
		if !HasBedConflict(existing, 7*60, 7*60+45, 30) {
			t.Fatalf("07:00-07:45 must conflict, its buffered end crosses 08:00")
		}
		if HasBedConflict(existing, 7*60, 7*60+30, 30) {
			t.Fatalf("07:00-07:30 must not conflict, buffered end meets 08:00 exactly")
		}
	})

	t.Run("cancelled and no-show schedules are ignored", func(t *testing.T) {
		cancelled := slot("08:00", "10:00")
		cancelled.Status = constants.ScheduleStatusCancelled
		noShow := slot("08:00", "10:00")
		noShow.State = constants.StateNoShow

		if HasBedConflict([]models.Schedule{cancelled, noShow}, 8*60, 10*60, 30) {
			t.Fatalf("cancelled and no-show schedules must not block the bed")
		}
	})

	t.Run("zero buffer keeps half-open semantics", func(t *testing.T) {
		if HasBedConflict(existing, 10*60, 11*60, 0) {
			t.Fatalf("back-to-back windows must not conflict without a buffer")
		}
	})
}

func TestHasPersonConflict(t *testing.T) {
	existing := []models.Schedule{slot("08:00", "10:00")}

	t.Run("touching endpoint counts as double booking", func(t *testing.T) {
		if !HasPersonConflict(existing, 10*60, 11*60) {
			t.Fatalf("10:00-11:00 must double-book a patient finishing at 10:00")
		}
	})

	t.Run("disjoint window is allowed", func(t *testing.T) {
		if HasPersonConflict(existing, 10*60+1, 11*60) {
			t.Fatalf("10:01-11:00 must not double-book")
		}
	})

	t.Run("overlap across different beds still counts", func(t *testing.T) {
		// Kiểm tra bệnh nhân không phụ thuộc giường: danh sách đầu vào đã là
		// toàn bộ lịch của bệnh nhân trong ngày
		other := slot("09:00", "11:00")
		if !HasPersonConflict([]models.Schedule{other}, 8*60, 10*60) {
			t.Fatalf("patient overlap must be detected regardless of bed")
		}
	})
}

func TestNewScheduleCode(t *testing.T) {
	a := NewScheduleCode()
	b := NewScheduleCode()
	if a == b {
		t.Fatalf("schedule codes must be unique, got %s twice", a)
	}
	if len(a) != len("SCH-")+8 {
		t.Fatalf("unexpected code format: %s", a)
	}
}

func TestDeleteAllRequiresConfirm(t *testing.T) {
	// Nhánh chặn không chạm DB nên service không cần kết nối
	svc := NewScheduleService(nil, nil, nil)

	deleted, err := svc.DeleteAll(false)
	if err == nil {
		t.Fatalf("deleting all schedules without confirm must fail")
	}
	if deleted != 0 {
		t.Fatalf("no schedule may be deleted without confirm, got %d", deleted)
	}

	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeConfirmationRequired {
		t.Fatalf("expected CONFIRMATION_REQUIRED, got %s", appErr.Code)
	}
}
