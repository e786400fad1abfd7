package models

import "testing"

func TestShiftValidate(t *testing.T) {
	shift := Shift{Code: "CA-SANG", Name: "Ca sáng", StartTime: "06:00", EndTime: "12:00"}
	if err := shift.Validate(); err != nil {
		t.Fatalf("không mong đợi lỗi: %v", err)
	}

	t.Run("thiếu mã ca", func(t *testing.T) {
		s := Shift{StartTime: "06:00", EndTime: "12:00"}
		if err := s.Validate(); err == nil {
			t.Fatalf("mong đợi lỗi thiếu mã ca")
		}
	})

	t.Run("giờ kết thúc trước giờ bắt đầu", func(t *testing.T) {
		s := Shift{Code: "CA-TOI", StartTime: "18:00", EndTime: "12:00"}
		if err := s.Validate(); err == nil {
			t.Fatalf("mong đợi lỗi thứ tự giờ")
		}
	})

	t.Run("giờ sai định dạng", func(t *testing.T) {
		s := Shift{Code: "CA-CHIEU", StartTime: "6h", EndTime: "12:00"}
		if err := s.Validate(); err == nil {
			t.Fatalf("mong đợi lỗi định dạng giờ")
		}
	})
}
