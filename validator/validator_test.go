package validator

import (
	"testing"

	"clinic/models"
)

func TestValidateScheduleTimes(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr bool
	}{
		{"khung giờ hợp lệ", "15/09/2026", "08:00", "12:00", false},
		{"ngày sai định dạng", "2026-09-15", "08:00", "12:00", true},
		{"giờ sai định dạng", "15/09/2026", "8:00", "12:00", true},
		{"bắt đầu sau kết thúc", "15/09/2026", "12:00", "08:00", true},
		{"bắt đầu bằng kết thúc", "15/09/2026", "08:00", "08:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateScheduleTimes(tc.date, tc.start, tc.end)
			if tc.wantErr && err == nil {
				t.Fatalf("mong đợi lỗi nhưng không có")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("không mong đợi lỗi: %v", err)
			}
		})
	}
}

func TestValidatePatient(t *testing.T) {
	patient := &models.Patient{
		MRN:         "MRN001",
		Name:        "Nguyễn Văn An",
		PhoneNumber: "0912345678",
		Email:       "an.nguyen@example.com",
		DateOfBirth: "20/03/1965",
	}
	if err := ValidatePatient(patient); err != nil {
		t.Fatalf("không mong đợi lỗi: %v", err)
	}

	t.Run("thiếu MRN", func(t *testing.T) {
		p := &models.Patient{Name: "Nguyễn Văn An"}
		if err := ValidatePatient(p); err == nil {
			t.Fatalf("mong đợi lỗi thiếu mã bệnh án")
		}
	})

	t.Run("email không hợp lệ", func(t *testing.T) {
		p := &models.Patient{MRN: "MRN001", Name: "Nguyễn Văn An", Email: "not-an-email"}
		if err := ValidatePatient(p); err == nil {
			t.Fatalf("mong đợi lỗi email")
		}
	})

	t.Run("số điện thoại không hợp lệ", func(t *testing.T) {
		p := &models.Patient{MRN: "MRN001", Name: "Nguyễn Văn An", PhoneNumber: "12345"}
		if err := ValidatePatient(p); err == nil {
			t.Fatalf("mong đợi lỗi số điện thoại")
		}
	})
}

func TestValidateBed(t *testing.T) {
	bed := &models.Bed{Code: "BED-01", Name: "Giường 1", Status: 1, Capacity: 1}
	if err := ValidateBed(bed); err != nil {
		t.Fatalf("không mong đợi lỗi: %v", err)
	}

	t.Run("trạng thái ngoài khoảng", func(t *testing.T) {
		b := &models.Bed{Code: "BED-01", Name: "Giường 1", Status: 9}
		if err := ValidateBed(b); err == nil {
			t.Fatalf("mong đợi lỗi trạng thái")
		}
	})
}
