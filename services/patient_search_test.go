package services

import (
	"testing"

	"clinic/models"
)

func TestNormalizeInput(t *testing.T) {
	if got := NormalizeInput("  Nguyễn Văn An "); got != "nguyen van an" {
		t.Fatalf("NormalizeInput = %q, want %q", got, "nguyen van an")
	}
}

func TestSearchPatients(t *testing.T) {
	patients := []models.Patient{
		{MRN: "MRN01", Name: "Nguyễn Văn An", PhoneNumber: "0901234567"},
		{MRN: "MRN02", Name: "Trần Thị Bình", PhoneNumber: "0907654321"},
		{MRN: "MRN03", Name: "Lê Hoàng Cường", PhoneNumber: "0912345678"},
	}

	t.Run("exact MRN ranks first", func(t *testing.T) {
		results := SearchPatients("MRN02", patients)
		if len(results) == 0 {
			t.Fatalf("expected at least one result")
		}
		if results[0].Patient.MRN != "MRN02" {
			t.Fatalf("top result = %s, want MRN02", results[0].Patient.MRN)
		}
	})

	t.Run("accented and unaccented queries match", func(t *testing.T) {
		for _, q := range []string{"nguyễn văn an", "nguyen van an"} {
			results := SearchPatients(q, patients)
			if len(results) == 0 || results[0].Patient.MRN != "MRN01" {
				t.Fatalf("query %q must rank MRN01 first", q)
			}
		}
	})

	t.Run("unrelated query returns nothing relevant", func(t *testing.T) {
		results := SearchPatients("zzzzzz", patients)
		for _, r := range results {
			if r.Score >= 25 {
				t.Fatalf("unrelated query must not produce a strong match: %+v", r)
			}
		}
	})
}
