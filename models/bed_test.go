package models

import (
	"testing"
	"time"
)

func TestBedMaintenanceExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 20, 0, 0, time.UTC)
	until := time.Date(2025, 6, 1, 10, 35, 0, 0, time.UTC)
	bed := Bed{Status: 3, MaintenanceUntil: &until}

	if bed.MaintenanceExpired(now) {
		t.Fatalf("maintenance until 10:35 must not be expired at 10:20")
	}
	if !bed.MaintenanceExpired(time.Date(2025, 6, 1, 10, 40, 0, 0, time.UTC)) {
		t.Fatalf("maintenance until 10:35 must be expired at 10:40")
	}
	if !bed.MaintenanceExpired(until) {
		t.Fatalf("maintenance must count as expired exactly at the deadline")
	}

	available := Bed{Status: 1}
	if available.MaintenanceExpired(now) {
		t.Fatalf("bed without maintenance deadline must never be expired")
	}
}

func TestBedValidateStatus(t *testing.T) {
	for _, status := range []int{1, 2, 3} {
		bed := Bed{Status: status}
		if err := bed.ValidateStatus(); err != nil {
			t.Fatalf("status %d must be valid: %v", status, err)
		}
	}
	for _, status := range []int{0, 4, -1} {
		bed := Bed{Status: status}
		if err := bed.ValidateStatus(); err == nil {
			t.Fatalf("status %d must be invalid", status)
		}
	}
}
