package models

import (
	"testing"
)

func TestScheduleLifecycleHappyPath(t *testing.T) {
	schedule := &Schedule{State: StateScheduled}

	if err := GetScheduleState(schedule.State).CheckIn(schedule); err != nil {
		t.Fatalf("check-in from Scheduled failed: %v", err)
	}
	if schedule.State != StateCheckedIn {
		t.Fatalf("state = %d, want CheckedIn", schedule.State)
	}

	if err := GetScheduleState(schedule.State).Start(schedule); err != nil {
		t.Fatalf("start from CheckedIn failed: %v", err)
	}
	if schedule.State != StateInProgress || schedule.Status != ScheduleStatusInProgress {
		t.Fatalf("state = %d status = %d after start", schedule.State, schedule.Status)
	}

	if err := GetScheduleState(schedule.State).Complete(schedule); err != nil {
		t.Fatalf("complete from InProgress failed: %v", err)
	}
	if schedule.State != StateCompleted || schedule.Status != ScheduleStatusCompleted {
		t.Fatalf("state = %d status = %d after complete", schedule.State, schedule.Status)
	}
}

func TestScheduleLifecycleWalkIn(t *testing.T) {
	// Bệnh nhân vãng lai: start thẳng từ Scheduled, bỏ qua CheckedIn
	schedule := &Schedule{State: StateScheduled}
	if err := GetScheduleState(schedule.State).Start(schedule); err != nil {
		t.Fatalf("start straight from Scheduled failed: %v", err)
	}
	if schedule.State != StateInProgress {
		t.Fatalf("state = %d, want InProgress", schedule.State)
	}
}

func TestScheduleLifecycleNoShow(t *testing.T) {
	for _, from := range []int{StateScheduled, StateCheckedIn, StateInProgress} {
		schedule := &Schedule{State: from}
		if err := GetScheduleState(schedule.State).NoShow(schedule); err != nil {
			t.Fatalf("no-show from state %d failed: %v", from, err)
		}
		if schedule.State != StateNoShow {
			t.Fatalf("state = %d, want NoShow", schedule.State)
		}
	}
}

func TestScheduleLifecycleTerminalStates(t *testing.T) {
	for _, terminal := range []int{StateCompleted, StateNoShow} {
		schedule := &Schedule{State: terminal}
		state := GetScheduleState(schedule.State)

		if err := state.CheckIn(schedule); err == nil {
			t.Fatalf("check-in must fail from terminal state %d", terminal)
		}
		if err := state.Start(schedule); err == nil {
			t.Fatalf("start must fail from terminal state %d", terminal)
		}
		if err := state.Complete(schedule); err == nil {
			t.Fatalf("complete must fail from terminal state %d", terminal)
		}
		if err := state.NoShow(schedule); err == nil {
			t.Fatalf("no-show must fail from terminal state %d", terminal)
		}
		if schedule.State != terminal {
			t.Fatalf("terminal state %d must not change, got %d", terminal, schedule.State)
		}
		if !schedule.Terminal() {
			t.Fatalf("Terminal() must report true for state %d", terminal)
		}
	}
}

func TestScheduleLifecycleRepeatedCheckIn(t *testing.T) {
	schedule := &Schedule{State: StateCheckedIn}
	if err := GetScheduleState(schedule.State).CheckIn(schedule); err != nil {
		t.Fatalf("repeated check-in must be tolerated: %v", err)
	}
	if schedule.State != StateCheckedIn {
		t.Fatalf("repeated check-in must keep state CheckedIn, got %d", schedule.State)
	}
}
