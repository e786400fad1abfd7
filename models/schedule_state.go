package models

import "errors"

// ScheduleState định nghĩa interface cho các trạng thái lifecycle của lịch chạy thận
type ScheduleState interface {
	CheckIn(schedule *Schedule) error
	Start(schedule *Schedule) error
	Complete(schedule *Schedule) error
	NoShow(schedule *Schedule) error
}

// ScheduledState trạng thái đã đặt lịch
type ScheduledState struct{}

func (s *ScheduledState) CheckIn(schedule *Schedule) error {
	schedule.State = StateCheckedIn
	return nil
}

func (s *ScheduledState) Start(schedule *Schedule) error {
	schedule.State = StateInProgress
	schedule.Status = ScheduleStatusInProgress
	return nil
}

func (s *ScheduledState) Complete(schedule *Schedule) error {
	schedule.State = StateCompleted
	schedule.Status = ScheduleStatusCompleted
	return nil
}

func (s *ScheduledState) NoShow(schedule *Schedule) error {
	schedule.State = StateNoShow
	return nil
}

// CheckedInState trạng thái bệnh nhân đã đến
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(schedule *Schedule) error {
	// Gọi lại check-in không đổi trạng thái
	schedule.State = StateCheckedIn
	return nil
}

func (s *CheckedInState) Start(schedule *Schedule) error {
	schedule.State = StateInProgress
	schedule.Status = ScheduleStatusInProgress
	return nil
}

func (s *CheckedInState) Complete(schedule *Schedule) error {
	schedule.State = StateCompleted
	schedule.Status = ScheduleStatusCompleted
	return nil
}

func (s *CheckedInState) NoShow(schedule *Schedule) error {
	schedule.State = StateNoShow
	return nil
}

// InProgressState trạng thái đang chạy thận
type InProgressState struct{}

func (s *InProgressState) CheckIn(schedule *Schedule) error {
	return errors.New("session already in progress")
}

func (s *InProgressState) Start(schedule *Schedule) error {
	schedule.State = StateInProgress
	schedule.Status = ScheduleStatusInProgress
	return nil
}

func (s *InProgressState) Complete(schedule *Schedule) error {
	schedule.State = StateCompleted
	schedule.Status = ScheduleStatusCompleted
	return nil
}

func (s *InProgressState) NoShow(schedule *Schedule) error {
	schedule.State = StateNoShow
	return nil
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) CheckIn(schedule *Schedule) error {
	return errors.New("schedule already completed")
}

func (s *CompletedState) Start(schedule *Schedule) error {
	return errors.New("schedule already completed")
}

func (s *CompletedState) Complete(schedule *Schedule) error {
	return errors.New("schedule already completed")
}

func (s *CompletedState) NoShow(schedule *Schedule) error {
	return errors.New("schedule already completed")
}

// NoShowState trạng thái bệnh nhân vắng mặt
type NoShowState struct{}

func (s *NoShowState) CheckIn(schedule *Schedule) error {
	return errors.New("schedule already marked no-show")
}

func (s *NoShowState) Start(schedule *Schedule) error {
	return errors.New("schedule already marked no-show")
}

func (s *NoShowState) Complete(schedule *Schedule) error {
	return errors.New("schedule already marked no-show")
}

func (s *NoShowState) NoShow(schedule *Schedule) error {
	return errors.New("schedule already marked no-show")
}

// GetScheduleState trả về state tương ứng với trạng thái lifecycle
func GetScheduleState(state int) ScheduleState {
	switch state {
	case StateScheduled:
		return &ScheduledState{}
	case StateCheckedIn:
		return &CheckedInState{}
	case StateInProgress:
		return &InProgressState{}
	case StateCompleted:
		return &CompletedState{}
	case StateNoShow:
		return &NoShowState{}
	default:
		return &ScheduledState{}
	}
}
