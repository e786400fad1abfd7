package commands

import (
	"clinic/models"

	"gorm.io/gorm"
)

// ScheduleCommand định nghĩa interface cho các command
type ScheduleCommand interface {
	Execute() error
}

// CreateScheduleCommand command để tạo lịch mới
type CreateScheduleCommand struct {
	schedule *models.Schedule
	db       *gorm.DB
}

func NewCreateScheduleCommand(schedule *models.Schedule, db *gorm.DB) *CreateScheduleCommand {
	return &CreateScheduleCommand{
		schedule: schedule,
		db:       db,
	}
}

func (c *CreateScheduleCommand) Execute() error {
	return c.db.Create(c.schedule).Error
}

// UpdateScheduleCommand command để cập nhật lịch
type UpdateScheduleCommand struct {
	schedule *models.Schedule
	db       *gorm.DB
}

func NewUpdateScheduleCommand(schedule *models.Schedule, db *gorm.DB) *UpdateScheduleCommand {
	return &UpdateScheduleCommand{
		schedule: schedule,
		db:       db,
	}
}

func (c *UpdateScheduleCommand) Execute() error {
	return c.db.Save(c.schedule).Error
}

// DeleteScheduleCommand command để xóa lịch
type DeleteScheduleCommand struct {
	scheduleID   uint
	db           *gorm.DB
	rowsAffected int64
}

func NewDeleteScheduleCommand(scheduleID uint, db *gorm.DB) *DeleteScheduleCommand {
	return &DeleteScheduleCommand{
		scheduleID: scheduleID,
		db:         db,
	}
}

func (c *DeleteScheduleCommand) Execute() error {
	result := c.db.Delete(&models.Schedule{}, c.scheduleID)
	c.rowsAffected = result.RowsAffected
	return result.Error
}

// RowsAffected trả về số bản ghi đã xóa ở lần Execute gần nhất
func (c *DeleteScheduleCommand) RowsAffected() int64 {
	return c.rowsAffected
}
