package models

import (
	"fmt"
	"time"

	"clinic/utils"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

type Shift struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Code      string        `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Name      string        `json:"name"`
	StartTime string        `json:"startTime" validate:"required"`
	EndTime   string        `json:"endTime" validate:"required"`
	IsActive  bool          `json:"isActive" gorm:"default:true"`
	StaffIDs  pq.Int64Array `json:"staffIds" gorm:"type:integer[]"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Shift) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return err
	}

	startMin, err := utils.ParseClock(s.StartTime)
	if err != nil {
		return fmt.Errorf("giờ bắt đầu không hợp lệ: %v", err)
	}
	endMin, err := utils.ParseClock(s.EndTime)
	if err != nil {
		return fmt.Errorf("giờ kết thúc không hợp lệ: %v", err)
	}
	if startMin >= endMin {
		return fmt.Errorf("giờ bắt đầu phải trước giờ kết thúc")
	}
	return nil
}
