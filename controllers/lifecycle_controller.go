package controllers

import (
	"time"

	"clinic/config"
	"clinic/dto"
	"clinic/response"
	"clinic/services"

	"github.com/gin-gonic/gin"
)

// CheckInSchedule ghi nhận bệnh nhân đã đến phòng khám
func (s ScheduleController) CheckInSchedule(c *gin.Context) {
	code := c.Param("code")

	if _, err := s.Lifecycle.CheckIn(code, time.Now()); err != nil {
		respondError(c, err)
		return
	}

	schedule, err := s.Schedules.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.Success(c, dto.LifecycleResponse{
		Schedule: convertToScheduleResponse(*schedule),
		Message:  "Bệnh nhân đã đến",
	})
}

// StartSchedule bắt đầu ca chạy thận. Bệnh nhân vãng lai có thể bắt đầu
// thẳng từ trạng thái đã đặt lịch mà không cần check-in trước.
func (s ScheduleController) StartSchedule(c *gin.Context) {
	code := c.Param("code")

	if _, err := s.Lifecycle.Start(code, time.Now()); err != nil {
		respondError(c, err)
		return
	}

	schedule, err := s.Schedules.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.Success(c, dto.LifecycleResponse{
		Schedule: convertToScheduleResponse(*schedule),
		Message:  "Ca chạy thận đã bắt đầu",
	})
}

// CompleteSchedule kết thúc ca và khóa giường bảo trì đến thời điểm trả về
// trong maintenanceUntil
func (s ScheduleController) CompleteSchedule(c *gin.Context) {
	code := c.Param("code")

	_, until, err := s.Lifecycle.Complete(code, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	schedule, err := s.Schedules.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.Success(c, dto.LifecycleResponse{
		Schedule:         convertToScheduleResponse(*schedule),
		Message:          "Ca chạy thận đã kết thúc, giường chuyển sang bảo trì",
		MaintenanceUntil: &until,
	})
}

// NoShowSchedule đánh dấu bệnh nhân vắng mặt, giường được trả về sẵn sàng ngay
func (s ScheduleController) NoShowSchedule(c *gin.Context) {
	code := c.Param("code")

	if _, err := s.Lifecycle.NoShow(code); err != nil {
		respondError(c, err)
		return
	}

	schedule, err := s.Schedules.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.Success(c, dto.LifecycleResponse{
		Schedule: convertToScheduleResponse(*schedule),
		Message:  "Đã đánh dấu bệnh nhân vắng mặt",
	})
}
