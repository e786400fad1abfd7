package controllers

import (
	"clinic/dto"
	"clinic/response"
	"clinic/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(db *gorm.DB) SettingsController {
	return SettingsController{Settings: services.NewSettingsService(db)}
}

func (s SettingsController) GetSettings(c *gin.Context) {
	settings, err := s.Settings.Get()
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, settings)
}

// UpdateSettings đổi thời gian bảo trì giường và thời lượng ca mặc định.
// Giá trị mới chỉ áp dụng cho các lịch đặt sau thời điểm cập nhật.
func (s SettingsController) UpdateSettings(c *gin.Context) {
	var input dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := s.Settings.Update(input.MaintenanceMinutes, input.DefaultDurationHours)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, settings)
}
