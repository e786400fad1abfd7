package controllers

import (
	"clinic/dto"
	"clinic/models"
	"clinic/response"
	"clinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ShiftController struct {
	DB *gorm.DB
}

func NewShiftController(db *gorm.DB) ShiftController {
	return ShiftController{DB: db}
}

func (s ShiftController) GetShifts(c *gin.Context) {
	var shifts []models.Shift
	if err := s.DB.Where("is_active = ?", true).Order("start_time").Find(&shifts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, shifts, len(shifts))
}

func (s ShiftController) CreateShift(c *gin.Context) {
	var input dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.Shift
	if err := s.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		response.Conflict(c, "Ca làm việc với mã này đã tồn tại")
		return
	}

	shift := models.Shift{
		Code:      input.Code,
		Name:      input.Name,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		IsActive:  true,
		StaffIDs:  pq.Int64Array(input.StaffIDs),
	}

	if err := shift.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := s.DB.Create(&shift).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, shift)
}

func (s ShiftController) GetShiftDetail(c *gin.Context) {
	code := c.Param("code")

	var shift models.Shift
	if err := s.DB.Where("code = ?", code).First(&shift).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, shift)
}

func (s ShiftController) UpdateShift(c *gin.Context) {
	var input dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var shift models.Shift
	if err := s.DB.Where("code = ?", input.Code).First(&shift).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != nil {
		shift.Name = *input.Name
	}
	if input.StartTime != nil {
		shift.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		shift.EndTime = *input.EndTime
	}
	if input.IsActive != nil {
		shift.IsActive = *input.IsActive
	}
	if input.StaffIDs != nil {
		shift.StaffIDs = pq.Int64Array(*input.StaffIDs)
	}

	if err := shift.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := s.DB.Save(&shift).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, shift)
}

// GetShiftWorkload thống kê số ca chạy thận mỗi điều dưỡng phụ trách trong
// từng ca làm việc của một ngày
func (s ShiftController) GetShiftWorkload(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, định dạng dd/mm/yyyy")
		return
	}

	var shifts []models.Shift
	if err := s.DB.Where("is_active = ?", true).Find(&shifts).Error; err != nil {
		response.ServerError(c)
		return
	}

	var schedules []models.Schedule
	if err := s.DB.Where("date = ? AND staff_id IS NOT NULL", date).Find(&schedules).Error; err != nil {
		response.ServerError(c)
		return
	}

	staffIDs := make([]int64, 0)
	for _, shift := range shifts {
		staffIDs = append(staffIDs, shift.StaffIDs...)
	}

	staffNames := make(map[int64]string)
	if len(staffIDs) > 0 {
		var staff []models.User
		if err := s.DB.Where("id IN ?", []int64(staffIDs)).Find(&staff).Error; err != nil {
			response.ServerError(c)
			return
		}
		for _, u := range staff {
			staffNames[int64(u.ID)] = u.Name
		}
	}

	var results []dto.ShiftWorkloadResponse
	for _, shift := range shifts {
		shiftStart, err1 := utils.ParseClock(shift.StartTime)
		shiftEnd, err2 := utils.ParseClock(shift.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}

		for _, staffID := range shift.StaffIDs {
			sessions := 0
			for _, sch := range schedules {
				if sch.StaffID == nil || int64(*sch.StaffID) != staffID {
					continue
				}
				schStart, err := utils.ParseClock(sch.StartTime)
				if err != nil {
					continue
				}
				if schStart >= shiftStart && schStart < shiftEnd {
					sessions++
				}
			}
			results = append(results, dto.ShiftWorkloadResponse{
				ShiftCode: shift.Code,
				StaffID:   staffID,
				StaffName: staffNames[staffID],
				Sessions:  sessions,
			})
		}
	}

	response.SuccessWithTotal(c, results, len(results))
}
