package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"clinic/config"
	"clinic/dto"
	"clinic/models"
	"clinic/response"
	"clinic/services"
	"clinic/utils"
	"clinic/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Schedules *services.ScheduleService
	Lifecycle *services.LifecycleService
}

func NewScheduleController(db *gorm.DB, redisCli *redis.Client) ScheduleController {
	beds := services.NewBedService(db)
	settings := services.NewSettingsService(db)
	return ScheduleController{
		DB:        db,
		Redis:     redisCli,
		Schedules: services.NewScheduleService(db, beds, settings),
		Lifecycle: services.NewLifecycleService(db, beds, settings),
	}
}

func convertToScheduleResponse(schedule models.Schedule) dto.ScheduleResponse {
	resp := dto.ScheduleResponse{
		ID:   schedule.ID,
		Code: schedule.Code,
		Patient: dto.SchedulePatientResponse{
			ID:   schedule.Patient.ID,
			MRN:  schedule.Patient.MRN,
			Name: schedule.Patient.Name,
		},
		Bed: dto.ScheduleBedResponse{
			ID:     schedule.Bed.ID,
			Code:   schedule.Bed.Code,
			Name:   schedule.Bed.Name,
			Ward:   schedule.Bed.Ward,
			Status: schedule.Bed.Status,
		},
		Date:            schedule.Date.Format(utils.DateLayout),
		StartTime:       schedule.StartTime,
		EndTime:         schedule.EndTime,
		Status:          schedule.Status,
		State:           schedule.State,
		ActualStartAt:   schedule.ActualStartAt,
		ActualEndAt:     schedule.ActualEndAt,
		CancelRequested: schedule.CancelRequested,
		CancelApproved:  schedule.CancelApproved,
		CancelReason:    schedule.CancelReason,
		CreatedAt:       schedule.CreatedAt,
		UpdatedAt:       schedule.UpdatedAt,
	}

	if schedule.Staff != nil {
		resp.Staff = &dto.ActorResponse{
			Name:        schedule.Staff.Name,
			Email:       schedule.Staff.Email,
			PhoneNumber: schedule.Staff.PhoneNumber,
		}
	}
	return resp
}

// CreateSchedule đặt lịch chạy thận mới sau khi kiểm tra toàn bộ xung đột
func (s ScheduleController) CreateSchedule(c *gin.Context) {
	var input dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	schedule, err := s.Schedules.BookSchedule(models.ScheduleRequest{
		PatientMRN: input.PatientMRN,
		BedCode:    input.BedCode,
		StaffID:    input.StaffID,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.Success(c, convertToScheduleResponse(*schedule))
}

func (s ScheduleController) GetSchedules(c *gin.Context) {
	cacheKey := "schedules:all"

	var allSchedules []models.Schedule
	if err := services.GetFromRedis(config.Ctx, s.Redis, cacheKey, &allSchedules); err != nil || len(allSchedules) == 0 {
		if err := s.DB.Preload("Patient").Preload("Bed").Preload("Staff").
			Find(&allSchedules).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, s.Redis, cacheKey, allSchedules, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách lịch vào Redis: %v", err)
		}
	}

	dateStr := c.Query("date")
	bedCode := c.Query("bedCode")
	patientMRN := c.Query("patientMrn")
	statusStr := c.Query("status")
	stateStr := c.Query("state")

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filtered := make([]models.Schedule, 0, len(allSchedules))
	for _, schedule := range allSchedules {
		if dateStr != "" {
			date, err := utils.ParseDate(dateStr)
			if err != nil || !utils.SameDay(schedule.Date, date) {
				continue
			}
		}
		if bedCode != "" && schedule.Bed.Code != bedCode {
			continue
		}
		if patientMRN != "" && schedule.Patient.MRN != patientMRN {
			continue
		}
		if statusStr != "" {
			status, err := strconv.Atoi(statusStr)
			if err != nil || schedule.Status != status {
				continue
			}
		}
		if stateStr != "" {
			state, err := strconv.Atoi(stateStr)
			if err != nil || schedule.State != state {
				continue
			}
		}
		filtered = append(filtered, schedule)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.Before(filtered[j].Date)
		}
		return filtered[i].StartTime < filtered[j].StartTime
	})

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Schedule{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	results := make([]dto.ScheduleResponse, 0, len(filtered))
	for _, schedule := range filtered {
		results = append(results, convertToScheduleResponse(schedule))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

func (s ScheduleController) GetScheduleDetail(c *gin.Context) {
	code := c.Param("code")

	schedule, err := s.Schedules.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, convertToScheduleResponse(*schedule))
}

// UpdateSchedule cập nhật lịch. Đổi khung giờ sẽ kiểm tra lại xung đột với
// các lịch khác của giường. Đặt status = hoàn thành sẽ đi qua luồng kết thúc
// ca để giường được khóa bảo trì đúng quy trình.
func (s ScheduleController) UpdateSchedule(c *gin.Context) {
	var input dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Status != nil && *input.Status == models.ScheduleStatusCompleted {
		_, until, err := s.Lifecycle.Complete(input.Code, time.Now())
		if err != nil {
			respondError(c, err)
			return
		}

		schedule, err := s.Schedules.GetByCode(input.Code)
		if err != nil {
			respondError(c, err)
			return
		}

		services.InvalidateScheduleCache(config.Ctx, s.Redis)
		response.Success(c, gin.H{
			"schedule":         convertToScheduleResponse(*schedule),
			"maintenanceUntil": until,
		})
		return
	}

	schedule, err := s.Schedules.GetByCode(input.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	if input.StaffID != nil {
		schedule.StaffID = input.StaffID
	}
	if input.Date != nil {
		date, err := utils.ParseDate(*input.Date)
		if err != nil {
			response.BadRequest(c, "Ngày không hợp lệ, định dạng dd/mm/yyyy")
			return
		}
		schedule.Date = date
	}
	if input.StartTime != nil {
		schedule.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		schedule.EndTime = *input.EndTime
	}
	if input.Status != nil {
		schedule.Status = *input.Status
	}

	if err := validator.ValidateScheduleTimes(
		schedule.Date.Format(utils.DateLayout), schedule.StartTime, schedule.EndTime); err != nil {
		respondError(c, err)
		return
	}

	// Đổi khung giờ phải kiểm tra lại xung đột với các lịch khác của giường
	if input.Date != nil || input.StartTime != nil || input.EndTime != nil {
		startMin, _ := utils.ParseClock(schedule.StartTime)
		endMin, _ := utils.ParseClock(schedule.EndTime)

		var others []models.Schedule
		if err := s.DB.Where("bed_id = ? AND date = ? AND id <> ?",
			schedule.BedID, schedule.Date, schedule.ID).Find(&others).Error; err != nil {
			response.ServerError(c)
			return
		}

		bufferMin := services.NewSettingsService(s.DB).MaintenanceMinutes()
		if services.HasBedConflict(others, startMin, endMin, bufferMin) {
			response.Conflict(c, "Giường đã được đặt trong khung giờ này")
			return
		}
	}

	if err := s.DB.Save(schedule).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.Success(c, convertToScheduleResponse(*schedule))
}

// RequestCancelSchedule ghi nhận yêu cầu hủy từ phía bệnh nhân
func (s ScheduleController) RequestCancelSchedule(c *gin.Context) {
	var input dto.CancelScheduleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	schedule, err := s.Schedules.RequestCancel(input.Code, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.SuccessWithMessage(c, "Đã ghi nhận yêu cầu hủy lịch", convertToScheduleResponse(*schedule))
}

// ApproveCancelSchedule duyệt hủy lịch và trả giường về trạng thái sẵn sàng
func (s ScheduleController) ApproveCancelSchedule(c *gin.Context) {
	var input dto.CancelScheduleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	schedule, err := s.Schedules.ApproveCancel(input.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.SuccessWithMessage(c, "Đã duyệt hủy lịch", convertToScheduleResponse(*schedule))
}

func (s ScheduleController) DeleteSchedule(c *gin.Context) {
	code := c.Param("code")

	deleted, err := s.Schedules.Delete(code)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.SuccessWithMessage(c, deletedMessage(deleted), gin.H{"deleted": deleted})
}

// DeleteAllSchedules xóa toàn bộ lịch, yêu cầu query confirm=true
func (s ScheduleController) DeleteAllSchedules(c *gin.Context) {
	confirm := c.Query("confirm") == "true"

	deleted, err := s.Schedules.DeleteAll(confirm)
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, s.Redis)
	response.SuccessWithMessage(c, deletedMessage(deleted), gin.H{"deleted": deleted})
}

// deletedMessage tạo thông điệp kèm số lịch đã xóa
func deletedMessage(deleted int64) string {
	return fmt.Sprintf("Đã xóa %d lịch", deleted)
}
