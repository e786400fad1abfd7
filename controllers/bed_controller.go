package controllers

import (
	"log"
	"strconv"
	"time"

	"clinic/config"
	"clinic/constants"
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

type BedController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Beds     *services.BedService
	Settings *services.SettingsService
}

func NewBedController(db *gorm.DB, redisCli *redis.Client) BedController {
	return BedController{
		DB:       db,
		Redis:    redisCli,
		Beds:     services.NewBedService(db),
		Settings: services.NewSettingsService(db),
	}
}

func convertToBedResponse(bed models.Bed) dto.BedResponse {
	return dto.BedResponse{
		ID:                bed.ID,
		Code:              bed.Code,
		Name:              bed.Name,
		Type:              bed.Type,
		Status:            bed.Status,
		Capacity:          bed.Capacity,
		Ward:              bed.Ward,
		Room:              bed.Room,
		Floor:             bed.Floor,
		MaintenanceUntil:  bed.MaintenanceUntil,
		LastMaintenanceAt: bed.LastMaintenanceAt,
		IsActive:          bed.IsActive,
	}
}

func (b BedController) GetBeds(c *gin.Context) {
	cacheKey := "beds:all"

	var allBeds []models.Bed
	if err := services.GetFromRedis(config.Ctx, b.Redis, cacheKey, &allBeds); err != nil || len(allBeds) == 0 {
		if err := b.DB.Find(&allBeds).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, b.Redis, cacheKey, allBeds, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách giường vào Redis: %v", err)
		}
	}

	wardFilter := c.Query("ward")
	statusStr := c.Query("status")
	typeStr := c.Query("type")

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

	filtered := make([]dto.BedResponse, 0, len(allBeds))
	for _, bed := range allBeds {
		if !bed.IsActive {
			continue
		}
		if wardFilter != "" && bed.Ward != wardFilter {
			continue
		}
		if statusStr != "" {
			status, err := strconv.Atoi(statusStr)
			if err != nil || bed.Status != status {
				continue
			}
		}
		if typeStr != "" {
			bedType, err := strconv.Atoi(typeStr)
			if err != nil || bed.Type != bedType {
				continue
			}
		}
		filtered = append(filtered, convertToBedResponse(bed))
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []dto.BedResponse{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	response.SuccessWithPagination(c, filtered, page, limit, total)
}

func (b BedController) CreateBed(c *gin.Context) {
	var input dto.CreateBedRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bed := models.Bed{
		Code:     input.Code,
		Name:     input.Name,
		Type:     input.Type,
		Status:   constants.BedStatusAvailable,
		Capacity: input.Capacity,
		Ward:     input.Ward,
		Room:     input.Room,
		Floor:    input.Floor,
		IsActive: true,
	}

	if err := validator.ValidateBed(&bed); err != nil {
		respondError(c, err)
		return
	}

	if err := b.Beds.Create(&bed); err != nil {
		respondError(c, err)
		return
	}

	_ = services.DeleteKeysByPattern(config.Ctx, b.Redis, "beds:*")
	response.Success(c, convertToBedResponse(bed))
}

func (b BedController) GetBedDetail(c *gin.Context) {
	code := c.Param("code")

	bed, err := b.Beds.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, convertToBedResponse(*bed))
}

func (b BedController) UpdateBed(c *gin.Context) {
	var input dto.UpdateBedRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bed, err := b.Beds.GetByCode(input.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	if input.Name != nil {
		bed.Name = *input.Name
	}
	if input.Type != nil {
		bed.Type = *input.Type
	}
	if input.Capacity != nil {
		bed.Capacity = *input.Capacity
	}
	if input.Ward != nil {
		bed.Ward = *input.Ward
	}
	if input.Room != nil {
		bed.Room = *input.Room
	}
	if input.Floor != nil {
		bed.Floor = *input.Floor
	}

	if err := validator.ValidateBed(bed); err != nil {
		respondError(c, err)
		return
	}

	if err := b.DB.Save(bed).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteKeysByPattern(config.Ctx, b.Redis, "beds:*")
	response.Success(c, convertToBedResponse(*bed))
}

// ChangeBedStatus đổi trạng thái giường. Đưa giường vào bảo trì không hạn
// sẽ hủy toàn bộ lịch tương lai của giường đó.
func (b BedController) ChangeBedStatus(c *gin.Context) {
	var input dto.ChangeBedStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bed, err := b.Beds.SetStatus(input.Code, input.Status, input.MaintenanceUntil, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, b.Redis)
	response.Success(c, convertToBedResponse(*bed))
}

// DeleteBed ngừng sử dụng giường và hủy các lịch tương lai của nó
func (b BedController) DeleteBed(c *gin.Context) {
	code := c.Param("code")

	if err := b.Beds.SoftDelete(code, time.Now()); err != nil {
		respondError(c, err)
		return
	}

	services.InvalidateScheduleCache(config.Ctx, b.Redis)
	response.SuccessWithMessage(c, "Đã ngừng sử dụng giường", nil)
}

// GetBedAvailability trả về danh sách giường kèm cờ còn trống trong khung giờ
// yêu cầu, đã tính cả thời gian bảo trì sau mỗi ca
func (b BedController) GetBedAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	startStr := c.Query("startTime")
	endStr := c.Query("endTime")

	if err := validator.ValidateScheduleTimes(dateStr, startStr, endStr); err != nil {
		respondError(c, err)
		return
	}

	date, _ := utils.ParseDate(dateStr)
	startMin, _ := utils.ParseClock(startStr)
	endMin, _ := utils.ParseClock(endStr)
	bufferMin := b.Settings.MaintenanceMinutes()
	now := time.Now()

	var beds []models.Bed
	if err := b.DB.Where("is_active = ?", true).Find(&beds).Error; err != nil {
		response.ServerError(c)
		return
	}

	var schedules []models.Schedule
	if err := b.DB.Where("date = ?", date).Find(&schedules).Error; err != nil {
		response.ServerError(c)
		return
	}

	byBed := make(map[uint][]models.Schedule)
	for _, sch := range schedules {
		byBed[sch.BedID] = append(byBed[sch.BedID], sch)
	}

	results := make([]dto.BedAvailabilityResponse, 0, len(beds))
	for _, bed := range beds {
		available := true
		if bed.Status == constants.BedStatusMaintenance && !bed.MaintenanceExpired(now) {
			available = false
		}
		if available && services.HasBedConflict(byBed[bed.ID], startMin, endMin, bufferMin) {
			available = false
		}
		results = append(results, dto.BedAvailabilityResponse{
			BedResponse: convertToBedResponse(bed),
			IsAvailable: available,
		})
	}

	response.SuccessWithTotal(c, results, len(results))
}

// ReclaimMaintenance giải phóng thủ công các giường đã hết hạn bảo trì,
// cùng logic với cron job chạy định kỳ
func (b BedController) ReclaimMaintenance(c *gin.Context) {
	reclaimed, err := b.Beds.ReclaimExpired(time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteKeysByPattern(config.Ctx, b.Redis, "beds:*")
	response.Success(c, gin.H{"reclaimed": reclaimed})
}
