package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"clinic/config"
	"clinic/constants"
	"clinic/dto"
	"clinic/errors"
	"clinic/models"
	"clinic/response"
	"clinic/services"
	"clinic/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type PatientController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewPatientController(db *gorm.DB, redisCli *redis.Client) PatientController {
	return PatientController{
		DB:    db,
		Redis: redisCli,
	}
}

func (p PatientController) GetPatients(c *gin.Context) {
	cacheKey := "patients:all"

	var allPatients []models.Patient
	if err := services.GetFromRedis(config.Ctx, p.Redis, cacheKey, &allPatients); err != nil || len(allPatients) == 0 {
		if err := p.DB.Find(&allPatients).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, p.Redis, cacheKey, allPatients, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách bệnh nhân vào Redis: %v", err)
		}
	}

	nameFilter := c.Query("name")
	mrnFilter := c.Query("mrn")
	groupStr := c.Query("dialysisGroup")

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

	filtered := make([]models.Patient, 0, len(allPatients))
	for _, patient := range allPatients {
		if !patient.IsActive {
			continue
		}
		if nameFilter != "" && !strings.Contains(
			services.NormalizeInput(patient.Name), services.NormalizeInput(nameFilter)) {
			continue
		}
		if mrnFilter != "" && !strings.EqualFold(patient.MRN, mrnFilter) {
			continue
		}
		if groupStr != "" {
			group, err := strconv.Atoi(groupStr)
			if err != nil || patient.DialysisGroup != group {
				continue
			}
		}
		filtered = append(filtered, patient)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Patient{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	response.SuccessWithPagination(c, filtered, page, limit, total)
}

func (p PatientController) CreatePatient(c *gin.Context) {
	var input dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	patient := models.Patient{
		MRN:           input.MRN,
		Name:          input.Name,
		Gender:        input.Gender,
		DateOfBirth:   input.DateOfBirth,
		PhoneNumber:   input.PhoneNumber,
		Email:         input.Email,
		Address:       input.Address,
		BloodType:     input.BloodType,
		DialysisGroup: input.DialysisGroup,
		Note:          input.Note,
		Avatar:        input.Avatar,
		IsActive:      true,
	}

	if err := validator.ValidatePatient(&patient); err != nil {
		respondError(c, err)
		return
	}

	var existing models.Patient
	if err := p.DB.Where("mrn = ?", patient.MRN).First(&existing).Error; err == nil {
		respondError(c, errors.NewAppError(errors.ErrCodeDuplicateMRN,
			fmt.Sprintf("Mã bệnh án %s đã tồn tại", patient.MRN), nil))
		return
	}

	if err := p.DB.Create(&patient).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteKeysByPattern(config.Ctx, p.Redis, "patients:*")
	response.Success(c, patient)
}

func (p PatientController) GetPatientDetail(c *gin.Context) {
	mrn := c.Param("mrn")

	var patient models.Patient
	if err := p.DB.Where("mrn = ?", mrn).First(&patient).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, patient)
}

func (p PatientController) UpdatePatient(c *gin.Context) {
	var input dto.UpdatePatientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var patient models.Patient
	if err := p.DB.Where("mrn = ?", input.MRN).First(&patient).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != nil {
		patient.Name = *input.Name
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.DateOfBirth != nil {
		patient.DateOfBirth = *input.DateOfBirth
	}
	if input.PhoneNumber != nil {
		patient.PhoneNumber = *input.PhoneNumber
	}
	if input.Email != nil {
		patient.Email = *input.Email
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.BloodType != nil {
		patient.BloodType = *input.BloodType
	}
	if input.DialysisGroup != nil {
		patient.DialysisGroup = *input.DialysisGroup
	}
	if input.Note != nil {
		patient.Note = *input.Note
	}
	if input.Avatar != nil {
		patient.Avatar = *input.Avatar
	}

	if err := validator.ValidatePatient(&patient); err != nil {
		respondError(c, err)
		return
	}

	if err := p.DB.Save(&patient).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteKeysByPattern(config.Ctx, p.Redis, "patients:*")
	response.Success(c, patient)
}

// DeletePatient ngừng theo dõi bệnh nhân và hủy toàn bộ lịch chưa diễn ra của họ
func (p PatientController) DeletePatient(c *gin.Context) {
	mrn := c.Param("mrn")

	var patient models.Patient
	if err := p.DB.Where("mrn = ?", mrn).First(&patient).Error; err != nil {
		response.NotFound(c)
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	err := p.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Schedule{}).
			Where("patient_id = ? AND date >= ? AND status NOT IN ?", patient.ID, today,
				[]int{constants.ScheduleStatusCompleted, constants.ScheduleStatusCancelled}).
			Updates(map[string]interface{}{
				"status":           constants.ScheduleStatusCancelled,
				"cancel_requested": true,
				"cancel_approved":  true,
				"cancel_reason":    "Patient removed",
			}).Error; err != nil {
			return err
		}

		patient.IsActive = false
		return tx.Save(&patient).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteKeysByPattern(config.Ctx, p.Redis, "patients:*")
	services.InvalidateScheduleCache(config.Ctx, p.Redis)
	response.SuccessWithMessage(c, "Đã ngừng theo dõi bệnh nhân", nil)
}

// SearchPatients tìm kiếm mờ theo tên (có dấu hoặc không dấu), mã bệnh án
// hoặc số điện thoại
func (p PatientController) SearchPatients(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	var patients []models.Patient
	if err := p.DB.Where("is_active = ?", true).Find(&patients).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := services.SearchPatients(query, patients)

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	if len(results) > limit {
		results = results[:limit]
	}

	response.SuccessWithTotal(c, results, len(results))
}
