package routes

import (
	"context"
	"fmt"
	"net/http"

	"clinic/controllers"
	middlewares "clinic/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	patientController := controllers.NewPatientController(db, redisCli)
	bedController := controllers.NewBedController(db, redisCli)
	scheduleController := controllers.NewScheduleController(db, redisCli)
	shiftController := controllers.NewShiftController(db)
	settingsController := controllers.NewSettingsController(db)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", middlewares.AuthMiddleware(1), controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/patients", middlewares.AuthMiddleware(1, 2, 3), patientController.GetPatients)
	v1.POST("/patients", middlewares.AuthMiddleware(1, 3), patientController.CreatePatient)
	v1.GET("/patients/search", middlewares.AuthMiddleware(1, 2, 3), patientController.SearchPatients)
	v1.GET("/patients/:mrn", middlewares.AuthMiddleware(1, 2, 3), patientController.GetPatientDetail)
	v1.PUT("/patients", middlewares.AuthMiddleware(1, 3), patientController.UpdatePatient)
	v1.DELETE("/patients/:mrn", middlewares.AuthMiddleware(1), patientController.DeletePatient)

	v1.GET("/beds", middlewares.AuthMiddleware(1, 2, 3), bedController.GetBeds)
	v1.POST("/beds", middlewares.AuthMiddleware(1), bedController.CreateBed)
	v1.GET("/beds/availability", middlewares.AuthMiddleware(1, 2, 3), bedController.GetBedAvailability)
	v1.GET("/beds/:code", middlewares.AuthMiddleware(1, 2, 3), bedController.GetBedDetail)
	v1.PUT("/beds", middlewares.AuthMiddleware(1), bedController.UpdateBed)
	v1.PUT("/bedStatus", middlewares.AuthMiddleware(1), bedController.ChangeBedStatus)
	v1.DELETE("/beds/:code", middlewares.AuthMiddleware(1), bedController.DeleteBed)
	v1.POST("/beds/reclaim", middlewares.AuthMiddleware(1, 2), bedController.ReclaimMaintenance)

	v1.GET("/schedules", middlewares.AuthMiddleware(1, 2, 3), scheduleController.GetSchedules)
	v1.POST("/schedules", middlewares.AuthMiddleware(1, 3), scheduleController.CreateSchedule)
	v1.GET("/schedules/:code", middlewares.AuthMiddleware(1, 2, 3), scheduleController.GetScheduleDetail)
	v1.PUT("/schedules", middlewares.AuthMiddleware(1, 2, 3), scheduleController.UpdateSchedule)
	v1.PUT("/schedules/requestCancel", middlewares.AuthMiddleware(1, 2, 3), scheduleController.RequestCancelSchedule)
	v1.PUT("/schedules/approveCancel", middlewares.AuthMiddleware(1, 3), scheduleController.ApproveCancelSchedule)
	v1.DELETE("/schedules/:code", middlewares.AuthMiddleware(1), scheduleController.DeleteSchedule)
	v1.DELETE("/schedules", middlewares.AuthMiddleware(1), scheduleController.DeleteAllSchedules)

	v1.PUT("/schedules/:code/checkin", middlewares.AuthMiddleware(1, 2, 3), scheduleController.CheckInSchedule)
	v1.PUT("/schedules/:code/start", middlewares.AuthMiddleware(1, 2), scheduleController.StartSchedule)
	v1.PUT("/schedules/:code/complete", middlewares.AuthMiddleware(1, 2), scheduleController.CompleteSchedule)
	v1.PUT("/schedules/:code/noshow", middlewares.AuthMiddleware(1, 2), scheduleController.NoShowSchedule)

	v1.GET("/shifts", middlewares.AuthMiddleware(1, 2, 3), shiftController.GetShifts)
	v1.POST("/shifts", middlewares.AuthMiddleware(1), shiftController.CreateShift)
	v1.GET("/shifts/workload", middlewares.AuthMiddleware(1, 3), shiftController.GetShiftWorkload)
	v1.GET("/shifts/:code", middlewares.AuthMiddleware(1, 2, 3), shiftController.GetShiftDetail)
	v1.PUT("/shifts", middlewares.AuthMiddleware(1), shiftController.UpdateShift)

	v1.GET("/settings", middlewares.AuthMiddleware(1), settingsController.GetSettings)
	v1.PUT("/settings", middlewares.AuthMiddleware(1), settingsController.UpdateSettings)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
