package controllers

import (
	"clinic/errors"
	"clinic/response"

	"github.com/gin-gonic/gin"
)

// respondError ánh xạ AppError sang response HTTP tương ứng
func respondError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeBedBusy,
		errors.ErrCodePatientDoubleBooked,
		errors.ErrCodeStaffDoubleBooked,
		errors.ErrCodeDuplicateBed,
		errors.ErrCodeDuplicateMRN:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeBedNotFound,
		errors.ErrCodeScheduleNotFound,
		errors.ErrCodePatientNotFound,
		errors.ErrCodeUserNotFound:
		response.NotFound(c)
	case errors.ErrCodeUnauthorized,
		errors.ErrCodeInvalidToken,
		errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}
