package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Schedule errors
	ErrCodeInvalidRange         ErrorCode = "INVALID_RANGE"
	ErrCodePastSchedule         ErrorCode = "PAST_SCHEDULE"
	ErrCodeBedBusy              ErrorCode = "BED_BUSY"
	ErrCodePatientDoubleBooked  ErrorCode = "PATIENT_DOUBLE_BOOKED"
	ErrCodeStaffDoubleBooked    ErrorCode = "STAFF_DOUBLE_BOOKED"
	ErrCodeScheduleNotFound     ErrorCode = "SCHEDULE_NOT_FOUND"
	ErrCodeConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"

	// Bed errors
	ErrCodeBedNotFound    ErrorCode = "BED_NOT_FOUND"
	ErrCodeBedUnavailable ErrorCode = "BED_UNAVAILABLE"
	ErrCodeDuplicateBed   ErrorCode = "DUPLICATE_BED"

	// Patient errors
	ErrCodePatientNotFound ErrorCode = "PATIENT_NOT_FOUND"
	ErrCodeDuplicateMRN    ErrorCode = "DUPLICATE_MRN"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Schedule errors
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrScheduleCompleted = errors.New("schedule already completed")
	ErrScheduleNoShow    = errors.New("schedule already marked no-show")
	ErrScheduleCancelled = errors.New("schedule already cancelled")

	// Bed errors
	ErrBedNotFound    = errors.New("bed not found")
	ErrBedUnavailable = errors.New("bed under maintenance")
	ErrBedBusy        = errors.New("bed already booked for this window")

	// Patient errors
	ErrPatientNotFound = errors.New("patient not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
