package validator

import (
	"clinic/errors"
	"clinic/models"
	"clinic/utils"
	"regexp"
	"time"
)

// ValidateUser validate thông tin nhân viên
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidatePatient validate thông tin bệnh nhân
func ValidatePatient(patient *models.Patient) error {
	if patient.MRN == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã bệnh án không được để trống", nil)
	}

	if patient.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên bệnh nhân không được để trống", nil)
	}

	if patient.Email != "" && !isValidEmail(patient.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if patient.PhoneNumber != "" && !isValidPhone(patient.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if patient.DateOfBirth != "" {
		if _, err := time.Parse(utils.DateLayout, patient.DateOfBirth); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày sinh không hợp lệ, định dạng dd/mm/yyyy", err)
		}
	}

	return nil
}

// ValidateBed validate thông tin giường
func ValidateBed(bed *models.Bed) error {
	if bed.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã giường không được để trống", nil)
	}

	if bed.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên giường không được để trống", nil)
	}

	if err := bed.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái giường không hợp lệ", err)
	}

	if bed.Capacity < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa không được âm", nil)
	}

	return nil
}

// ValidateScheduleTimes validate ngày và khung giờ của lịch
func ValidateScheduleTimes(date, startTime, endTime string) error {
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không hợp lệ, định dạng dd/mm/yyyy", err)
	}

	startMin, err := utils.ParseClock(startTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ bắt đầu không hợp lệ, định dạng HH:MM", err)
	}

	endMin, err := utils.ParseClock(endTime)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ kết thúc không hợp lệ, định dạng HH:MM", err)
	}

	if startMin >= endMin {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Giờ bắt đầu phải trước giờ kết thúc", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^(0|\+84)[0-9]{9,10}$`)
	return re.MatchString(phone)
}
