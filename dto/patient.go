package dto

// CreatePatientRequest là DTO cho request tạo bệnh nhân
type CreatePatientRequest struct {
	MRN           string `json:"mrn" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Gender        int    `json:"gender"`
	DateOfBirth   string `json:"dateOfBirth"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BloodType     string `json:"bloodType"`
	DialysisGroup int    `json:"dialysisGroup"`
	Note          string `json:"note"`
	Avatar        string `json:"avatar"`
}

// UpdatePatientRequest là DTO cho request cập nhật bệnh nhân
type UpdatePatientRequest struct {
	MRN           string  `json:"mrn" binding:"required"`
	Name          *string `json:"name"`
	Gender        *int    `json:"gender"`
	DateOfBirth   *string `json:"dateOfBirth"`
	PhoneNumber   *string `json:"phoneNumber"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	BloodType     *string `json:"bloodType"`
	DialysisGroup *int    `json:"dialysisGroup"`
	Note          *string `json:"note"`
	Avatar        *string `json:"avatar"`
}
