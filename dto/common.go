package dto

// ActorResponse là DTO cho thông tin người thao tác
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
