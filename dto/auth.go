package dto

import "time"

// LoginInput là DTO cho request đăng nhập
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// GoogleLoginInput là DTO cho đăng nhập bằng Google
type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// RegisterInput là DTO cho request đăng ký
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role"`
	LicenseNo   string `json:"licenseNo"`
}

// UserLoginResponse là DTO cho response đăng nhập
type UserLoginResponse struct {
	UserID      uint      `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	UserPhone   string    `json:"userPhone"`
	UserRole    int       `json:"userRole"`
	UserAvatar  string    `json:"userAvatar"`
	Gender      int       `json:"gender"`
	DateOfBirth string    `json:"dateOfBirth"`
	LicenseNo   string    `json:"licenseNo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
