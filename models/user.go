package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"default:New User" json:"name"`
	Email       string    `gorm:"unique" json:"email"`
	Password    string    `json:"password"`
	PhoneNumber string    `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `gorm:"default:0" json:"role"`
	Status      int       `gorm:"default:0" json:"status"`
	Gender      int       `json:"gender"`
	DateOfBirth string    `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	LicenseNo   string    `json:"licenseNo"` // số chứng chỉ hành nghề, chỉ dùng cho điều dưỡng
	Schedules   []Schedule `json:"-" gorm:"foreignKey:StaffID"`
}
