package models

import (
	"time"
)

type Patient struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	MRN           string     `json:"mrn" gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	Gender        int        `json:"gender"`
	DateOfBirth   string     `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	PhoneNumber   string     `json:"phoneNumber"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	BloodType     string     `json:"bloodType"`
	DialysisGroup int        `json:"dialysisGroup"` // 0: chưa phân nhóm, 1: sáng, 2: chiều, 3: tối
	Note          string     `json:"note"`
	Avatar        string     `json:"avatar"`
	IsActive      bool       `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Schedules     []Schedule `json:"-" gorm:"foreignKey:PatientID"`
}
