package models

import (
	"fmt"
	"time"
)

type Bed struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	Code              string     `json:"code" gorm:"uniqueIndex;not null"`
	Name              string     `json:"name"`
	Type              int        `json:"type"`
	Status            int        `json:"status" gorm:"default:1"`
	Capacity          int        `json:"capacity" gorm:"default:1"`
	Ward              string     `json:"ward"`
	Room              string     `json:"room"`
	Floor             int        `json:"floor"`
	MaintenanceUntil  *time.Time `json:"maintenanceUntil"`
	LastMaintenanceAt *time.Time `json:"lastMaintenanceAt"`
	IsActive          bool       `json:"isActive" gorm:"default:true"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Schedules         []Schedule `json:"-" gorm:"foreignKey:BedID"`
}

func (b *Bed) ValidateStatus() error {
	if b.Status < 1 || b.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 3", b.Status)
	}
	return nil
}

// MaintenanceExpired kiểm tra giường đã hết hạn bảo trì chưa
func (b *Bed) MaintenanceExpired(now time.Time) bool {
	if b.MaintenanceUntil == nil {
		return false
	}
	return !b.MaintenanceUntil.After(now)
}
