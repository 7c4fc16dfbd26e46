package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleOwner   = "OWNER"
)

type User struct {
	gorm.Model
	ProfileImage        string    `gorm:"default:''"`
	Name                string    `gorm:"default:''"`
	Email               string    `gorm:"unique;not null"`
	Mobile              string    `gorm:"default:''"`
	Role                string    `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, OWNER
	Password            string    `gorm:"not null"`
	Bio                 string    `gorm:"type:text"`
	IsEmailVerified     bool      `gorm:"default:false"`
	LastLogin           time.Time `gorm:"default:NULL"`
	FailedLoginAttempts int       `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
