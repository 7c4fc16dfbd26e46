package models

import (
	"time"

	"gorm.io/gorm"
)

// Subject groups video lessons, live classes and exam questions.
type Subject struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"default:''" json:"icon"`
	TeacherID   uint   `gorm:"index" json:"teacherId"`
	IsDeleted   bool   `gorm:"default:false" json:"isDeleted"`
}

// VideoLesson is a recorded lesson. Playback is gated by an active plan.
type VideoLesson struct {
	gorm.Model
	SubjectID       uint   `gorm:"not null;index" json:"subjectId"`
	Title           string `gorm:"not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	VideoURL        string `gorm:"not null" json:"videoUrl"`
	DurationMinutes int    `gorm:"default:0" json:"durationMinutes"`
	OrderIndex      int    `gorm:"default:0" json:"orderIndex"`
	IsPublished     bool   `gorm:"default:false" json:"isPublished"`
	IsDeleted       bool   `gorm:"default:false" json:"isDeleted"`
}

// LiveClass is a scheduled live session. Joining requires an active Monthly
// plan or a one-time topup token for this specific class.
type LiveClass struct {
	gorm.Model
	SubjectID       uint      `gorm:"not null;index" json:"subjectId"`
	TeacherID       uint      `gorm:"not null;index" json:"teacherId"`
	Title           string    `gorm:"not null" json:"title"`
	ScheduledAt     time.Time `gorm:"not null" json:"scheduledAt"`
	DurationMinutes int       `gorm:"default:60" json:"durationMinutes"`
	MeetingURL      string    `gorm:"default:''" json:"meetingUrl"`
	TopupPrice      uint      `gorm:"default:1000" json:"topupPrice"`
	IsDeleted       bool      `gorm:"default:false" json:"isDeleted"`
}

func (LiveClass) TableName() string {
	return "live_classes"
}
