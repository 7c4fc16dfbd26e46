package exam

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Examination is an ordered set of questions with a time limit.
type Examination struct {
	gorm.Model
	Title           string `gorm:"not null" json:"title"`
	DurationMinutes int    `gorm:"default:30" json:"durationMinutes"`
	CreatedBy       uint   `gorm:"index" json:"createdBy"`
	IsPublished     bool   `gorm:"default:false" json:"isPublished"`
	IsDeleted       bool   `gorm:"default:false" json:"isDeleted"`

	Questions []Question `gorm:"foreignKey:ExamID" json:"questions,omitempty"`
}

func (Examination) TableName() string {
	return "examinations"
}

// Question belongs to one exam and one subject. Options holds a JSON array
// of candidate strings; CorrectAnswer is always a member of that array,
// enforced at creation time.
type Question struct {
	gorm.Model
	ExamID        uint           `gorm:"not null;index" json:"examId"`
	SubjectID     uint           `gorm:"not null;index" json:"subjectId"`
	Text          string         `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSON `gorm:"not null" json:"options"` // []string
	CorrectAnswer string         `gorm:"not null" json:"-"`
	OrderIndex    int            `gorm:"default:0" json:"orderIndex"`
	IsDeleted     bool           `gorm:"default:false" json:"isDeleted"`
}

func (Question) TableName() string {
	return "exam_questions"
}
