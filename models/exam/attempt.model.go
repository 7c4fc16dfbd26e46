package exam

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Attempt is one completed submission. Rows are append-only; a re-take is a
// new attempt, never an update. Answers maps question ID to the chosen
// option string; unanswered questions are simply absent. SubjectScores maps
// subject ID to {score,total}.
type Attempt struct {
	gorm.Model
	ExamID         uint           `gorm:"not null;index" json:"examId"`
	UserID         uint           `gorm:"not null;index" json:"userId"`
	Answers        datatypes.JSON `json:"answers"`       // map[questionID]option
	Score          int            `json:"score"`         // count of correct answers
	TotalQuestions int            `json:"totalQuestions"`
	SubjectScores  datatypes.JSON `json:"subjectScores"` // map[subjectID]{score,total}
	AttemptNumber  int            `gorm:"default:1" json:"attemptNumber"`
	CompletedAt    time.Time      `gorm:"not null" json:"completedAt"`
	IsDeleted      bool           `gorm:"default:false" json:"isDeleted"`
}

func (Attempt) TableName() string {
	return "exam_attempts"
}
