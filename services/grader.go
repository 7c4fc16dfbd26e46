package services

import (
	"smartlearn/models/exam"
)

// SubjectScore is the per-subject slice of a graded attempt.
type SubjectScore struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// GradeResult is the outcome of grading one submission.
type GradeResult struct {
	Score          int                   `json:"score"`
	TotalQuestions int                   `json:"totalQuestions"`
	BySubject      map[uint]SubjectScore `json:"scoresBySubject"`
}

// GradeExam scores a submitted answer map against the exam's question list.
// Every question in the exam is counted: an unanswered question is wrong,
// never excluded. Matching is an exact, case-sensitive string comparison.
// Answer keys that reference no question in the exam are ignored — the
// question list is the only source of truth. Grading is deterministic and
// stateless; the same (questions, answers) pair always yields the same
// result.
func GradeExam(questions []exam.Question, answers map[uint]string) GradeResult {
	result := GradeResult{
		TotalQuestions: len(questions),
		BySubject:      make(map[uint]SubjectScore),
	}

	for _, q := range questions {
		bucket := result.BySubject[q.SubjectID]
		bucket.Total++

		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectAnswer {
			bucket.Score++
			result.Score++
		}

		result.BySubject[q.SubjectID] = bucket
	}

	return result
}
