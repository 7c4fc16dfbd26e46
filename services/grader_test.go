package services

import (
	"reflect"
	"testing"

	"gorm.io/gorm"

	"smartlearn/models/exam"
)

func question(id, subjectID uint, correct string) exam.Question {
	return exam.Question{
		Model:         gorm.Model{ID: id},
		ExamID:        1,
		SubjectID:     subjectID,
		CorrectAnswer: correct,
	}
}

func TestGradeExam(t *testing.T) {
	const (
		math = uint(10)
		eng  = uint(20)
	)

	twoSubjects := []exam.Question{
		question(1, math, "2"),
		question(2, eng, "Semicolon"),
	}

	tests := []struct {
		name      string
		questions []exam.Question
		answers   map[uint]string
		wantScore int
		wantTotal int
		wantBy    map[uint]SubjectScore
	}{
		{
			name:      "one right one wrong",
			questions: twoSubjects,
			answers:   map[uint]string{1: "2", 2: "Comma"},
			wantScore: 1,
			wantTotal: 2,
			wantBy: map[uint]SubjectScore{
				math: {Score: 1, Total: 1},
				eng:  {Score: 0, Total: 1},
			},
		},
		{
			name:      "all correct",
			questions: twoSubjects,
			answers:   map[uint]string{1: "2", 2: "Semicolon"},
			wantScore: 2,
			wantTotal: 2,
			wantBy: map[uint]SubjectScore{
				math: {Score: 1, Total: 1},
				eng:  {Score: 1, Total: 1},
			},
		},
		{
			name:      "unanswered counts as wrong",
			questions: twoSubjects,
			answers:   map[uint]string{1: "2"},
			wantScore: 1,
			wantTotal: 2,
			wantBy: map[uint]SubjectScore{
				math: {Score: 1, Total: 1},
				eng:  {Score: 0, Total: 1},
			},
		},
		{
			name:      "empty answer map",
			questions: twoSubjects,
			answers:   map[uint]string{},
			wantScore: 0,
			wantTotal: 2,
			wantBy: map[uint]SubjectScore{
				math: {Score: 0, Total: 1},
				eng:  {Score: 0, Total: 1},
			},
		},
		{
			name:      "nil answer map",
			questions: twoSubjects,
			answers:   nil,
			wantScore: 0,
			wantTotal: 2,
			wantBy: map[uint]SubjectScore{
				math: {Score: 0, Total: 1},
				eng:  {Score: 0, Total: 1},
			},
		},
		{
			name:      "unknown question ids in answers are ignored",
			questions: twoSubjects,
			answers:   map[uint]string{1: "2", 99: "2", 100: "Semicolon"},
			wantScore: 1,
			wantTotal: 2,
			wantBy: map[uint]SubjectScore{
				math: {Score: 1, Total: 1},
				eng:  {Score: 0, Total: 1},
			},
		},
		{
			name:      "match is case sensitive",
			questions: []exam.Question{question(1, math, "Paris")},
			answers:   map[uint]string{1: "paris"},
			wantScore: 0,
			wantTotal: 1,
			wantBy:    map[uint]SubjectScore{math: {Score: 0, Total: 1}},
		},
		{
			name:      "empty exam",
			questions: nil,
			answers:   map[uint]string{1: "2"},
			wantScore: 0,
			wantTotal: 0,
			wantBy:    map[uint]SubjectScore{},
		},
		{
			name: "several questions per subject",
			questions: []exam.Question{
				question(1, math, "4"),
				question(2, math, "9"),
				question(3, math, "16"),
				question(4, eng, "Noun"),
			},
			answers:   map[uint]string{1: "4", 2: "8", 3: "16", 4: "Noun"},
			wantScore: 3,
			wantTotal: 4,
			wantBy: map[uint]SubjectScore{
				math: {Score: 2, Total: 3},
				eng:  {Score: 1, Total: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradeExam(tt.questions, tt.answers)
			if got.Score != tt.wantScore {
				t.Errorf("GradeExam() score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.TotalQuestions != tt.wantTotal {
				t.Errorf("GradeExam() total = %d, want %d", got.TotalQuestions, tt.wantTotal)
			}
			if !reflect.DeepEqual(got.BySubject, tt.wantBy) {
				t.Errorf("GradeExam() by subject = %v, want %v", got.BySubject, tt.wantBy)
			}

			// Per-subject scores and totals must always reconcile with the
			// overall figures.
			sumScore, sumTotal := 0, 0
			for _, b := range got.BySubject {
				sumScore += b.Score
				sumTotal += b.Total
			}
			if sumScore != got.Score {
				t.Errorf("sum of subject scores = %d, want overall score %d", sumScore, got.Score)
			}
			if sumTotal != got.TotalQuestions {
				t.Errorf("sum of subject totals = %d, want total questions %d", sumTotal, got.TotalQuestions)
			}
		})
	}
}

func TestGradeExamIdempotent(t *testing.T) {
	questions := []exam.Question{
		question(1, 10, "2"),
		question(2, 20, "Semicolon"),
	}
	answers := map[uint]string{1: "2", 2: "Comma"}

	first := GradeExam(questions, answers)
	second := GradeExam(questions, answers)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("grading twice differs: %v vs %v", first, second)
	}
}
