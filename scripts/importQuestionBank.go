package main

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"smartlearn/config"
	"smartlearn/database"
	examModels "smartlearn/models/exam"
)

// Imports a question bank CSV into exam_questions. Expected columns:
// examId, subjectId, text, options (pipe separated), correctAnswer, orderIndex
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "QuestionBank.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		examID := parseUint(getField(row, headerIndex, "examId"))
		subjectID := parseUint(getField(row, headerIndex, "subjectId"))
		text := getField(row, headerIndex, "text")
		correct := getField(row, headerIndex, "correctAnswer")
		options := splitOptions(getField(row, headerIndex, "options"))

		if examID == 0 || subjectID == 0 || text == "" || correct == "" || len(options) < 2 {
			log.Printf("Skipping row %d: missing required fields", i+2)
			skipped++
			continue
		}

		if !contains(options, correct) {
			log.Printf("Skipping row %d: correct answer is not among the options", i+2)
			skipped++
			continue
		}

		var exam examModels.Examination
		if err := database.Database.Db.Where("id = ? AND is_deleted = false", examID).First(&exam).Error; err != nil {
			log.Printf("Skipping row %d: exam %d not found", i+2, examID)
			skipped++
			continue
		}

		optionsJSON, err := json.Marshal(options)
		if err != nil {
			log.Printf("Skipping row %d: %v", i+2, err)
			skipped++
			continue
		}

		question := examModels.Question{
			ExamID:        examID,
			SubjectID:     subjectID,
			Text:          text,
			Options:       optionsJSON,
			CorrectAnswer: correct,
			OrderIndex:    parseInt(getField(row, headerIndex, "orderIndex")),
		}

		if err := database.Database.Db.Create(&question).Error; err != nil {
			log.Printf("Failed to insert row %d: %v", i+2, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import finished: %d inserted, %d skipped", inserted, skipped)
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitOptions(raw string) []string {
	parts := strings.Split(raw, "|")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func parseUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
