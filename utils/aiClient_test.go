package utils

import (
	"reflect"
	"testing"
)

func TestParseGeneratedOptions(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		correct string
		want    []string
	}{
		{
			name:    "plain json array",
			raw:     `["Comma", "Colon", "Full stop"]`,
			correct: "Semicolon",
			want:    []string{"Comma", "Colon", "Full stop"},
		},
		{
			name:    "markdown fenced",
			raw:     "```json\n[\"Comma\", \"Colon\"]\n```",
			correct: "Semicolon",
			want:    []string{"Comma", "Colon"},
		},
		{
			name:    "drops the correct answer and duplicates",
			raw:     `["Semicolon", "Comma", "Comma", ""]`,
			correct: "Semicolon",
			want:    []string{"Comma"},
		},
		{
			name:    "not json at all",
			raw:     "Sure! Here are some options: Comma, Colon",
			correct: "Semicolon",
			want:    []string{},
		},
		{
			name:    "empty input",
			raw:     "",
			correct: "Semicolon",
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGeneratedOptions(tt.raw, tt.correct)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseGeneratedOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}
