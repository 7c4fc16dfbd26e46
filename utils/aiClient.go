package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"smartlearn/config"
)

// TutorFallbackMessage is returned whenever the generative-language API is
// unreachable, misconfigured or returns garbage. The tutor must never
// surface an error to the student.
const TutorFallbackMessage = "I could not reach the tutor service right now. Please try again in a moment, or message your teacher directly."

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func newAIClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.AIApiURL).
		SetTimeout(time.Duration(config.AppConfig.AITimeout) * time.Second)
}

// generate sends one prompt to the hosted model and returns the first
// candidate's text.
func generate(prompt string, cfg *generationConfig) (string, error) {
	if config.AppConfig.AIApiKey == "" {
		return "", fmt.Errorf("AI API key is not configured")
	}

	client := newAIClient()
	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	}

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", config.AppConfig.AIApiKey).
		SetBody(reqBody).
		Post(fmt.Sprintf("/models/%s:generateContent", config.AppConfig.AIModel))
	if err != nil {
		return "", fmt.Errorf("failed to call model API: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("model API returned %d: %s", resp.StatusCode(), resp.String())
	}

	var genResp generateResponse
	if err := json.Unmarshal(resp.Body(), &genResp); err != nil {
		return "", fmt.Errorf("failed to parse model response: %v", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateTutorReply answers a student question. Failures degrade to the
// fixed fallback message, never an error.
func GenerateTutorReply(question string) string {
	prompt := "You are a friendly tutor on an e-learning platform for secondary school students. " +
		"Answer the following question clearly and briefly, in simple language:\n\n" + question

	text, err := generate(prompt, nil)
	if err != nil {
		log.Printf("Tutor generation failed: %v", err)
		return TutorFallbackMessage
	}
	return text
}

// GenerateQuizOptions asks the model for wrong-answer distractors for a
// question. Failures degrade to an empty slice; the teacher then types the
// options by hand.
func GenerateQuizOptions(question, correctAnswer string, count int) []string {
	if count <= 0 {
		count = 3
	}
	prompt := fmt.Sprintf(
		"For the quiz question %q with correct answer %q, produce exactly %d plausible but incorrect answer options. "+
			"Respond with a JSON array of strings and nothing else.",
		question, correctAnswer, count,
	)

	text, err := generate(prompt, &generationConfig{ResponseMimeType: "application/json"})
	if err != nil {
		log.Printf("Quiz option generation failed: %v", err)
		return []string{}
	}

	options := parseGeneratedOptions(text, correctAnswer)
	if len(options) > count {
		options = options[:count]
	}
	return options
}

// parseGeneratedOptions decodes a JSON string array out of model output,
// dropping blanks, duplicates and anything equal to the correct answer.
func parseGeneratedOptions(raw, correctAnswer string) []string {
	// Some models wrap JSON in markdown fences despite the mime type.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return []string{}
	}

	seen := make(map[string]bool)
	out := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" || opt == correctAnswer || seen[opt] {
			continue
		}
		seen[opt] = true
		out = append(out, opt)
	}
	return out
}
