package grader

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string.
func extractJSON(s string) string {
	return extractBalanced(s, '{', '}')
}

// extractJSONArray finds the outermost JSON array in a string.
func extractJSONArray(s string) string {
	return extractBalanced(s, '[', ']')
}

// extractBalanced returns the first balanced open/close span of s.
// It handles nesting and skips delimiters inside quoted strings.
func extractBalanced(s string, open, close rune) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == close && depth > 0 {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// Response parsing
// ============================================================================

// parseResult turns raw model output into a Result. The score is clamped
// to 0..100.
func parseResult(raw string) (*Result, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, &GradeError{Reason: "no JSON object found in LLM response"}
	}

	var parsed struct {
		Score             *float64 `json:"score"`
		IsCorrect         *bool    `json:"isCorrect"`
		Feedback          string   `json:"feedback"`
		SuggestedSolution string   `json:"suggestedSolution"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, &GradeError{Reason: "invalid JSON from LLM", Wrapped: err}
	}
	if parsed.Score == nil || parsed.IsCorrect == nil || strings.TrimSpace(parsed.Feedback) == "" {
		return nil, &GradeError{Reason: "LLM response is missing score, isCorrect or feedback"}
	}

	return &Result{
		Score:             clampScore(*parsed.Score),
		IsCorrect:         *parsed.IsCorrect,
		Feedback:          strings.TrimSpace(parsed.Feedback),
		SuggestedSolution: strings.TrimSpace(parsed.SuggestedSolution),
	}, nil
}

func clampScore(score float64) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score + 0.5)
	}
}

// parseProblems turns raw model output into problems. Entries without a
// title or description are dropped. Missing or repeated ids are replaced by
// the entry's position so ids stay unique within the bank.
func parseProblems(raw string) ([]questionbank.Problem, error) {
	jsonStr := extractJSONArray(raw)
	if jsonStr == "" {
		if strings.TrimSpace(raw) == "" {
			return []questionbank.Problem{}, nil
		}
		return nil, &ExtractError{Reason: "no JSON array found in LLM response"}
	}

	var parsed []questionbank.Problem
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, &ExtractError{Reason: "invalid JSON from LLM", Wrapped: err}
	}

	problems := make([]questionbank.Problem, 0, len(parsed))
	seen := make(map[string]bool, len(parsed))
	for _, p := range parsed {
		p.ID = strings.TrimSpace(p.ID)
		p.Title = strings.TrimSpace(p.Title)
		p.Description = strings.TrimSpace(p.Description)
		if p.Title == "" && p.Description == "" {
			continue
		}
		if p.ID == "" || seen[p.ID] {
			p.ID = strconv.Itoa(len(problems) + 1)
			for seen[p.ID] {
				p.ID += "'"
			}
		}
		seen[p.ID] = true
		problems = append(problems, p)
	}
	return problems, nil
}
