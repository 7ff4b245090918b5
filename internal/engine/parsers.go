package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"teaching-server/internal/domain"
)

// extractJSON trims whatever a model wraps around its JSON payload: markdown
// fences, leading prose, trailing commentary. Returns the substring from the
// first opening brace/bracket to its matching closer.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errors.New("empty response")
	}

	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", errors.New("no JSON payload in response")
	}
	open := s[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}
	end := strings.LastIndexByte(s, close)
	if end < start {
		return "", errors.New("unterminated JSON payload in response")
	}
	return s[start : end+1], nil
}

func parseAnalysis(raw string) (domain.Analysis, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("analysis response: %w", err)
	}
	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return domain.Analysis{}, fmt.Errorf("analysis response: %w", err)
	}
	return analysis, nil
}

func parseExamples(raw string) ([]domain.Example, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("examples response: %w", err)
	}
	var examples []domain.Example
	if err := json.Unmarshal([]byte(payload), &examples); err != nil {
		return nil, fmt.Errorf("examples response: %w", err)
	}
	return examples, nil
}

func parseScenes(raw string) ([]domain.Scene, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("script response: %w", err)
	}
	var scenes []domain.Scene
	if err := json.Unmarshal([]byte(payload), &scenes); err != nil {
		return nil, fmt.Errorf("script response: %w", err)
	}
	return scenes, nil
}
