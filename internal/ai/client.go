// Package ai talks to a hosted generative-text provider and wraps it in a
// fail-soft gateway: provider failures never propagate to callers, they map
// to safe default values.
package ai

import (
	"context"
	"strings"
)

// ChatTurn is one prior turn of a conversation. Role is "user" or
// "assistant"; order is chronological and preserved when forwarded.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a single hosted generative-text backend.
type Provider interface {
	ChatResponse(ctx context.Context, systemMessage, userMessage string, history []ChatTurn) (string, error)
	Completion(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// MockProvider serves keyless local runs and tests with canned answers.
type MockProvider struct{}

func (MockProvider) ChatResponse(_ context.Context, _ string, userMessage string, _ []ChatTurn) (string, error) {
	message := strings.TrimSpace(userMessage)
	if message == "" {
		message = "No message provided."
	}
	lowered := strings.ToLower(message)

	answer := "Mock response: " + message
	if strings.Contains(lowered, "cramp") || strings.Contains(lowered, "spotting") || strings.Contains(lowered, "pain") {
		answer = strings.Join([]string{
			"I'm sorry you're dealing with that. Mild symptoms are common across the cycle,",
			"but please track when they started and how intense they feel.",
			"I'm not a medical professional, so if it persists or worsens, check in with your care team.",
		}, " ")
	}
	return answer, nil
}

func (MockProvider) Completion(_ context.Context, prompt string, _ int) (string, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		trimmed = "No prompt provided."
	}
	if runes := []rune(trimmed); len(runes) > 120 {
		trimmed = string(runes[:120])
	}
	return "Mock completion for: " + trimmed, nil
}
