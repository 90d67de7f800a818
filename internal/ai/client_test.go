package ai

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMockProviderChatResponse(t *testing.T) {
	t.Parallel()

	var provider MockProvider

	answer, err := provider.ChatResponse(context.Background(), "system", "I have some cramping today", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(answer, "care team") {
		t.Fatalf("expected symptom guidance, got %q", answer)
	}

	answer, err = provider.ChatResponse(context.Background(), "system", "hello there", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(answer, "Mock response: ") {
		t.Fatalf("expected echo, got %q", answer)
	}
}

func TestMockProviderCompletionTruncatesOnRunes(t *testing.T) {
	t.Parallel()

	var provider MockProvider

	prompt := strings.Repeat("é", 200)
	answer, err := provider.Completion(context.Background(), prompt, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(answer) {
		t.Fatalf("answer is not valid UTF-8: %q", answer)
	}
	echoed := strings.TrimPrefix(answer, "Mock completion for: ")
	if got := utf8.RuneCountInString(echoed); got != 120 {
		t.Fatalf("expected 120 runes echoed, got %d", got)
	}
	if strings.ContainsRune(echoed, utf8.RuneError) {
		t.Fatalf("echo contains a split rune: %q", echoed)
	}
}
