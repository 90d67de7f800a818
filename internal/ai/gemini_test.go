package ai

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func contentText(t *testing.T, content *genai.Content) string {
	t.Helper()
	if content == nil || len(content.Parts) == 0 {
		t.Fatal("content has no parts")
	}
	return content.Parts[0].Text
}

func TestBuildGeminiContents(t *testing.T) {
	t.Parallel()

	contents := buildGeminiContents(
		"You are Anaira.",
		"How are you?",
		[]ChatTurn{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
			{Role: "assistant", Content: "   "},
		},
	)

	if len(contents) != 5 {
		t.Fatalf("expected 5 contents, got %d", len(contents))
	}

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleUser, genai.RoleModel, genai.RoleUser}
	for i, want := range wantRoles {
		if got := genai.Role(contents[i].Role); got != want {
			t.Fatalf("content %d: expected role %q, got %q", i, want, got)
		}
	}

	if contentText(t, contents[0]) != "You are Anaira." {
		t.Fatalf("unexpected priming text: %q", contentText(t, contents[0]))
	}
	if contentText(t, contents[1]) != personaAcknowledgement {
		t.Fatalf("unexpected acknowledgement: %q", contentText(t, contents[1]))
	}
	if contentText(t, contents[4]) != "How are you?" {
		t.Fatalf("expected current message last, got %q", contentText(t, contents[4]))
	}
}

func TestBuildGeminiContentsNoSystemMessage(t *testing.T) {
	t.Parallel()

	contents := buildGeminiContents("", "hello", nil)

	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	if genai.Role(contents[0].Role) != genai.RoleUser {
		t.Fatalf("expected user role, got %q", contents[0].Role)
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := NewGeminiProvider(context.Background(), "", "gemini-1.5-pro"); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
