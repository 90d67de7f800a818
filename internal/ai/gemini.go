package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-pro"

// Gemini does not take a dedicated system role in multi-turn content, so the
// system message is delivered as a priming exchange: one user turn carrying
// the context, answered by this fixed acknowledgement.
const personaAcknowledgement = "I understand. I'll act as Anaira, an empathetic AI companion for FertilityNest."

// GeminiProvider talks to the Google Gemini API through the genai SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini API key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// buildGeminiContents assembles the multi-turn content list: the priming
// exchange when a system message is present, then the non-empty history
// turns, then the current user message.
func buildGeminiContents(systemMessage, userMessage string, history []ChatTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+3)
	if strings.TrimSpace(systemMessage) != "" {
		contents = append(contents,
			genai.NewContentFromText(systemMessage, genai.RoleUser),
			genai.NewContentFromText(personaAcknowledgement, genai.RoleModel),
		)
	}
	for _, turn := range history {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		var role genai.Role = genai.RoleUser
		if strings.EqualFold(strings.TrimSpace(turn.Role), "assistant") {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(content, role))
	}
	return append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))
}

func (p *GeminiProvider) ChatResponse(ctx context.Context, systemMessage, userMessage string, history []ChatTurn) (string, error) {
	contents := buildGeminiContents(systemMessage, userMessage, history)

	response, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini chat request failed: %w", err)
	}
	answer := strings.TrimSpace(response.Text())
	if answer == "" {
		return "", errors.New("gemini response contained no text")
	}
	return answer, nil
}

func (p *GeminiProvider) Completion(ctx context.Context, prompt string, maxTokens int) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](1.0),
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	response, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini completion request failed: %w", err)
	}
	answer := strings.TrimSpace(response.Text())
	if answer == "" {
		return "", errors.New("gemini response contained no text")
	}
	return answer, nil
}
