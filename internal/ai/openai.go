package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIProvider talks to an OpenAI-compatible chat completions endpoint.
type OpenAIProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOpenAIProvider(apiKey, baseURL, model string, timeoutSeconds int) *OpenAIProvider {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 20
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-3.5-turbo"
	}
	return &OpenAIProvider{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (p *OpenAIProvider) ChatResponse(ctx context.Context, systemMessage, userMessage string, history []ChatTurn) (string, error) {
	messages := make([]openAIMessage, 0, len(history)+2)
	if strings.TrimSpace(systemMessage) != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: systemMessage})
	}
	for _, turn := range history {
		role := strings.ToLower(strings.TrimSpace(turn.Role))
		if role != "user" && role != "assistant" {
			continue
		}
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		messages = append(messages, openAIMessage{Role: role, Content: content})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: userMessage})

	return p.chatCompletion(ctx, messages, 500)
}

func (p *OpenAIProvider) Completion(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return p.chatCompletion(ctx, []openAIMessage{{Role: "user", Content: prompt}}, maxTokens)
}

func (p *OpenAIProvider) chatCompletion(ctx context.Context, messages []openAIMessage, maxTokens int) (string, error) {
	if p.apiKey == "" {
		return "", errors.New("OPENAI_API_KEY is not configured")
	}
	if p.baseURL == "" {
		return "", errors.New("OPENAI_BASE_URL is not configured")
	}

	payload := map[string]any{
		"model":             p.model,
		"messages":          messages,
		"temperature":       0.7,
		"max_tokens":        maxTokens,
		"top_p":             1.0,
		"frequency_penalty": 0.0,
		"presence_penalty":  0.0,
	}
	bodyRaw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.baseURL+"/chat/completions",
		bytes.NewReader(bodyRaw),
	)
	if err != nil {
		return "", err
	}
	request.Header.Set("Authorization", "Bearer "+p.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := p.httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("openai chat error (%d): %s", response.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return "", fmt.Errorf("openai response was not valid JSON: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("openai response contained no choices")
	}

	answer := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if answer == "" {
		return "", errors.New("openai response answer is empty")
	}
	return answer, nil
}
