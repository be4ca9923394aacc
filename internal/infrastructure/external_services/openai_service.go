package external_services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

const (
	chatCompletionsURL = "https://api.openai.com/v1/chat/completions"
	systemPrompt       = "You are an expert content creator and social media marketer."
)

// OpenAIService calls the chat-completions endpoint. Callers are expected to
// absorb failures into fallback content; this client only reports them.
type OpenAIService struct {
	apiKey      string
	model       string
	temperature float64
	client      *http.Client
}

var _ usecasecontract.IAIService = (*OpenAIService)(nil)

func NewOpenAIService(apiKey, model string, temperature float64) *OpenAIService {
	return &OpenAIService{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (s *OpenAIService) Configured() bool {
	return s.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateContent sends the prompt with the fixed system prompt and returns
// the text of the first completion choice.
func (s *OpenAIService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("no AI service API key configured")
	}
	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: s.temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, string(raw))
	}
	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
