package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jiwoohan/record-analyzer/internal/config"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/tidwall/gjson"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the alternative Evaluator backend, speaking the
// chat-completions API. OpenRouter has no structured-output schema
// parameter, so the rubric-derived JSON shape is serialized into the system
// prompt (BuildSchemaPrompt) and the response goes through the same
// ParseEvaluation validation as the Gemini backend.
type OpenRouterService struct {
	client       *resty.Client
	Model        string
	systemPrompt string
}

func NewOpenRouterService(cfg *config.OpenRouterConfig) (*OpenRouterService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = "openai/gpt-4o-mini"
	}
	client := resty.New().
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &OpenRouterService{
		client:       client,
		Model:        modelName,
		systemPrompt: EvaluationPrompt + "\n" + BuildSchemaPrompt(),
	}, nil
}

// Evaluate performs the single chat-completions call. No retries, no
// backoff; the first response is the only response.
func (s *OpenRouterService) Evaluate(ctx context.Context, reportText string) (*model.EvaluationResult, error) {
	if strings.TrimSpace(reportText) == "" {
		return nil, model.ErrEmptyReport
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"model":           s.Model,
			"temperature":     0.1,
			"response_format": map[string]string{"type": "json_object"},
			"messages": []map[string]string{
				{"role": "system", "content": s.systemPrompt},
				{"role": "user", "content": "--- Student Report ---\n" + reportText},
			},
		}).
		Post(openRouterEndpoint)
	if err != nil {
		return nil, fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openrouter request failed: status %s", resp.Status())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return nil, fmt.Errorf("%w: no content in response", model.ErrInvalidStructure)
	}
	return ParseEvaluation(text)
}
