package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jiwoohan/record-analyzer/internal/config"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"google.golang.org/genai"
)

// Evaluator performs exactly one request/response exchange with an LLM
// backend and produces a validated evaluation result.
type Evaluator interface {
	Evaluate(ctx context.Context, reportText string) (*model.EvaluationResult, error)
}

type GeminiService struct {
	Client *genai.Client
	Model  string
	schema *genai.Schema
}

// NewGeminiService builds the Gemini-backed evaluator. A missing API key is
// a construction error so a misconfigured deployment fails at startup rather
// than on the first analysis.
func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiService{
		Client: client,
		Model:  modelName,
		schema: BuildSchema(),
	}, nil
}

// Evaluate submits the record text with the rubric-derived schema and parses
// the structured response. A single attempt: no retries, no backoff, no
// streaming. Timeouts are the caller's concern via ctx.
func (s *GeminiService) Evaluate(ctx context.Context, reportText string) (*model.EvaluationResult, error) {
	if strings.TrimSpace(reportText) == "" {
		return nil, model.ErrEmptyReport
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   s.schema,
	}

	result, err := s.Client.Models.GenerateContent(
		ctx,
		s.Model,
		genai.Text(BuildPrompt(reportText)),
		genConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidStructure, err)
	}

	return ParseEvaluation(result.Text())
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
