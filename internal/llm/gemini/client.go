package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/util"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Generate sends the prompt and returns the model's raw textual reply.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini generate: nil response")
	}

	logUsage(c.model, util.HashPrompt(prompt), resp)

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini generate: empty reply")
	}
	return text, nil
}

func logUsage(model, promptHash string, resp *genai.GenerateContentResponse) {
	if resp.UsageMetadata == nil {
		log.Printf("llm response model=%s prompt_hash=%s", model, promptHash)
		return
	}
	log.Printf("llm response model=%s prompt_hash=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model,
		promptHash,
		resp.UsageMetadata.PromptTokenCount,
		resp.UsageMetadata.CandidatesTokenCount,
		resp.UsageMetadata.TotalTokenCount,
	)
}

var _ llm.Client = (*Client)(nil)
