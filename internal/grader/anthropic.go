package grader

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

const anthropicMaxTokens = 8192

// AnthropicClient extracts and grades through the Anthropic Messages API.
type AnthropicClient struct {
	client       anthropic.Client
	model        string
	extractModel string
}

// Compile-time checks: *AnthropicClient is both an Extractor and a Grader.
var (
	_ Extractor = (*AnthropicClient)(nil)
	_ Grader    = (*AnthropicClient)(nil)
)

// NewAnthropicClient creates a client for the given models. opts are passed
// to the SDK after the API key, so they may override it (tests point
// option.WithBaseURL at a fake server).
func NewAnthropicClient(apiKey, model, extractModel string, opts ...option.RequestOption) *AnthropicClient {
	if extractModel == "" {
		extractModel = model
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicClient{
		client:       anthropic.NewClient(opts...),
		model:        model,
		extractModel: extractModel,
	}
}

func (c *AnthropicClient) GradeCode(ctx context.Context, problem questionbank.Problem, code string) (*Result, error) {
	prompt := buildGradePrompt(problem, code)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := c.send(ctx, c.model, anthropic.NewTextBlock(prompt))
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		result, err := parseResult(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return result, nil
	}

	return nil, &GradeError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

func (c *AnthropicClient) ExtractProblems(ctx context.Context, pdf []byte) ([]questionbank.Problem, error) {
	document := anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
		Data: base64.StdEncoding.EncodeToString(pdf),
	})

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := c.send(ctx, c.extractModel, document, anthropic.NewTextBlock(buildExtractPrompt()))
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		problems, err := parseProblems(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return problems, nil
	}

	return nil, &ExtractError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// send issues one Messages request and concatenates the text blocks of
// the reply.
func (c *AnthropicClient) send(ctx context.Context, model string, blocks ...anthropic.ContentBlockParamUnion) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
