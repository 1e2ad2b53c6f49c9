package grader

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

// OpenAIClient extracts and grades by calling an OpenAI-compatible LLM
// endpoint (Ollama, LM Studio, vLLM, etc.).
type OpenAIClient struct {
	url          string       // e.g. "http://localhost:1234"
	model        string       // grading model, e.g. "qwen3-8b"
	extractModel string       // model that reads PDFs
	client       *http.Client // reused across calls
}

// Compile-time checks: *OpenAIClient is both an Extractor and a Grader.
var (
	_ Extractor = (*OpenAIClient)(nil)
	_ Grader    = (*OpenAIClient)(nil)
)

// NewOpenAIClient creates a client for the given endpoint. An empty
// extractModel reuses model.
func NewOpenAIClient(url, model, extractModel string, timeout time.Duration) *OpenAIClient {
	if extractModel == "" {
		extractModel = model
	}
	return &OpenAIClient{
		url:          url,
		model:        model,
		extractModel: extractModel,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// maxRetries bounds attempts per call; small models sometimes need a
// second try to produce parsable JSON.
const maxRetries = 2

// GradeCode sends the submission to the LLM and parses its verdict.
func (c *OpenAIClient) GradeCode(ctx context.Context, problem questionbank.Problem, code string) (*Result, error) {
	prompt := buildGradePrompt(problem, code)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := c.callLLM(ctx, c.model, prompt)
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

// ExtractProblems sends the PDF as a file content part together with the
// extraction prompt.
func (c *OpenAIClient) ExtractProblems(ctx context.Context, pdf []byte) ([]questionbank.Problem, error) {
	content := []contentPart{
		{
			Type: "file",
			File: &filePart{
				Filename: "problems.pdf",
				FileData: "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdf),
			},
		},
		{Type: "text", Text: buildExtractPrompt()},
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := c.callLLM(ctx, c.extractModel, content)
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

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

// llmMessage content is either a string or a []contentPart.
type llmMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type string    `json:"type"`
	Text string    `json:"text,omitempty"`
	File *filePart `json:"file,omitempty"`
}

type filePart struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (c *OpenAIClient) callLLM(ctx context.Context, model string, content any) (string, error) {
	reqBody := llmRequest{
		Model: model,
		Messages: []llmMessage{
			{Role: "user", Content: content},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	return llmResp.Choices[0].Message.Content, nil
}
