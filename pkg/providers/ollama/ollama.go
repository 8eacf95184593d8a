// Package ollama provides a generation adapter for the Ollama generate API.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/germanamz/llmpipe/pkg/modeladapter"
	"github.com/germanamz/llmpipe/pkg/modeladapter/usage"
)

const generatePath = "/api/generate"

// ErrIncomplete is returned when the service reports "done": false. A reply
// that omits "done" is taken as complete.
var ErrIncomplete = errors.New("generation did not complete")

// Adapter sends single, non-streamed generation requests to an Ollama server.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter for the server at baseURL (e.g.
// "http://localhost:11434") using the given model. A nil client falls back to
// http.DefaultClient.
func New(baseURL, model string, client *http.Client) *Adapter {
	return &Adapter{ModelAdapter: modeladapter.New(baseURL, model, client)}
}

// Generate sends prompt to the configured model and returns the generated
// text.
func (a *Adapter) Generate(ctx context.Context, prompt string) (string, error) {
	req := apiRequest{
		Model:  a.Name,
		Prompt: prompt,
		Stream: false,
	}

	var resp apiResponse
	if err := a.PostJSON(ctx, generatePath, req, &resp); err != nil {
		return "", fmt.Errorf("ollama: %w", err)
	}

	if resp.Error != "" {
		return "", fmt.Errorf("ollama: %s", resp.Error)
	}

	if resp.Done != nil && !*resp.Done {
		return "", fmt.Errorf("ollama: %w", ErrIncomplete)
	}

	a.Usage.Add(usage.TokenCount{
		InputTokens:  resp.PromptEvalCount,
		OutputTokens: resp.EvalCount,
		Duration:     time.Duration(resp.TotalDuration),
	})

	return resp.Response, nil
}

// --- request types ---

type apiRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// --- response types ---

type apiResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            *bool  `json:"done"`
	Error           string `json:"error,omitempty"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	TotalDuration   int64  `json:"total_duration"`
}
