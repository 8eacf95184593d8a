// Package dispatch resolves the generation target and sends a prompt to it.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/germanamz/llmpipe/internal/config"
	"github.com/germanamz/llmpipe/pkg/args"
	"github.com/germanamz/llmpipe/pkg/modeladapter/usage"
	"github.com/germanamz/llmpipe/pkg/providers/ollama"
)

// Generator sends a prompt to a model and returns the generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Factory creates a Generator bound to a service base URL and model.
type Factory func(baseURL, model string) Generator

// OllamaFactory returns a Factory producing Ollama adapters that share client.
// A nil client uses http.DefaultClient.
func OllamaFactory(client *http.Client) Factory {
	return func(baseURL, model string) Generator {
		return ollama.New(baseURL, model, client)
	}
}

// Target is the resolved model and service endpoint.
type Target struct {
	Model string
	URL   string
	Port  uint16
}

// BaseURL joins the service URL and port as "<url>:<port>".
func (t Target) BaseURL() string {
	return Endpoint(t.URL, t.Port)
}

// Endpoint joins url and port, dropping any trailing slash from url.
func Endpoint(url string, port uint16) string {
	return fmt.Sprintf("%s:%d", strings.TrimRight(url, "/"), port)
}

// Resolve fills every field the arguments leave unset, or set to an empty
// value, from the defaults.
func Resolve(cfg config.Config, a args.Arguments) Target {
	t := Target{Model: cfg.Model, URL: cfg.URL, Port: cfg.Port}

	if a.Model != nil && *a.Model != "" {
		t.Model = *a.Model
	}
	if a.URL != nil && *a.URL != "" {
		t.URL = *a.URL
	}
	if a.Port != nil {
		t.Port = *a.Port
	}

	return t
}

// Dispatcher sends one prompt per call.
type Dispatcher struct {
	New    Factory
	Logger *slog.Logger
}

// usageReporter is implemented by generators that track token usage.
type usageReporter interface {
	UsageTracker() *usage.Tracker
}

// Send generates a reply to prompt from the target. Failures are returned as
// an Error that names the underlying cause.
func (d Dispatcher) Send(ctx context.Context, t Target, prompt string) PromptResponse {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	base := t.BaseURL()
	log.DebugContext(ctx, "dispatching prompt",
		"url", base,
		"model", t.Model,
		"prompt_bytes", len(prompt),
		"estimated_tokens", usage.Estimate(prompt),
	)

	gen := d.New(base, t.Model)

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		log.DebugContext(ctx, "generation failed", "error", err)
		return Error(fmt.Sprintf(
			"error prompting model %s: %v (is the generation service running at %s?)",
			t.Model, err, base,
		))
	}

	if r, ok := gen.(usageReporter); ok {
		if tc, ok := r.UsageTracker().Last(); ok {
			log.DebugContext(ctx, "generation finished",
				"input_tokens", tc.InputTokens,
				"output_tokens", tc.OutputTokens,
				"duration", tc.Duration,
			)
		}
	}

	return Response(text)
}
