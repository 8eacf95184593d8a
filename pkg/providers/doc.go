// Package providers groups the generation service adapters.
//
// Each sub-package embeds [github.com/germanamz/llmpipe/pkg/modeladapter.ModelAdapter]
// and speaks one service's wire format:
//   - [github.com/germanamz/llmpipe/pkg/providers/ollama] for the Ollama generate API
package providers
