// Package modeladapter provides the embeddable HTTP base for generation
// service adapters.
//
// It contains:
//   - [ModelAdapter], with request building and a JSON POST helper
//   - [StatusError], returned for non-2xx replies
//   - [github.com/germanamz/llmpipe/pkg/modeladapter/usage], the token count tracker
//
// This package contains no service-specific code. Concrete adapters live in
// packages under pkg/providers.
package modeladapter
