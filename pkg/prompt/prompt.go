// Package prompt builds the single text prompt sent to the generation
// service from the assembled arguments and piped input.
package prompt

import (
	"strings"

	"github.com/germanamz/llmpipe/pkg/args"
)

const (
	systemLabel = "System: "
	userLabel   = "User: "
	inputLabel  = ". Input: "
)

// Builder renders prompts. DefaultSystem is used whenever the arguments carry
// no system text.
type Builder struct {
	DefaultSystem string
}

// System returns the effective system text for a.
func (b Builder) System(a args.Arguments) string {
	if a.System != "" {
		return a.System
	}
	return b.DefaultSystem
}

// Build returns the prompt for a, with input appended to the user segment
// when it is not empty.
func (b Builder) Build(a args.Arguments, input string) string {
	var sb strings.Builder

	sb.WriteString(systemLabel)
	sb.WriteString(b.System(a))
	sb.WriteString(".\n")
	sb.WriteString(userLabel)
	sb.WriteString(a.User)

	if input != "" {
		sb.WriteString(inputLabel)
		sb.WriteString(input)
	}

	return sb.String()
}
