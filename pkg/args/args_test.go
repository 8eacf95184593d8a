package args_test

import (
	"testing"

	"github.com/germanamz/llmpipe/pkg/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   args.Arguments
	}{
		{
			name:   "empty",
			tokens: nil,
			want:   args.Arguments{},
		},
		{
			name:   "user flag with words",
			tokens: []string{"--user", "a", "b", "c"},
			want:   args.Arguments{User: "a b c"},
		},
		{
			name:   "unflagged tokens default to user",
			tokens: []string{"translate", "to", "french"},
			want:   args.Arguments{User: "translate to french"},
		},
		{
			name:   "system then user",
			tokens: []string{"--system", "be", "terse", "--user", "hi", "there"},
			want:   args.Arguments{User: "hi there", System: "be terse"},
		},
		{
			name:   "system mode persists across scalar flags",
			tokens: []string{"--system", "be", "--model", "llama3", "terse"},
			want:   args.Arguments{System: "be terse", Model: ptr("llama3")},
		},
		{
			name:   "user text before system flag",
			tokens: []string{"hello", "--system", "rules"},
			want:   args.Arguments{User: "hello", System: "rules"},
		},
		{
			name:   "value after system is data even if it is a flag",
			tokens: []string{"--system", "--user", "x"},
			want:   args.Arguments{System: "--user x"},
		},
		{
			name:   "value after user is data even if it is a flag",
			tokens: []string{"--user", "--port", "1"},
			want:   args.Arguments{User: "--port 1"},
		},
		{
			name:   "scalar overrides",
			tokens: []string{"--model", "llama3", "--url", "http://gpu", "--port", "8080", "go"},
			want: args.Arguments{
				User:  "go",
				Model: ptr("llama3"),
				URL:   ptr("http://gpu"),
				Port:  ptr(uint16(8080)),
			},
		},
		{
			name:   "model without value",
			tokens: []string{"hi", "--model"},
			want:   args.Arguments{User: "hi", Model: ptr("")},
		},
		{
			name:   "url without value",
			tokens: []string{"hi", "--url"},
			want:   args.Arguments{User: "hi", URL: ptr("")},
		},
		{
			name:   "unparseable port",
			tokens: []string{"--port", "abc", "hi"},
			want:   args.Arguments{User: "hi"},
		},
		{
			name:   "port out of range",
			tokens: []string{"--port", "70000", "hi"},
			want:   args.Arguments{User: "hi"},
		},
		{
			name:   "later bad port clears earlier port",
			tokens: []string{"--port", "1", "--port", "x", "hi"},
			want:   args.Arguments{User: "hi"},
		},
		{
			name:   "port without value",
			tokens: []string{"hi", "--port"},
			want:   args.Arguments{User: "hi"},
		},
		{
			name:   "user flag without value",
			tokens: []string{"--user"},
			want:   args.Arguments{},
		},
		{
			name:   "verbose does not switch mode",
			tokens: []string{"--system", "a", "--verbose", "b"},
			want:   args.Arguments{System: "a b", Verbose: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, args.Parse(tt.tokens))
		})
	}
}

func TestParse_DoesNotRetainInput(t *testing.T) {
	tokens := []string{"--model", "m", "hi"}
	a := args.Parse(tokens)
	tokens[1] = "changed"

	require.NotNil(t, a.Model)
	assert.Equal(t, "m", *a.Model)
}

func TestIsFlag(t *testing.T) {
	for _, f := range []args.Flag{
		args.FlagSystem, args.FlagUser, args.FlagModel, args.FlagURL, args.FlagPort, args.FlagVerbose,
	} {
		assert.True(t, args.IsFlag(string(f)), f)
	}

	assert.False(t, args.IsFlag("--help"))
	assert.False(t, args.IsFlag("user"))
	assert.False(t, args.IsFlag(""))
}
