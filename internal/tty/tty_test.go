package tty

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single line no newline", "hello", "hello"},
		{"single line with newline", "hello\n", "hello"},
		{"multiple lines", "a\nb\nc\n", "a\nb\nc"},
		{"crlf endings", "a\r\nb\r\n", "a\nb"},
		{"blank lines kept", "a\n\nb", "a\n\nb"},
		{"only newline", "\n", ""},
		{"invalid utf8 line becomes empty", "a\n\xff\xfe\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLines_LongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)

	got, err := ReadLines(strings.NewReader(long + "\nend\n"))
	require.NoError(t, err)
	assert.Equal(t, long+"\nend", got)
}

type failingReader struct {
	data string
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errors.New("device gone")
	}
	r.done = true
	return copy(p, r.data), nil
}

func TestReadLines_StopsOnError(t *testing.T) {
	r := &failingReader{data: "first\nsecond\npartial"}

	got, err := ReadLines(r)
	assert.EqualError(t, err, "device gone")
	assert.Equal(t, "first\nsecond", got)
}

func TestReadInput_PipedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, IsTerminal(f))

	got, err := ReadInput(f)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestReadInput_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = io.WriteString(w, "hello")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, err := ReadInput(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
