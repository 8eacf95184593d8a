package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/llmpipe/internal/config"
	"github.com/germanamz/llmpipe/internal/tty"
	"github.com/germanamz/llmpipe/pkg/args"
	"github.com/germanamz/llmpipe/pkg/dispatch"
	"github.com/germanamz/llmpipe/pkg/prompt"
)

const emptyUserMessage = "user argument cannot be empty, please provide a valid input"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, dispatch.OllamaFactory(nil))

	cancel()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, argv []string, stdin *os.File, stdout, stderr io.Writer, newGen dispatch.Factory) int {
	st := newStyles(stderr)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, st.renderError(err.Error()))
		return 1
	}

	a := args.Parse(argv)
	log := newLogger(stderr, a.Verbose)

	if a.User == "" {
		fmt.Fprintln(stderr, st.renderNotice(emptyUserMessage))
		return 0
	}

	input, err := tty.ReadInput(stdin)
	if err != nil {
		log.DebugContext(ctx, "stdin read stopped early", "error", err, "input_bytes", len(input))
	}

	log.DebugContext(ctx, "arguments assembled",
		"user_bytes", len(a.User),
		"system_bytes", len(a.System),
		"input_bytes", len(input),
	)

	b := prompt.Builder{DefaultSystem: cfg.DefaultSystem()}
	target := dispatch.Resolve(cfg, a)

	d := dispatch.Dispatcher{New: newGen, Logger: log}

	switch res := d.Send(ctx, target, b.Build(a, input)).(type) {
	case dispatch.Error:
		fmt.Fprintln(stderr, st.renderError(res.String()))
		return 1
	default:
		if _, err := io.WriteString(stdout, res.String()); err != nil {
			log.ErrorContext(ctx, "write output", "error", err)
			return 1
		}
		return 0
	}
}

// newLogger returns a text logger on w. Debug records are emitted only when
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
