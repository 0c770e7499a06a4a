package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type Config struct {
	// Writer receives log records; usually os.Stderr.
	Writer io.Writer
	Debug  bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger. Without Debug, records are dropped so that
// stderr only carries the command's own diagnostics.
func Setup(cfg Config) (func() error, error) {
	if cfg.Writer == nil {
		setDiscard()
		return nil, errors.New("logger: nil writer")
	}

	if !cfg.Debug {
		setDiscard()
		return func() error { return nil }, nil
	}

	h := tint.NewHandler(cfg.Writer, &tint.Options{
		Level:      slog.LevelDebug,
		AddSource:  true,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(cfg.Writer),
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	cleanup := func() error {
		setDiscard()
		return nil
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
}
