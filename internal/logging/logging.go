// Package logging builds the zap loggers used by the commands.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/formcontrols/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
	Development bool
}

// New constructs a zap logger using the provided options. Output paths
// accept "stdout", "stderr" or file paths; files are appended to.
func New(opts Options) (*zap.Logger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console", "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	paths := cleanPaths(opts.OutputPaths)
	if len(paths) == 0 {
		paths = []string{"stderr"}
	}
	for _, p := range paths {
		if err := ensureLogDir(p); err != nil {
			return nil, fmt.Errorf("ensure log dir: %w", err)
		}
	}
	sink, _, err := zap.Open(paths...)
	if err != nil {
		return nil, fmt.Errorf("open log outputs: %w", err)
	}

	level := zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	zopts := []zap.Option{zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if opts.Development || level.Level() <= zapcore.DebugLevel {
		zopts = append(zopts, zap.AddCaller())
	}
	return zap.New(zapcore.NewCore(enc, sink, level), zopts...), nil
}

// NewFromConfig builds a logger from the [log] section. With no log.path the
// fallback outputs are used; with neither, logging is disabled.
func NewFromConfig(cfg config.LogConfig, fallback ...string) (*zap.Logger, error) {
	outputs := cleanPaths([]string{cfg.Path})
	if len(outputs) == 0 {
		outputs = cleanPaths(fallback)
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}
	return New(Options{Level: cfg.Level, Format: cfg.Format, OutputPaths: outputs})
}

// ParseLevel maps level names to zap levels. Unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error", "dpanic", "panic", "fatal": // map to error semantics
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func cleanPaths(paths []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func ensureLogDir(path string) error {
	if path == "stdout" || path == "stderr" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
