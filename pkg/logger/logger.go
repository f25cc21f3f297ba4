package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	debugColor     = color.New(color.FgHiBlack)
	infoColor      = color.New(color.FgHiBlack)
	warnColor      = color.New(color.FgHiYellow)
	errorColor     = color.New(color.FgHiRed)
	componentColor = color.New(color.FgHiMagenta)
	attrColor      = color.New(color.FgCyan)
)

// Init installs the console handler as the slog default.
func Init(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(NewHandler(w, &HandlerOptions{Level: level}))
	slog.SetDefault(l)
	return l
}

// ParseLevel maps debug/info/warn/error to a level, falling back to def.
func ParseLevel(s string, def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}

type HandlerOptions struct {
	Level slog.Leveler
}

// Handler writes "15:04:05 [LEVEL] [COMPONENT] message key=value" lines.
// The "component" attribute becomes the tag instead of a key=value pair.
type Handler struct {
	w     io.Writer
	opts  *HandlerOptions
	attrs []slog.Attr
	mu    *sync.Mutex
}

func NewHandler(w io.Writer, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return &Handler{w: w, opts: opts, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	levelStr, levelColor := levelTag(r.Level)

	component := ""
	var rest []string
	collect := func(a slog.Attr) bool {
		if a.Key == "component" {
			component = strings.ToUpper(a.Value.String())
			return true
		}
		rest = append(rest, fmt.Sprintf("%s=%v", a.Key, a.Value.Any()))
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	var sb strings.Builder
	sb.WriteString(r.Time.Format(time.TimeOnly))
	sb.WriteByte(' ')
	sb.WriteString(levelColor.Sprintf("[%s]", levelStr))
	if component != "" {
		sb.WriteByte(' ')
		sb.WriteString(componentColor.Sprintf("[%s]", component))
	}
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	if len(rest) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(attrColor.Sprint(strings.Join(rest, " ")))
	}
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{w: h.w, opts: h.opts, attrs: merged, mu: h.mu}
}

// Groups are flattened; the console has no use for nesting.
func (h *Handler) WithGroup(name string) slog.Handler { return h }

func levelTag(level slog.Level) (string, *color.Color) {
	switch {
	case level >= slog.LevelError:
		return "ERROR", errorColor
	case level >= slog.LevelWarn:
		return "WARN", warnColor
	case level >= slog.LevelInfo:
		return "INFO", infoColor
	default:
		return "DEBUG", debugColor
	}
}
