package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"

	"go.trai.ch/cask/internal/ui/detector"
	"go.trai.ch/cask/internal/ui/output"
	"go.trai.ch/cask/internal/ui/style"
)

// PrettyHandler is a slog.Handler that renders human-friendly, colorized
// log lines. Colors degrade automatically on dumb terminals and under
// NO_COLOR.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{out: newOutput(w)}
	if opts != nil {
		h.level = opts.Level
	}
	return h
}

// newOutput picks the color pipeline for the environment: full terminal
// detection on interactive sessions, plain ANSI in CI and pipes. CASK_OUTPUT
// overrides the detection ("pretty" or "plain").
func newOutput(w io.Writer) *termenv.Output {
	mode := detector.ResolveMode(detector.DetectEnvironment(), os.Getenv("CASK_OUTPUT"))
	if mode == detector.ModePlain {
		return output.NewPlain(w)
	}
	return output.New(w)
}

// Enabled reports whether records at the given level are logged.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.level != nil {
		minLevel = h.level.Level()
	}
	return level >= minLevel
}

// Handle renders a single record as one line: a level-styled message
// followed by space-separated key=value attributes.
//
//nolint:gocritic // slog.Handler requires a Record value receiver.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var styled termenv.Style
	switch r.Level {
	case slog.LevelError:
		styled = h.out.String(style.Cross + " " + r.Message).Foreground(h.out.Color(string(style.Red)))
	case slog.LevelWarn:
		styled = h.out.String(style.Warning + " " + r.Message).Foreground(h.out.Color(string(style.Yellow)))
	case slog.LevelDebug:
		styled = h.out.String(r.Message).Foreground(h.out.Color(string(style.Slate))).Faint()
	default:
		styled = h.out.String(r.Message).Foreground(h.out.Color(string(style.Slate)))
	}

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, formatAttr("", attr))
	}

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(prefix, attr))
		return true
	})

	line := styled.String()
	if len(parts) > 0 {
		line += " " + strings.Join(parts, " ")
	}

	_, err := fmt.Fprintln(h.out, line)
	return err
}

// WithAttrs returns a handler that includes the given attributes on every
// record. Attribute keys are qualified with the open groups at attach time.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}

	next := h.clone()
	for _, attr := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: prefix + attr.Key, Value: attr.Value})
	}
	return next
}

// WithGroup returns a handler that qualifies subsequent attribute keys with
// name. An empty name leaves the handler unchanged.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  slices.Clip(h.attrs),
		groups: slices.Clip(h.groups),
	}
}

func formatAttr(prefix string, attr slog.Attr) string {
	return prefix + attr.Key + "=" + attr.Value.String()
}
