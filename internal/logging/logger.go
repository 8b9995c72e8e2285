// Package logging builds the structured loggers used by the CLI and sessions.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Output formats accepted in config and on the command line.
const (
	FormatAuto   = "auto"
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Options configures a logger.
type Options struct {
	Level     string // debug, info, warn, error
	Format    string // auto, text, logfmt, json
	Prefix    string
	Timestamp bool
}

// New creates a logger writing to w.
// With FormatAuto, terminals get the styled text formatter and anything
// else gets logfmt.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	formatter, err := parseFormat(opts.Format, w)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Timestamp,
		Formatter:       formatter,
	})
	if formatter == log.TextFormatter {
		logger.SetStyles(levelStyles())
	}
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a level name to a log level. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// ValidFormat reports whether s names a known output format.
func ValidFormat(s string) bool {
	switch strings.ToLower(s) {
	case "", FormatAuto, FormatText, FormatLogfmt, FormatJSON:
		return true
	}
	return false
}

func parseFormat(s string, w io.Writer) (log.Formatter, error) {
	switch strings.ToLower(s) {
	case "", FormatAuto:
		if isTerminal(w) {
			return log.TextFormatter, nil
		}
		return log.LogfmtFormatter, nil
	case FormatText:
		return log.TextFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("invalid log format %q", s)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// levelStyles colours level labels to match the board palette.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBU").
		Foreground(lipgloss.Color("63"))
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("86"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERRO").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	styles.Keys["session"] = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return styles
}
