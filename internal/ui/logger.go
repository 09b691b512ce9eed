package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pfassina/postindex/internal/theme"
)

// Styles builds log styles from a theme palette.
func Styles(th theme.Theme) *log.Styles {
	s := log.DefaultStyles()

	level := func(l log.Level, c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(strings.ToUpper(l.String())).
			Bold(true).
			MaxWidth(4).
			Foreground(c)
	}
	s.Levels[log.DebugLevel] = level(log.DebugLevel, th.Debug)
	s.Levels[log.InfoLevel] = level(log.InfoLevel, th.Info)
	s.Levels[log.WarnLevel] = level(log.WarnLevel, th.Warn)
	s.Levels[log.ErrorLevel] = level(log.ErrorLevel, th.Error)
	s.Levels[log.FatalLevel] = level(log.FatalLevel, th.Error)

	s.Key = lipgloss.NewStyle().Foreground(th.Subtle)
	s.Value = lipgloss.NewStyle().Foreground(th.Text)
	s.Separator = lipgloss.NewStyle().Foreground(th.Dim)
	s.Keys["path"] = lipgloss.NewStyle().Foreground(th.Accent)
	s.Keys["err"] = lipgloss.NewStyle().Foreground(th.Error)
	return s
}

// NewLogger returns a themed logger writing to w.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "postindex",
	})
	logger.SetStyles(Styles(theme.DefaultTheme()))
	return logger
}
