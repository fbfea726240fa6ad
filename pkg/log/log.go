// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/alertmigrate/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 45 // Base width for filename
	ruleWidth  = 70 // Width of the banner rules
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Console lines go to console, structured
// events to zlog.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context. Without one, console output
// is discarded.
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(io.Discard, *zerolog.Ctx(ctx))
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFile formats a file outcome for display
func (l *Logger) formatFile(info status.FileInfo) string {
	var symbol rune
	var symbolColor color.Attribute
	detail := info.Status.String()

	switch info.Status {
	case status.StatusProcessed:
		symbol = '✓'
		symbolColor = color.FgGreen
		parts := []string{fmt.Sprintf("%d calls", info.Rewrites)}
		if info.ImportAdded {
			parts = append(parts, "+import")
		}
		parts = append(parts, humanize.Bytes(uint64(info.Size)))
		detail = fmt.Sprintf("%s (%s)", detail, strings.Join(parts, ", "))
	case status.StatusUnchanged:
		symbol = '-'
		symbolColor = color.FgYellow
	case status.StatusNotFound:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '✗'
		symbolColor = color.FgRed
		if info.Error != nil {
			detail = fmt.Sprintf("%s: %v", status.StatusError, info.Error)
		}
	}

	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, info.Path),
		color.New(symbolColor).Sprint(detail))
}

// 📝 LogFile prints the outcome of one file, followed by its diff when set
func (l *Logger) LogFile(ctx context.Context, info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatFile(info))
	if info.Diff != "" {
		for _, line := range strings.Split(strings.TrimRight(info.Diff, "\n"), "\n") {
			fmt.Fprintf(l.console, "%s%s\n", strings.Repeat(" ", fileIndent*2), colorDiffLine(line))
		}
	}

	event := l.zlog.Info()
	if info.Error != nil {
		event = l.zlog.Error().Err(info.Error)
	}
	event.Str("file", info.Path).
		Str("status", info.Status.String()).
		Int("rewrites", info.Rewrites).
		Bool("import_added", info.ImportAdded).
		Int64("size", info.Size).
		Msg("file processed")
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return color.New(color.FgCyan).Sprint(line)
	case strings.HasPrefix(line, "+"):
		return color.New(color.FgGreen).Sprint(line)
	case strings.HasPrefix(line, "-"):
		return color.New(color.FgRed).Sprint(line)
	default:
		return line
	}
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header prints a banner framed by rules
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rule := color.New(color.Faint).Sprint(strings.Repeat("=", ruleWidth))
	fmt.Fprintf(l.console, "%s\n%s\n%s\n", rule, color.New(color.Bold, color.FgCyan).Sprint(msg), rule)
	l.zlog.Info().Msg(msg)
}

// 📊 Summary prints the run counters
func (l *Logger) Summary(s status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	printer := pterm.Success
	if s.Errors() > 0 {
		printer = pterm.Warning
	}
	rule := color.New(color.Faint).Sprint(strings.Repeat("=", ruleWidth))
	fmt.Fprintf(l.console, "\n%s\n%s\n%s\n", rule, printer.Sprint(s.String()), rule)

	l.zlog.Info().
		Int("processed", s.Processed).
		Int("skipped", s.Skipped()).
		Int("errors", s.Errors()).
		Int("not_found", s.NotFound).
		Int("rewrites", s.Rewrites).
		Msg("migration complete")
}

// 📋 ConfirmReview prints the files that still need manual confirm rewrites
func (l *Logger) ConfirmReview(confirms []status.ConfirmInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(confirms) == 0 {
		return
	}

	fmt.Fprintln(l.console, pterm.Info.Sprint("Note: confirm() replacements require manual intervention"))
	fmt.Fprintln(l.console, "Files with confirm() calls:")

	items := make([]pterm.BulletListItem, 0, len(confirms))
	for _, c := range confirms {
		items = append(items, pterm.BulletListItem{Level: 1, Text: formatConfirm(c), Bullet: "-"})
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		l.zlog.Warn().Err(err).Msg("rendering confirm list")
		for _, item := range items {
			fmt.Fprintf(l.console, "  - %s\n", item.Text)
		}
		return
	}
	fmt.Fprint(l.console, list)

	for _, c := range confirms {
		l.zlog.Debug().Str("file", c.Path).Bool("exists", c.Exists).Ints("lines", c.Lines).Msg("confirm review")
	}
}

func formatConfirm(c status.ConfirmInfo) string {
	switch {
	case c.Error != nil:
		return fmt.Sprintf("%s (error: %v)", c.Path, c.Error)
	case !c.Exists:
		return fmt.Sprintf("%s (not found)", c.Path)
	case len(c.Lines) == 0:
		return fmt.Sprintf("%s (no confirm calls left)", c.Path)
	}
	lines := make([]string, len(c.Lines))
	for i, n := range c.Lines {
		lines[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s (%d calls, lines %s)", c.Path, len(c.Lines), strings.Join(lines, ", "))
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
