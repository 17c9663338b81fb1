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

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	itemIndent   = 2  // spaces to indent item lines
	bannerWidth  = 70 // width of the "=" banner rule
	sectionWidth = 40 // width of the "-" section rule
)

// 🎯 FileOperation represents a single transfer for logging
type FileOperation struct {
	Source      string // Source path as given to the engine
	Destination string // Destination path as given to the engine
	Mode        string // overwrite or append
	Missing     bool   // Source did not exist
	Err         error  // Failure other than a missing source
}

// 🎯 Logger handles console output alongside structured logging
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger writing human output to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// Console returns the writer human output goes to
func (l *Logger) Console() io.Writer {
	return l.console
}

func (l *Logger) item(symbol string, attr color.Attribute, msg string) string {
	return fmt.Sprintf("%s%s %s", strings.Repeat(" ", itemIndent), color.New(attr).Sprint(symbol), msg)
}

// 📝 LogFileOperation logs the outcome of one transfer
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case op.Missing:
		fmt.Fprintln(l.console, l.item("⚠", color.FgYellow, "WARNING: Source file not found: "+op.Source))
	case op.Err != nil:
		fmt.Fprintln(l.console, l.item("✗", color.FgRed, fmt.Sprintf("Failed: %s -> %s: %v", op.Source, op.Destination, op.Err)))
	case op.Mode == "append":
		fmt.Fprintln(l.console, l.item("✓", color.FgGreen, fmt.Sprintf("Appended: %s -> %s", op.Source, op.Destination)))
	default:
		fmt.Fprintln(l.console, l.item("✓", color.FgGreen, fmt.Sprintf("Copied: %s -> %s", op.Source, op.Destination)))
	}

	ev := l.zlog.Info()
	if op.Missing || op.Err != nil {
		ev = l.zlog.Warn().Err(op.Err)
	}
	ev.Str("source", op.Source).
		Str("destination", op.Destination).
		Str("mode", op.Mode).
		Bool("missing", op.Missing).
		Msg("file operation")
}

// 📝 Banner prints a title between two "=" rules
func (l *Logger) Banner(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(l.console, "%s\n%s\n%s\n", rule, color.New(color.Bold, color.FgCyan).Sprint(title), rule)
	l.zlog.Info().Msg(title)
}

// 📝 Section prints a check title underlined by a "-" rule
func (l *Logger) Section(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "\n%s:\n%s\n", color.New(color.Bold).Sprint(title), strings.Repeat("-", sectionWidth))
	l.zlog.Debug().Str("section", title).Msg("section")
}

// 📝 Step prints a numbered phase of a run
func (l *Logger) Step(n int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "\n%d. %s\n", n, msg)
	l.zlog.Info().Int("step", n).Msg(msg)
}

// 📝 Pass prints an indented success item
func (l *Logger) Pass(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.item("✓", color.FgGreen, msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Warn prints an indented warning item
func (l *Logger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.item("⚠", color.FgYellow, msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Fail prints an indented failure item
func (l *Logger) Fail(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.item("✗", color.FgRed, msg))
	l.zlog.Error().Msg(msg)
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
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
