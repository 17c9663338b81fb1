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

// Package transfer executes plan entries against the filesystem.
package transfer

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/restructure/pkg/log"
	"github.com/walteh/restructure/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

const ruleWidth = 60

// 📊 Result is the outcome of one transfer entry
type Result struct {
	Entry     plan.TransferEntry
	Succeeded bool
	Appended  bool  // Source was appended onto an existing destination
	Missing   bool  // Source did not exist
	Err       error // Filesystem failure, if any
}

// Mode is the mode that was actually applied. An append entry whose
// destination did not exist reports overwrite.
func (r Result) Mode() plan.Mode {
	if r.Appended {
		return plan.ModeAppend
	}
	return plan.ModeOverwrite
}

// 🚚 Engine copies and appends files from a source root into a target root
type Engine struct {
	SourceRoot string
	TargetRoot string
	Console    *log.Logger // Optional human output
}

// 🏭 New creates a new engine
func New(sourceRoot, targetRoot string, console *log.Logger) *Engine {
	return &Engine{
		SourceRoot: filepath.Clean(sourceRoot),
		TargetRoot: filepath.Clean(targetRoot),
		Console:    console,
	}
}

// Separator returns the block written between an existing destination and an
// appended source.
func Separator(sourceName string) string {
	rule := "# " + strings.Repeat("=", ruleWidth) + "\n"
	return "\n\n" + rule + "# Appended from " + sourceName + "\n" + rule + "\n"
}

func (e *Engine) sourcePath(entry plan.TransferEntry) string {
	return filepath.Join(e.SourceRoot, filepath.FromSlash(entry.Source))
}

func (e *Engine) destinationPath(entry plan.TransferEntry) string {
	return filepath.Join(e.TargetRoot, filepath.FromSlash(entry.Destination))
}

// 🏃 Transfer executes one entry.
//
// A missing source is not an error: it yields a failed Result so the caller
// can move on. Filesystem failures are returned as errors.
func (e *Engine) Transfer(ctx context.Context, entry plan.TransferEntry) (Result, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("source", entry.Source).
		Str("destination", entry.Destination).
		Str("mode", entry.Mode.String()).
		Logger()

	src := e.sourcePath(entry)
	dst := e.destinationPath(entry)

	srcInfo, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Msg("source file not found")
			return Result{Entry: entry, Missing: true}, nil
		}
		return Result{Entry: entry}, errors.Errorf("checking source %s: %w", entry.Source, err)
	}
	if srcInfo.IsDir() {
		return Result{Entry: entry}, errors.Errorf("source %s is a directory", entry.Source)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return Result{Entry: entry}, errors.Errorf("creating parent directories: %w", err)
	}

	if entry.Mode == plan.ModeAppend {
		if _, err := os.Stat(dst); err == nil {
			if err := appendFile(src, dst); err != nil {
				return Result{Entry: entry}, err
			}
			logger.Debug().Msg("appended file")
			return Result{Entry: entry, Succeeded: true, Appended: true}, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Result{Entry: entry}, errors.Errorf("checking destination %s: %w", entry.Destination, err)
		}
		logger.Debug().Msg("append destination missing, copying instead")
	}

	if err := copyFile(src, dst, srcInfo); err != nil {
		return Result{Entry: entry}, err
	}
	logger.Debug().Msg("copied file")
	return Result{Entry: entry, Succeeded: true}, nil
}

// 🔄 Run transfers every entry in order. A failing entry is recorded and the
// loop continues with the next one.
func (e *Engine) Run(ctx context.Context, p plan.Plan) []Result {
	results := make([]Result, 0, len(p))
	for _, entry := range p {
		res, err := e.Transfer(ctx, entry)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("source", entry.Source).Msg("transfer failed")
			res = Result{Entry: entry, Err: err}
		}
		if e.Console != nil {
			e.Console.LogFileOperation(ctx, log.FileOperation{
				Source:      e.sourcePath(entry),
				Destination: e.destinationPath(entry),
				Mode:        res.Mode().String(),
				Missing:     res.Missing,
				Err:         res.Err,
			})
		}
		results = append(results, res)
	}
	return results
}

// 📊 Summary counts succeeded and failed results
func Summary(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.Succeeded {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}

// copyFile replaces dst with the bytes of src, keeping permission bits and
// modification time.
func copyFile(src, dst string, srcInfo fs.FileInfo) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	destination, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		return errors.Errorf("copying file: %w", err)
	}
	if err := destination.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}

	// best effort, not every platform allows it
	_ = os.Chmod(dst, srcInfo.Mode().Perm())
	_ = os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
	return nil
}

// appendFile writes the separator and the full content of src onto dst
func appendFile(src, dst string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return errors.Errorf("reading source file: %w", err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return errors.Errorf("opening destination file: %w", err)
	}

	if _, err := io.WriteString(f, Separator(filepath.Base(src))); err != nil {
		f.Close()
		return errors.Errorf("writing separator: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("appending content: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}
	return nil
}
