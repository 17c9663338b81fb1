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

// Package header prepends documentation headers to migrated source files.
package header

import (
	"bytes"
	"context"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/walteh/restructure/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// DefaultProjectNote is the sentence every generated header ends with
const DefaultProjectNote = "This module is part of the MOCU-OED project for optimal experimental design\nin coupled oscillator systems."

var markers = [][]byte{[]byte(`"""`), []byte(`'''`)}

// 📝 Annotator adds a docstring header to files that lack one
type Annotator struct {
	ProjectNote string

	ws *workspace.Workspace
}

// 🏭 New creates an annotator working relative to the workspace root
func New(ws *workspace.Workspace) *Annotator {
	return &Annotator{
		ProjectNote: DefaultProjectNote,
		ws:          ws,
	}
}

// 🔍 HasHeader reports whether content already starts with a docstring,
// ignoring leading whitespace.
func HasHeader(content []byte) bool {
	trimmed := bytes.TrimLeftFunc(content, unicode.IsSpace)
	for _, m := range markers {
		if bytes.HasPrefix(trimmed, m) {
			return true
		}
	}
	return false
}

// Render returns the header block for a description
func (a *Annotator) Render(description string) string {
	return "\"\"\"\n" + description + "\n\n" + a.ProjectNote + "\n\"\"\"\n\n"
}

// 🏃 Annotate prepends a header to path unless one is already there. The
// file is left untouched when it has a header or does not exist.
func (a *Annotator) Annotate(ctx context.Context, path, description string) (bool, error) {
	exists, err := a.ws.Exists(ctx, path)
	if err != nil {
		return false, err
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("skipping header for missing file")
		return false, nil
	}

	content, err := a.ws.ReadFile(ctx, path)
	if err != nil {
		return false, errors.Errorf("reading %s: %w", path, err)
	}

	if HasHeader(content) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("header already present")
		return false, nil
	}

	var buf bytes.Buffer
	buf.WriteString(a.Render(description))
	buf.Write(content)

	if err := a.ws.WriteFileAtomic(ctx, path, buf.Bytes()); err != nil {
		return false, errors.Errorf("writing header to %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("added header")
	return true, nil
}
