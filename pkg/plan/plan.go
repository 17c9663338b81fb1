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

// Package plan holds the static table of file moves and merges that a
// migration executes.
package plan

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📋 Mode says how a transfer treats an existing destination
type Mode int

const (
	ModeOverwrite Mode = iota // Replace the destination with the source
	ModeAppend                // Concatenate the source onto the destination
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeOverwrite:
		return "overwrite"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// 🔍 ParseMode converts a config value into a Mode. An empty value means overwrite.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return ModeOverwrite, nil
	case "append":
		return ModeAppend, nil
	default:
		return ModeOverwrite, errors.Errorf("unknown transfer mode %q", s)
	}
}

// 📦 TransferEntry is one planned move of a source file to a destination.
// Paths are relative: Source to the source root, Destination to the target root.
type TransferEntry struct {
	Source      string
	Destination string
	Mode        Mode
}

// 🗺️ Plan is an ordered list of transfer entries.
//
// An append entry only merges when an earlier entry in the same run already
// wrote its destination. Keeping that order is up to whoever writes the plan;
// nothing here reorders entries.
type Plan []TransferEntry

// 🔍 Validate checks every entry has a destination and a known mode
func (p Plan) Validate() error {
	for i, e := range p {
		if strings.TrimSpace(e.Destination) == "" {
			return errors.Errorf("entry %d (%s): destination is required", i, e.Source)
		}
		if strings.TrimSpace(e.Source) == "" {
			return errors.Errorf("entry %d (%s): source is required", i, e.Destination)
		}
		if e.Mode != ModeOverwrite && e.Mode != ModeAppend {
			return errors.Errorf("entry %d (%s): unknown mode %d", i, e.Destination, e.Mode)
		}
	}
	return nil
}

// Destinations returns each distinct destination once, in first-seen order
func (p Plan) Destinations() []string {
	seen := make(map[string]bool, len(p))
	out := make([]string, 0, len(p))
	for _, e := range p {
		if seen[e.Destination] {
			continue
		}
		seen[e.Destination] = true
		out = append(out, e.Destination)
	}
	return out
}
