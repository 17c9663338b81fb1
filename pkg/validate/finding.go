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

package validate

import (
	"github.com/walteh/restructure/pkg/log"
)

// 📊 Category classifies a finding
type Category int

const (
	Passed Category = iota
	Warning
	Error
)

// String returns a string representation of Category
func (c Category) String() string {
	switch c {
	case Passed:
		return "passed"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// 🔎 Finding is one classified observation made by a check
type Finding struct {
	Category Category
	Message  string
}

// 🧺 Results accumulates findings for one validation run
type Results struct {
	findings []Finding
	console  *log.Logger
}

// 🏭 NewResults creates an empty accumulator. Findings are echoed to console
// when it is not nil.
func NewResults(console *log.Logger) *Results {
	return &Results{console: console}
}

// Pass records a passed finding. display is what the console shows.
func (r *Results) Pass(msg, display string) {
	r.findings = append(r.findings, Finding{Category: Passed, Message: msg})
	if r.console != nil {
		r.console.Pass(display)
	}
}

// Warn records a warning
func (r *Results) Warn(msg, display string) {
	r.findings = append(r.findings, Finding{Category: Warning, Message: msg})
	if r.console != nil {
		r.console.Warn(display)
	}
}

// Fail records an error
func (r *Results) Fail(msg, display string) {
	r.findings = append(r.findings, Finding{Category: Error, Message: msg})
	if r.console != nil {
		r.console.Fail(display)
	}
}

// Findings returns every finding in the order recorded
func (r *Results) Findings() []Finding {
	return append([]Finding(nil), r.findings...)
}

func (r *Results) messages(c Category) []string {
	var out []string
	for _, f := range r.findings {
		if f.Category == c {
			out = append(out, f.Message)
		}
	}
	return out
}

// Passed returns the messages of passed findings
func (r *Results) Passed() []string { return r.messages(Passed) }

// Warnings returns the messages of warnings
func (r *Results) Warnings() []string { return r.messages(Warning) }

// Errors returns the messages of errors
func (r *Results) Errors() []string { return r.messages(Error) }

// ✅ OK reports whether no errors were recorded. Warnings do not count.
func (r *Results) OK() bool {
	return len(r.Errors()) == 0
}
