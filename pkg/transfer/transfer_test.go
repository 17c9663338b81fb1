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

package transfer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/restructure/pkg/log"
	"github.com/walteh/restructure/pkg/plan"
	"github.com/walteh/restructure/pkg/transfer"
)

// 🧪 createTestEnv creates source and target roots and a logging context
func createTestEnv(t *testing.T) (context.Context, string, string) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	return ctx, t.TempDir(), t.TempDir()
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err)
	return string(content)
}

func TestSeparator(t *testing.T) {
	rule := "# " + strings.Repeat("=", 60) + "\n"
	assert.Equal(t, "\n\n"+rule+"# Appended from b.py\n"+rule+"\n", transfer.Separator("b.py"))
}

func TestTransferOverwrite(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "old/a.py", "print('a')\n")
	writeFile(t, dst, "new/pkg/a.py", "stale content that is longer than the source")

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(src, "old/a.py"), mtime, mtime))

	eng := transfer.New(src, dst, nil)
	res, err := eng.Transfer(ctx, plan.TransferEntry{Source: "old/a.py", Destination: "new/pkg/a.py"})
	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.False(t, res.Missing)

	assert.Equal(t, "print('a')\n", readFile(t, dst, "new/pkg/a.py"))

	info, err := os.Stat(filepath.Join(dst, "new/pkg/a.py"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "modification time should be preserved")
}

func TestTransferAppendOntoExisting(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "b.py", "def b():\n    pass\n")
	original := "def a():\n    pass\n"
	writeFile(t, dst, "merged.py", original)

	eng := transfer.New(src, dst, nil)
	res, err := eng.Transfer(ctx, plan.TransferEntry{Source: "b.py", Destination: "merged.py", Mode: plan.ModeAppend})
	require.NoError(t, err)
	assert.True(t, res.Succeeded)

	got := readFile(t, dst, "merged.py")
	assert.Equal(t, original+transfer.Separator("b.py")+"def b():\n    pass\n", got)
	assert.True(t, strings.HasPrefix(got, original), "original bytes must stay an unmodified prefix")
}

func TestTransferAppendWithoutDestinationActsAsOverwrite(t *testing.T) {
	ctx, src, _ := createTestEnv(t)
	writeFile(t, src, "b.py", "Y")

	appendRoot := t.TempDir()
	overwriteRoot := t.TempDir()

	_, err := transfer.New(src, appendRoot, nil).Transfer(ctx, plan.TransferEntry{Source: "b.py", Destination: "x/out.py", Mode: plan.ModeAppend})
	require.NoError(t, err)
	_, err = transfer.New(src, overwriteRoot, nil).Transfer(ctx, plan.TransferEntry{Source: "b.py", Destination: "x/out.py", Mode: plan.ModeOverwrite})
	require.NoError(t, err)

	assert.Equal(t, readFile(t, overwriteRoot, "x/out.py"), readFile(t, appendRoot, "x/out.py"))
	assert.Equal(t, "Y", readFile(t, appendRoot, "x/out.py"))
}

func TestTransferMissingSource(t *testing.T) {
	ctx, src, dst := createTestEnv(t)

	res, err := transfer.New(src, dst, nil).Transfer(ctx, plan.TransferEntry{Source: "nope.py", Destination: "out.py"})
	require.NoError(t, err, "a missing source is not an error")
	assert.False(t, res.Succeeded)
	assert.True(t, res.Missing)

	_, err = os.Stat(filepath.Join(dst, "out.py"))
	assert.True(t, os.IsNotExist(err), "nothing should be written")
}

func TestTransferSourceIsDirectory(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(src, "pkg"), 0755))

	res, err := transfer.New(src, dst, nil).Transfer(ctx, plan.TransferEntry{Source: "pkg", Destination: "out.py"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
	assert.False(t, res.Succeeded)
}

func TestRunSharedDestination(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "A.py", "X")
	writeFile(t, src, "B.py", "Y")

	p := plan.Plan{
		{Source: "A.py", Destination: "out/merged.py", Mode: plan.ModeOverwrite},
		{Source: "B.py", Destination: "out/merged.py", Mode: plan.ModeAppend},
	}

	results := transfer.New(src, dst, nil).Run(ctx, p)
	require.Len(t, results, 2)

	succeeded, failed := transfer.Summary(results)
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 0, failed)
	assert.Equal(t, "X"+transfer.Separator("B.py")+"Y", readFile(t, dst, "out/merged.py"))
}

func TestRunContinuesPastMissingSource(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "one.py", "1")
	writeFile(t, src, "three.py", "3")
	writeFile(t, src, "four.py", "4")

	p := plan.Plan{
		{Source: "one.py", Destination: "a/one.py"},
		{Source: "two.py", Destination: "a/two.py"},
		{Source: "three.py", Destination: "b/three.py"},
		{Source: "four.py", Destination: "b/three.py", Mode: plan.ModeAppend},
	}

	buf := &bytes.Buffer{}
	console := log.New(buf, zerolog.Nop())
	results := transfer.New(src, dst, console).Run(ctx, p)
	require.Len(t, results, len(p), "every entry should be attempted")

	succeeded, failed := transfer.Summary(results)
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 1, failed)
	assert.True(t, results[1].Missing)

	assert.Equal(t, "1", readFile(t, dst, "a/one.py"))
	assert.Equal(t, "3"+transfer.Separator("four.py")+"4", readFile(t, dst, "b/three.py"))

	assert.Contains(t, buf.String(), "WARNING: Source file not found: "+filepath.Join(src, "two.py"))
	assert.Contains(t, buf.String(), "Copied: "+filepath.Join(src, "one.py"))
}

func TestRunRecordsFilesystemErrors(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "a.py", "a")
	writeFile(t, src, "b.py", "b")
	// a file where a parent directory should be
	writeFile(t, dst, "blocked", "x")

	p := plan.Plan{
		{Source: "a.py", Destination: "blocked/a.py"},
		{Source: "b.py", Destination: "ok/b.py"},
	}

	results := transfer.New(src, dst, nil).Run(ctx, p)
	require.Len(t, results, 2)
	assert.False(t, results[0].Succeeded)
	assert.Error(t, results[0].Err)
	assert.False(t, results[0].Missing)
	assert.True(t, results[1].Succeeded, "a failure must not stop later entries")
	assert.Equal(t, "b", readFile(t, dst, "ok/b.py"))
}

func TestRunLogsEffectiveMode(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name         string
		existing     bool
		wantAppended bool
		wantLine     string
		notLine      string
	}{
		{name: "destination_exists", existing: true, wantAppended: true, wantLine: "Appended: ", notLine: "Copied: "},
		{name: "destination_missing", existing: false, wantAppended: false, wantLine: "Copied: ", notLine: "Appended: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, src, dst := createTestEnv(t)
			writeFile(t, src, "b.py", "Y")
			if tt.existing {
				writeFile(t, dst, "out.py", "X")
			}

			buf := &bytes.Buffer{}
			console := log.New(buf, zerolog.Nop())
			results := transfer.New(src, dst, console).Run(ctx, plan.Plan{
				{Source: "b.py", Destination: "out.py", Mode: plan.ModeAppend},
			})
			require.Len(t, results, 1)

			assert.True(t, results[0].Succeeded)
			assert.Equal(t, tt.wantAppended, results[0].Appended)
			assert.Equal(t, plan.ModeAppend, results[0].Entry.Mode, "the declared mode is kept on the entry")
			assert.Contains(t, buf.String(), tt.wantLine)
			assert.NotContains(t, buf.String(), tt.notLine)
		})
	}
}
