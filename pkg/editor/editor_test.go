//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kilo "github.com/timburks/kilo/pkg/types"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestEditor(t *testing.T) (*Editor, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	e := NewEditor(WithClock(c.now), WithMessageTimeout(5*time.Second))
	e.SetSize(kilo.Size{Rows: 12, Cols: 60})
	return e, c
}

func TestStatusMessageTimesOut(t *testing.T) {
	e, c := newTestEditor(t)
	e.SetStatusMessage("hello %d", 42)
	assert.Equal(t, "hello 42", e.GetStatusMessage())

	c.advance(4 * time.Second)
	assert.Equal(t, "hello 42", e.GetStatusMessage())

	c.advance(time.Second)
	assert.Equal(t, "", e.GetStatusMessage())
}

func TestReadFileMissing(t *testing.T) {
	e, _ := newTestEditor(t)
	err := e.ReadFile(filepath.Join(t.TempDir(), "nothing.c"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	assert.Equal(t, "", e.GetFileName())
	assert.Equal(t, 0, e.GetBuffer().GetRowCount())
	assert.Nil(t, e.GetBuffer().GetProfile())
	assert.Contains(t, e.GetStatusMessage(), "file not found")
}

func TestReadFileSelectsSyntax(t *testing.T) {
	e, _ := newTestEditor(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "main.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o600))
	require.NoError(t, e.ReadFile(path))
	assert.Equal(t, "Rust", e.GetBuffer().GetProfile().Name)
	assert.False(t, e.GetBuffer().IsDirty())

	script := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/usr/bin/env ruby\nputs 1\n"), 0o600))
	require.NoError(t, e.ReadFile(script))
	assert.Equal(t, "Ruby", e.GetBuffer().GetProfile().Name)
}

func TestEditAndSave(t *testing.T) {
	e, _ := newTestEditor(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0o600))
	require.NoError(t, e.ReadFile(path))

	e.MoveToEndOfLine()
	e.InsertText(", there\nbig")
	assert.True(t, e.GetBuffer().IsDirty())
	assert.Equal(t, []string{"hello, there", "big", "world"}, e.GetBuffer().Lines())

	require.NoError(t, e.Save())
	assert.False(t, e.GetBuffer().IsDirty())
	assert.Equal(t, "23 bytes written to disk", e.GetStatusMessage())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello, there\nbig\nworld\n", string(data))
}

func TestSaveUntitled(t *testing.T) {
	e, _ := newTestEditor(t)
	e.InsertText("int x;")
	assert.ErrorIs(t, e.Save(), ErrNoFileName)

	path := filepath.Join(t.TempDir(), "x.c")
	require.NoError(t, e.SaveAs(path))
	assert.Equal(t, path, e.GetFileName())
	assert.Equal(t, "C", e.GetBuffer().GetProfile().Name)
	assert.Equal(t, kilo.HighlightKeywordAlt, e.GetBuffer().GetRow(0).GetColors()[0])
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	e, _ := newTestEditor(t)
	e.InsertChar('x')

	err := e.SaveAs(filepath.Join(t.TempDir(), "missing", "x.txt"))
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.True(t, e.GetBuffer().IsDirty())
	assert.True(t, strings.HasPrefix(e.GetStatusMessage(), "Can't save! I/O error: "))
}

func TestQuitGuard(t *testing.T) {
	e, _ := newTestEditor(t)
	assert.True(t, e.RequestQuit())

	e.InsertChar('x')
	assert.False(t, e.RequestQuit())
	assert.Equal(t, "WARNING!!! File has unsaved changes. Press Ctrl-Q 1 more times to quit.", e.GetStatusMessage())
	assert.True(t, e.RequestQuit())

	e.ResetQuit()
	assert.False(t, e.RequestQuit())
	e.ResetQuit()
	assert.False(t, e.RequestQuit())
}

func TestDelete(t *testing.T) {
	e, _ := newTestEditor(t)
	e.LoadLines([]string{"ab", "cd"})

	e.Delete()
	assert.Equal(t, []string{"b", "cd"}, e.GetBuffer().Lines())
	assert.Equal(t, kilo.Point{}, e.GetCursor())

	e.MoveToEndOfLine()
	e.Delete()
	assert.Equal(t, []string{"bcd"}, e.GetBuffer().Lines())
	assert.Equal(t, kilo.Point{Row: 0, Col: 1}, e.GetCursor())

	// nothing follows the last character
	e.MoveToEndOfLine()
	e.Delete()
	assert.Equal(t, []string{"bcd"}, e.GetBuffer().Lines())
	assert.Equal(t, kilo.Point{Row: 0, Col: 3}, e.GetCursor())
}

func TestBackspaceJoinsRows(t *testing.T) {
	e, _ := newTestEditor(t)
	e.LoadLines([]string{"ab", "cd"})
	e.SetCursor(kilo.Point{Row: 1})

	e.Backspace()
	assert.Equal(t, []string{"abcd"}, e.GetBuffer().Lines())
	assert.Equal(t, kilo.Point{Row: 0, Col: 2}, e.GetCursor())

	e.SetCursor(kilo.Point{})
	e.Backspace()
	assert.Equal(t, []string{"abcd"}, e.GetBuffer().Lines())
}

func TestGotoLine(t *testing.T) {
	e, _ := newTestEditor(t)
	e.LoadLines([]string{"a", "b", "c"})
	e.GotoLine(2)
	assert.Equal(t, kilo.Point{Row: 1}, e.GetCursor())
	e.GotoLine(99)
	assert.Equal(t, kilo.Point{Row: 2}, e.GetCursor())
	e.GotoLine(-4)
	assert.Equal(t, kilo.Point{}, e.GetCursor())
}

func TestPromptSnapshot(t *testing.T) {
	e, _ := newTestEditor(t)
	e.LoadLines([]string{"one", "two", "three"})
	e.SetCursor(kilo.Point{Row: 2, Col: 4})
	snapshot := e.Snapshot()

	e.SetCursor(kilo.Point{})
	e.GetWindow().SetOffset(kilo.Size{Rows: 1, Cols: 2})
	e.Restore(snapshot)
	assert.Equal(t, kilo.Point{Row: 2, Col: 4}, e.GetCursor())
	assert.Equal(t, kilo.Size{}, e.GetWindow().GetOffset())
}

func TestStatusBarText(t *testing.T) {
	e, _ := newTestEditor(t)
	assert.Equal(t, "[No Name] - 0 lines", strings.TrimRight(e.GetStatusBarText(40)[:20], " "))
	assert.True(t, strings.HasSuffix(e.GetStatusBarText(40), "no ft | 1/0"))
	assert.Len(t, e.GetStatusBarText(40), 40)

	path := filepath.Join(t.TempDir(), "a-rather-long-file-name.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o600))
	require.NoError(t, e.ReadFile(path))
	e.InsertChar('x')

	text := e.GetStatusBarText(80)
	name := path
	if len(name) > 20 {
		name = name[:20]
	}
	assert.True(t, strings.HasPrefix(text, name+" - 1 lines (modified)"), text)
	assert.True(t, strings.HasSuffix(text, "Go | 1/1"), text)

	// a narrow screen keeps the left part
	assert.Equal(t, name[:10], e.GetStatusBarText(10))
}

func TestRender(t *testing.T) {
	e, c := newTestEditor(t)
	e.LoadLines([]string{"int x;", "\ty"})
	e.SetCursor(kilo.Point{Row: 1, Col: 1})
	e.SetStatusMessage("HELP")

	d := newFakeDisplay()
	e.Render(d)
	assert.Equal(t, "int x;", d.line(0, 60))
	assert.Equal(t, "        y", d.line(1, 60))
	assert.Equal(t, "~", d.line(2, 60))
	assert.True(t, d.style(10, 0).Reverse)
	assert.True(t, strings.HasPrefix(d.line(10, 60), "[No Name] - 2 lines"))
	assert.Equal(t, "HELP", d.line(11, 60))
	assert.Equal(t, kilo.Point{Row: 1, Col: 8}, d.cursor)

	c.advance(10 * time.Second)
	d = newFakeDisplay()
	e.Render(d)
	assert.Equal(t, "", d.line(11, 60))
}
