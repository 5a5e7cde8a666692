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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/timburks/kilo/internal/logging"
	"github.com/timburks/kilo/pkg/syntax"
	kilo "github.com/timburks/kilo/pkg/types"
)

const Version = "0.1.0"

const (
	DefaultMessageTimeout    = 5 * time.Second
	DefaultQuitConfirmations = 1
)

// ErrNoFileName is returned when saving a buffer that has never been named.
var ErrNoFileName = errors.New("no file name")

// The Editor is one editing session: a single buffer shown in a single
// window, plus the status message and the unsaved-changes guard.
type Editor struct {
	buffer         *Buffer
	window         *Window
	syntax         *syntax.Table
	message        string
	messageTime    time.Time
	messageTimeout time.Duration
	prompt         string // shown instead of the message while a prompt is open
	prompting      bool
	quitTimes      int // extra quit requests needed while dirty
	quitRemaining  int
	formatGo       bool // gofmt Go files when they are saved
	now            func() time.Time
	logger         *log.Logger
}

// An Option configures an Editor.
type Option func(*Editor)

func WithSyntaxTable(t *syntax.Table) Option {
	return func(e *Editor) { e.syntax = t }
}

func WithMessageTimeout(d time.Duration) Option {
	return func(e *Editor) { e.messageTimeout = d }
}

func WithQuitConfirmations(n int) Option {
	return func(e *Editor) { e.quitTimes = n }
}

func WithGoFormat(enabled bool) Option {
	return func(e *Editor) { e.formatGo = enabled }
}

func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

func NewEditor(options ...Option) *Editor {
	e := &Editor{
		buffer:         NewBuffer(),
		syntax:         syntax.DefaultTable(),
		messageTimeout: DefaultMessageTimeout,
		quitTimes:      DefaultQuitConfirmations,
		now:            time.Now,
		logger:         logging.Default(),
	}
	for _, option := range options {
		option(e)
	}
	e.window = NewWindow(e.buffer)
	e.quitRemaining = e.quitTimes
	return e
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetWindow() *Window {
	return e.window
}

func (e *Editor) GetFileName() string {
	return e.buffer.GetFileName()
}

func (e *Editor) GetCursor() kilo.Point {
	return e.window.GetCursor()
}

func (e *Editor) SetCursor(cursor kilo.Point) {
	e.window.SetCursor(cursor)
}

// SetSize sets the size of the screen. Two rows are kept for the status
// and message bars.
func (e *Editor) SetSize(size kilo.Size) {
	rows := size.Rows - 2
	if rows < 0 {
		rows = 0
	}
	e.window.SetSize(kilo.Size{Rows: rows, Cols: size.Cols})
}

// ReadFile loads path into the buffer. On failure the buffer is left empty
// and untitled, the error is shown as the status message and returned.
func (e *Editor) ReadFile(path string) error {
	lines, err := ReadLines(path)
	if err != nil {
		e.logger.Error("open failed", logging.FieldPath, path, logging.FieldError, err)
		e.buffer.SetFileName("")
		e.buffer.Open(nil)
		e.buffer.SetProfile(nil)
		e.SetStatusMessage("Can't open %s: %s", path, reason(err))
		return err
	}
	e.buffer.SetFileName(path)
	e.LoadLines(lines)
	e.selectSyntax()
	e.logger.Info("opened", logging.FieldPath, path, logging.FieldRows, len(lines))
	return nil
}

// LoadLines replaces the buffer contents without touching the file name.
func (e *Editor) LoadLines(lines []string) {
	e.buffer.Open(lines)
	e.window.SetCursor(kilo.Point{})
	e.window.SetOffset(kilo.Size{})
}

func (e *Editor) selectSyntax() {
	var first []byte
	if row := e.buffer.GetRow(0); row != nil {
		first = []byte(row.GetString())
	}
	p := e.syntax.ForFile(e.buffer.GetFileName(), first)
	e.buffer.SetProfile(p)
	if p != nil {
		e.logger.Debug("syntax selected", logging.FieldPath, e.buffer.GetFileName(), logging.FieldSyntax, p.Name)
	}
}

// Save writes the buffer to its file. A buffer without a name returns ErrNoFileName.
// On failure the buffer stays dirty.
func (e *Editor) Save() error {
	path := e.buffer.GetFileName()
	if path == "" {
		return ErrNoFileName
	}
	content := e.formatBeforeSave(e.buffer.Bytes())
	if err := WriteFile(path, content); err != nil {
		e.logger.Error("save failed", logging.FieldPath, path, logging.FieldError, err)
		e.SetStatusMessage("Can't save! I/O error: %s", reason(err))
		return err
	}
	e.buffer.MarkClean()
	e.quitRemaining = e.quitTimes
	e.logger.Info("saved", logging.FieldPath, path, logging.FieldBytes, len(content))
	e.SetStatusMessage("%d bytes written to disk", len(content))
	return nil
}

// SaveAs names the buffer, selects its syntax by the new name and saves it.
func (e *Editor) SaveAs(path string) error {
	e.buffer.SetFileName(path)
	e.selectSyntax()
	return e.Save()
}

// reason drops the path prefixes added by the file helpers.
func reason(err error) string {
	for _, sentinel := range []error{ErrFileNotFound, ErrPermission} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// SetStatusMessage shows a message in the message bar until it times out.
func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = e.now()
}

// GetStatusMessage returns the current message, or "" once it has timed out.
func (e *Editor) GetStatusMessage() string {
	if e.message == "" || e.now().Sub(e.messageTime) >= e.messageTimeout {
		return ""
	}
	return e.message
}

// SetPrompt shows a prompt line in the message bar. Unlike a status
// message it stays until ClearPrompt.
func (e *Editor) SetPrompt(format string, args ...interface{}) {
	e.prompt = fmt.Sprintf(format, args...)
	e.prompting = true
}

func (e *Editor) ClearPrompt() {
	e.prompt = ""
	e.prompting = false
}

// GetMessageBarText returns the open prompt, or else the current status message.
func (e *Editor) GetMessageBarText() string {
	if e.prompting {
		return e.prompt
	}
	return e.GetStatusMessage()
}

// RequestQuit returns true if the editor may exit. While the buffer is
// dirty the first requests only produce a warning.
func (e *Editor) RequestQuit() bool {
	if e.buffer.IsDirty() && e.quitRemaining > 0 {
		e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitRemaining)
		e.quitRemaining--
		return false
	}
	return true
}

// ResetQuit rearms the unsaved-changes guard. Any key other than quit does this.
func (e *Editor) ResetQuit() {
	e.quitRemaining = e.quitTimes
}

// editing

func (e *Editor) InsertChar(c rune) {
	e.window.SetCursor(e.buffer.InsertCharacter(e.window.GetCursor(), c))
}

// InsertText inserts text at the cursor; newlines split rows.
func (e *Editor) InsertText(text string) {
	for _, c := range text {
		switch c {
		case '\n':
			e.InsertNewline()
		case '\r':
		default:
			e.InsertChar(c)
		}
	}
}

func (e *Editor) InsertNewline() {
	e.window.SetCursor(e.buffer.SplitRow(e.window.GetCursor()))
}

// Backspace deletes the character before the cursor.
func (e *Editor) Backspace() {
	e.window.SetCursor(e.buffer.DeleteCharacter(e.window.GetCursor()))
}

// Delete deletes the character under the cursor.
func (e *Editor) Delete() {
	before := e.window.GetCursor()
	e.window.MoveCursor(kilo.MoveRight, 1)
	after := e.window.GetCursor()
	if after == before || after.Row == e.buffer.GetRowCount() {
		e.window.SetCursor(before)
		return
	}
	e.Backspace()
}

// movement

func (e *Editor) MoveCursor(direction int, multiplier int) {
	e.window.MoveCursor(direction, multiplier)
}

func (e *Editor) MoveToBeginningOfLine() {
	e.window.MoveToBeginningOfLine()
}

func (e *Editor) MoveToEndOfLine() {
	e.window.MoveToEndOfLine()
}

func (e *Editor) PageUp() {
	e.window.PageUp()
}

func (e *Editor) PageDown() {
	e.window.PageDown()
}

// GotoLine moves the cursor to the start of a 1-based line number.
func (e *Editor) GotoLine(line int) {
	row := clipToRange(line-1, 0, max(e.buffer.GetRowCount()-1, 0))
	e.window.SetCursor(kilo.Point{Row: row})
}

// prompts

// Snapshot captures the cursor, offsets and highlights before a prompt.
func (e *Editor) Snapshot() Snapshot {
	return e.window.TakeSnapshot()
}

func (e *Editor) Restore(s Snapshot) {
	e.window.RestoreSnapshot(s)
}

func (e *Editor) BeginSearch(direction Direction) *Search {
	e.logger.Debug("search started", logging.FieldPrompt, direction.String())
	return NewSearch(e.window, direction)
}

// rendering

// Render draws the text rows, the status bar and the message bar, then places the cursor.
func (e *Editor) Render(d kilo.Display) {
	e.window.Scroll()
	e.window.RenderBuffer(d)
	size := e.window.GetSize()
	e.renderStatusBar(d, size.Rows, size.Cols)
	e.renderMessageBar(d, size.Rows+1, size.Cols)
	e.window.SetCursorForDisplay(d)
}

func (e *Editor) GetStatusBarText(width int) string {
	b := e.buffer
	modified := ""
	if b.IsDirty() {
		modified = " (modified)"
	}
	name := runewidth.Truncate(b.GetName(), 20, "")
	left := fmt.Sprintf("%s - %d lines%s", name, b.GetRowCount(), modified)
	language := "no ft"
	if p := b.GetProfile(); p != nil {
		language = p.Name
	}
	right := fmt.Sprintf("%s | %d/%d", language, e.window.GetCursor().Row+1, b.GetRowCount())

	left = runewidth.Truncate(left, width, "")
	used := runewidth.StringWidth(left)
	if used+runewidth.StringWidth(right) <= width {
		return left + strings.Repeat(" ", width-used-runewidth.StringWidth(right)) + right
	}
	return runewidth.FillRight(left, width)
}

func (e *Editor) renderStatusBar(d kilo.Display, row, width int) {
	col := 0
	for _, c := range e.GetStatusBarText(width) {
		d.SetCell(col, row, c, kilo.Style{Reverse: true})
		col += runewidth.RuneWidth(c)
	}
}

func (e *Editor) renderMessageBar(d kilo.Display, row, width int) {
	col := 0
	for _, c := range runewidth.Truncate(e.GetMessageBarText(), width, "") {
		d.SetCell(col, row, c, kilo.Style{})
		col += runewidth.RuneWidth(c)
	}
}
