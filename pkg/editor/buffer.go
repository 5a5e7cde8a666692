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
	"fmt"
	"strings"

	"github.com/timburks/kilo/pkg/syntax"
	kilo "github.com/timburks/kilo/pkg/types"
)

// A Buffer holds the rows of the document being edited.
//
// Every row's openComment is the state that the following row was last
// scanned with. Edits rescan the changed rows and then keep rescanning
// while a row's terminal state differs from what its successor saw.
type Buffer struct {
	rows        []*Row
	fileName    string
	dirty       bool
	highlighter *Highlighter
}

func NewBuffer() *Buffer {
	return &Buffer{
		rows:        make([]*Row, 0),
		highlighter: NewHighlighter(nil),
	}
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// GetName returns the name shown in the status bar.
func (b *Buffer) GetName() string {
	if b.fileName == "" {
		return "[No Name]"
	}
	return b.fileName
}

func (b *Buffer) IsDirty() bool {
	return b.dirty
}

func (b *Buffer) MarkClean() {
	b.dirty = false
}

func (b *Buffer) GetProfile() *syntax.Profile {
	return b.highlighter.Profile()
}

// SetProfile changes the language and rehighlights every row.
func (b *Buffer) SetProfile(p *syntax.Profile) {
	b.highlighter = NewHighlighter(p)
	b.highlightAll()
}

// Open replaces the contents of the buffer. The buffer is clean afterwards.
func (b *Buffer) Open(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.highlightAll()
	b.dirty = false
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRow returns the row at index i, or nil if there is none.
func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

// Lines returns the text of all rows.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.GetString()
	}
	return lines
}

// Bytes returns the file contents: every row followed by a newline.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(row.GetString())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// checkRow panics if row is not a row index or the virtual row past the end.
func (b *Buffer) checkRow(row int) {
	if row < 0 || row > len(b.rows) {
		panic(fmt.Errorf("%w: row %d of %d", ErrInvalidCursor, row, len(b.rows)))
	}
}

// InsertCharacter inserts c at pos and returns the cursor position after it.
func (b *Buffer) InsertCharacter(pos kilo.Point, c rune) kilo.Point {
	b.checkRow(pos.Row)
	if pos.Row == len(b.rows) {
		b.insertRow(len(b.rows), NewRow(""))
	}
	row := b.rows[pos.Row]
	col := clipToRange(pos.Col, 0, row.Length())
	row.insertChar(col, c)
	b.updateSyntax(pos.Row, 1)
	b.dirty = true
	return kilo.Point{Row: pos.Row, Col: col + 1}
}

// DeleteCharacter deletes the character before pos, joining rows at the
// start of a line, and returns the resulting cursor position.
func (b *Buffer) DeleteCharacter(pos kilo.Point) kilo.Point {
	b.checkRow(pos.Row)
	if pos.Row == len(b.rows) {
		return pos
	}
	if pos.Col == 0 {
		if pos.Row == 0 {
			return pos
		}
		return b.JoinWithPrevious(pos.Row)
	}
	row := b.rows[pos.Row]
	col := clipToRange(pos.Col, 0, row.Length())
	row.deleteChar(col - 1)
	b.updateSyntax(pos.Row, 1)
	b.dirty = true
	return kilo.Point{Row: pos.Row, Col: col - 1}
}

// SplitRow breaks the row at pos and returns the start of the new row.
// Splitting the virtual row past the end appends an empty row.
func (b *Buffer) SplitRow(pos kilo.Point) kilo.Point {
	b.checkRow(pos.Row)
	if pos.Row == len(b.rows) {
		b.insertRow(len(b.rows), NewRow(""))
		b.updateSyntax(pos.Row, 1)
		b.dirty = true
		return kilo.Point{Row: pos.Row + 1, Col: 0}
	}
	row := b.rows[pos.Row]
	col := clipToRange(pos.Col, 0, row.Length())
	newRow := row.split(col)
	// the new row inherits what the following row was scanned with
	newRow.openComment = row.openComment
	b.insertRow(pos.Row+1, newRow)
	b.updateSyntax(pos.Row, 2)
	b.dirty = true
	return kilo.Point{Row: pos.Row + 1, Col: 0}
}

// JoinWithPrevious appends row i to row i-1, removes row i and returns the join point.
func (b *Buffer) JoinWithPrevious(i int) kilo.Point {
	if i <= 0 || i >= len(b.rows) {
		panic(fmt.Errorf("%w: cannot join row %d of %d", ErrInvalidCursor, i, len(b.rows)))
	}
	previous := b.rows[i-1]
	current := b.rows[i]
	col := previous.Length()
	previous.appendText(current.GetText())
	previous.openComment = current.openComment
	b.deleteRow(i)
	b.updateSyntax(i-1, 1)
	b.dirty = true
	return kilo.Point{Row: i - 1, Col: col}
}

func (b *Buffer) insertRow(at int, row *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
}

func (b *Buffer) deleteRow(at int) {
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
}

// highlightRow rescans row i and returns true if its terminal state changed.
func (b *Buffer) highlightRow(i int) bool {
	row := b.rows[i]
	inComment := i > 0 && b.rows[i-1].openComment
	open := b.highlighter.Scan(row.render, row.colors, inComment)
	changed := open != row.openComment
	row.openComment = open
	return changed
}

// updateSyntax rescans count rows starting at start, then continues down
// the document for as long as a row's terminal state changes.
// It returns the number of rows scanned.
func (b *Buffer) updateSyntax(start, count int) int {
	scanned := 0
	for i := start; i < len(b.rows); i++ {
		changed := b.highlightRow(i)
		scanned++
		if i >= start+count-1 && !changed {
			break
		}
	}
	return scanned
}

func (b *Buffer) highlightAll() {
	for i := range b.rows {
		b.highlightRow(i)
	}
}

// RestoreColors replaces the highlights of every row.
// It is used to discard temporary highlights such as search matches.
func (b *Buffer) RestoreColors(colors [][]kilo.Highlight) {
	for i, row := range b.rows {
		if i < len(colors) && len(colors[i]) == len(row.colors) {
			copy(row.colors, colors[i])
		}
	}
}

// SaveColors returns a copy of the highlights of every row.
func (b *Buffer) SaveColors() [][]kilo.Highlight {
	colors := make([][]kilo.Highlight, len(b.rows))
	for i, row := range b.rows {
		colors[i] = append([]kilo.Highlight(nil), row.colors...)
	}
	return colors
}

func clipToRange(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
