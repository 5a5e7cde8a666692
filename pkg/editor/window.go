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

	"github.com/mattn/go-runewidth"

	kilo "github.com/timburks/kilo/pkg/types"
)

// A Window is the visible part of a buffer.
// It owns the cursor and the scroll offsets; the cursor's rendered column
// is recomputed from the text column whenever the window scrolls.
type Window struct {
	buffer *Buffer
	cursor kilo.Point // cursor position (text column)
	rx     int        // rendered column of the cursor
	offset kilo.Size  // display offset
	size   kilo.Size  // rows and columns available for text
}

func NewWindow(b *Buffer) *Window {
	return &Window{buffer: b}
}

func (w *Window) GetBuffer() *Buffer {
	return w.buffer
}

func (w *Window) GetCursor() kilo.Point {
	return w.cursor
}

// SetCursor moves the cursor, keeping it inside the document.
func (w *Window) SetCursor(cursor kilo.Point) {
	w.cursor = cursor
	w.keepCursorInDocument()
}

func (w *Window) GetOffset() kilo.Size {
	return w.offset
}

func (w *Window) SetOffset(offset kilo.Size) {
	w.offset = offset
}

func (w *Window) GetSize() kilo.Size {
	return w.size
}

func (w *Window) SetSize(size kilo.Size) {
	w.size = size
}

// GetRenderCol returns the rendered column computed by the last Scroll.
func (w *Window) GetRenderCol() int {
	return w.rx
}

// Scroll recomputes the display offset to keep the cursor onscreen.
func (w *Window) Scroll() {
	w.rx = 0
	if row := w.buffer.GetRow(w.cursor.Row); row != nil {
		w.rx = row.CxToRx(w.cursor.Col)
	}
	if w.cursor.Row < w.offset.Rows {
		// scroll up
		w.offset.Rows = w.cursor.Row
	}
	if w.size.Rows > 0 && w.cursor.Row >= w.offset.Rows+w.size.Rows {
		// scroll down
		w.offset.Rows = w.cursor.Row - w.size.Rows + 1
	}
	if w.rx < w.offset.Cols {
		// scroll left
		w.offset.Cols = w.rx
	}
	if w.size.Cols > 0 && w.rx >= w.offset.Cols+w.size.Cols {
		// scroll right
		w.offset.Cols = w.rx - w.size.Cols + 1
	}
}

func (w *Window) keepCursorInDocument() {
	w.cursor.Row = clipToRange(w.cursor.Row, 0, w.buffer.GetRowCount())
	w.cursor.Col = clipToRange(w.cursor.Col, 0, w.buffer.GetRowLength(w.cursor.Row))
}

func (w *Window) MoveCursor(direction int, multiplier int) {
	for i := 0; i < multiplier; i++ {
		switch direction {
		case kilo.MoveLeft:
			if w.cursor.Col > 0 {
				w.cursor.Col--
			} else if w.cursor.Row > 0 {
				w.cursor.Row--
				w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row)
			}
		case kilo.MoveRight:
			if w.cursor.Row < w.buffer.GetRowCount() {
				if w.cursor.Col < w.buffer.GetRowLength(w.cursor.Row) {
					w.cursor.Col++
				} else {
					w.cursor.Row++
					w.cursor.Col = 0
				}
			}
		case kilo.MoveUp:
			if w.cursor.Row > 0 {
				w.cursor.Row--
			}
		case kilo.MoveDown:
			if w.cursor.Row < w.buffer.GetRowCount() {
				w.cursor.Row++
			}
		}
		// don't go past the end of the current line
		w.keepCursorInDocument()
	}
}

func (w *Window) MoveToBeginningOfLine() {
	w.cursor.Col = 0
}

func (w *Window) MoveToEndOfLine() {
	w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row)
}

func (w *Window) PageUp() {
	// move to the top of the screen, then up by a page
	w.cursor.Row = w.offset.Rows
	w.MoveCursor(kilo.MoveUp, w.size.Rows)
}

func (w *Window) PageDown() {
	// move to the bottom of the screen, then down by a page
	w.cursor.Row = min(w.offset.Rows+w.size.Rows-1, w.buffer.GetRowCount())
	w.MoveCursor(kilo.MoveDown, w.size.Rows)
}

// RenderBuffer draws the visible rows. Rows past the end of the document are marked with "~".
func (w *Window) RenderBuffer(display kilo.Display) {
	b := w.buffer
	for i := 0; i < w.size.Rows; i++ {
		fileRow := i + w.offset.Rows
		if fileRow >= b.GetRowCount() {
			display.SetCell(0, i, '~', kilo.Style{Dim: true})
			if b.GetRowCount() == 0 && i == w.size.Rows/3 {
				w.renderWelcome(display, i)
			}
			continue
		}
		row := b.rows[fileRow]
		line := row.GetRender()
		colors := row.GetColors()
		if w.offset.Cols >= len(line) {
			continue
		}
		line = line[w.offset.Cols:]
		colors = colors[w.offset.Cols:]
		// truncate line to fit screen
		if len(line) > w.size.Cols {
			line = line[:w.size.Cols]
		}
		for j, c := range line {
			display.SetCell(j, i, c, kilo.Style{Highlight: colors[j]})
		}
	}
}

func (w *Window) renderWelcome(display kilo.Display, row int) {
	welcome := fmt.Sprintf("Kilo editor -- version %s", Version)
	welcome = runewidth.Truncate(welcome, w.size.Cols, "")
	col := (w.size.Cols - runewidth.StringWidth(welcome)) / 2
	if col < 1 {
		col = 1
	}
	for _, c := range welcome {
		display.SetCell(col, row, c, kilo.Style{})
		col += runewidth.RuneWidth(c)
	}
}

// SetCursorForDisplay places the terminal cursor on the cursor's rendered cell.
func (w *Window) SetCursorForDisplay(d kilo.Display) {
	d.SetCursor(kilo.Point{
		Col: w.rx - w.offset.Cols,
		Row: w.cursor.Row - w.offset.Rows,
	})
}
