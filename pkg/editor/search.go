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
	kilo "github.com/timburks/kilo/pkg/types"
)

// Direction is the direction in which a search moves between rows.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// A Snapshot is a copy of everything a prompt may disturb.
type Snapshot struct {
	Cursor kilo.Point
	Offset kilo.Size
	Colors [][]kilo.Highlight
}

func (w *Window) TakeSnapshot() Snapshot {
	return Snapshot{
		Cursor: w.cursor,
		Offset: w.offset,
		Colors: w.buffer.SaveColors(),
	}
}

func (w *Window) RestoreSnapshot(s Snapshot) {
	w.cursor = s.Cursor
	w.offset = s.Offset
	w.buffer.RestoreColors(s.Colors)
	w.keepCursorInDocument()
}

// A Search is one interactive search session.
// Each call to Find scans at most every row once and paints the match
// over the row's highlights; the painting is undone by the next Find,
// by Confirm and by Cancel.
type Search struct {
	window     *Window
	saved      Snapshot
	lastMatch  int // -1 when nothing has matched
	direction  Direction
	overlayRow int
	overlay    []kilo.Highlight
}

func NewSearch(w *Window, direction Direction) *Search {
	return &Search{
		window:     w,
		saved:      w.TakeSnapshot(),
		lastMatch:  -1,
		direction:  direction,
		overlayRow: -1,
	}
}

func (s *Search) GetDirection() Direction {
	return s.direction
}

func (s *Search) SetDirection(d Direction) {
	s.direction = d
}

// LastMatch returns the row of the most recent match.
func (s *Search) LastMatch() (int, bool) {
	return s.lastMatch, s.lastMatch >= 0
}

func (s *Search) step(row, count int) int {
	if s.direction == Backward {
		row--
		if row < 0 {
			row = count - 1
		}
		return row
	}
	row++
	if row >= count {
		row = 0
	}
	return row
}

// Find looks for query starting at the last matching row (or row 0).
// If advance is set the search moves one row in the current direction
// before the first probe; otherwise the starting row is probed first.
// It returns true and moves the cursor if a match was found.
func (s *Search) Find(query string, advance bool) bool {
	s.clearOverlay()
	b := s.window.buffer
	count := b.GetRowCount()
	needle := []rune(query)
	if len(needle) == 0 || count == 0 {
		return false
	}
	current := s.lastMatch
	if current < 0 || current >= count {
		current = 0
		advance = false
	}
	for i := 0; i < count; i++ {
		if advance || i > 0 {
			current = s.step(current, count)
		}
		row := b.rows[current]
		rx := indexRunes(row.render, needle)
		if rx == -1 {
			continue
		}
		s.lastMatch = current
		s.overlayRow = current
		s.overlay = append([]kilo.Highlight(nil), row.colors...)
		fill(row.colors, rx, len(needle), kilo.HighlightMatch)

		s.window.cursor = kilo.Point{Row: current, Col: row.RxToCx(rx)}
		// put the matching row at the top of the window
		s.window.offset.Rows = current
		return true
	}
	return false
}

func (s *Search) clearOverlay() {
	if s.overlayRow < 0 {
		return
	}
	if row := s.window.buffer.GetRow(s.overlayRow); row != nil && len(row.colors) == len(s.overlay) {
		copy(row.colors, s.overlay)
	}
	s.overlayRow = -1
	s.overlay = nil
}

// Confirm ends the search at the current match.
func (s *Search) Confirm() {
	s.clearOverlay()
}

// Cancel ends the search and puts everything back as it was when the search began.
func (s *Search) Cancel() {
	s.clearOverlay()
	s.window.RestoreSnapshot(s.saved)
}

func indexRunes(s, sub []rune) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if hasPrefix(s[i:], sub) {
			return i
		}
	}
	return -1
}
