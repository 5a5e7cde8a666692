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
	"strings"

	kilo "github.com/timburks/kilo/pkg/types"
)

type fakeCell struct {
	c     rune
	style kilo.Style
}

// fakeDisplay records the cells of one frame.
type fakeDisplay struct {
	cells  map[kilo.Point]fakeCell
	cursor kilo.Point
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{cells: make(map[kilo.Point]fakeCell)}
}

func (d *fakeDisplay) SetCell(col, row int, c rune, style kilo.Style) {
	d.cells[kilo.Point{Row: row, Col: col}] = fakeCell{c: c, style: style}
}

func (d *fakeDisplay) SetCursor(p kilo.Point) {
	d.cursor = p
}

// line returns the characters of a screen row, with unset cells as spaces
// and trailing spaces removed.
func (d *fakeDisplay) line(row, width int) string {
	var sb strings.Builder
	for col := 0; col < width; col++ {
		if cell, ok := d.cells[kilo.Point{Row: row, Col: col}]; ok {
			sb.WriteRune(cell.c)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func (d *fakeDisplay) style(row, col int) kilo.Style {
	return d.cells[kilo.Point{Row: row, Col: col}].style
}
