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

// TabStop is the column multiple that tabs expand to.
const TabStop = 8

// A Row is one line of a document.
// Text is what is stored in the file; render is Text with tabs expanded
// and colors holds one highlight for every rendered character.
type Row struct {
	text        []rune
	render      []rune
	colors      []kilo.Highlight
	openComment bool // row ends inside a block comment
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

// setText replaces the text and recomputes the rendered form.
// Colors are reset to normal; the buffer rescans the row afterwards.
func (r *Row) setText(text []rune) {
	r.text = text
	r.render = expandTabs(text)
	if cap(r.colors) >= len(r.render) {
		r.colors = r.colors[:len(r.render)]
	} else {
		r.colors = make([]kilo.Highlight, len(r.render))
	}
	for i := range r.colors {
		r.colors[i] = kilo.HighlightNormal
	}
}

func expandTabs(text []rune) []rune {
	tabs := 0
	for _, c := range text {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]rune, 0, len(text)+tabs*(TabStop-1))
	for _, c := range text {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	return render
}

func (r *Row) GetText() []rune {
	return r.text
}

func (r *Row) GetString() string {
	return string(r.text)
}

func (r *Row) GetRender() []rune {
	return r.render
}

func (r *Row) GetColors() []kilo.Highlight {
	return r.colors
}

// HasOpenComment reports whether the row ends inside a block comment.
func (r *Row) HasOpenComment() bool {
	return r.openComment
}

func (r *Row) Length() int {
	return len(r.text)
}

func (r *Row) RenderLength() int {
	return len(r.render)
}

// CxToRx converts a text column into a rendered column.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for i := 0; i < cx && i < len(r.text); i++ {
		if r.text[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a rendered column into a text column.
// Columns inside the padding of a tab map to the tab itself.
func (r *Row) RxToCx(rx int) int {
	cur := 0
	for cx, c := range r.text {
		if c == '\t' {
			cur += (TabStop - 1) - (cur % TabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(r.text)
}

func (r *Row) insertChar(col int, c rune) {
	if col < 0 || col > len(r.text) {
		col = len(r.text)
	}
	line := make([]rune, 0, len(r.text)+1)
	line = append(line, r.text[:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	r.setText(line)
}

// deleteChar removes the character at col and returns it.
func (r *Row) deleteChar(col int) rune {
	if col < 0 || col >= len(r.text) {
		return 0
	}
	c := r.text[col]
	line := make([]rune, 0, len(r.text)-1)
	line = append(line, r.text[:col]...)
	line = append(line, r.text[col+1:]...)
	r.setText(line)
	return c
}

func (r *Row) appendText(text []rune) {
	line := make([]rune, 0, len(r.text)+len(text))
	line = append(line, r.text...)
	line = append(line, text...)
	r.setText(line)
}

// split truncates the row at col and returns a new row holding the remainder.
func (r *Row) split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col > len(r.text) {
		col = len(r.text)
	}
	after := NewRow(string(r.text[col:]))
	r.setText(append([]rune(nil), r.text[:col]...))
	return after
}
