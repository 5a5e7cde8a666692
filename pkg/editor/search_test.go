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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/kilo/pkg/syntax"
	kilo "github.com/timburks/kilo/pkg/types"
)

func searchWindow(lines ...string) *Window {
	b := NewBuffer()
	b.SetProfile(syntax.C())
	b.Open(lines)
	w := NewWindow(b)
	w.SetSize(kilo.Size{Rows: 3, Cols: 20})
	return w
}

func TestSearchWrapsOnce(t *testing.T) {
	w := searchWindow("needle here", "a", "b", "c", "d")
	s := NewSearch(w, Forward)
	s.lastMatch = 3

	for i := 0; i < 3; i++ {
		require.True(t, s.Find("needle", true))
		row, ok := s.LastMatch()
		assert.True(t, ok)
		assert.Equal(t, 0, row)
		assert.Equal(t, kilo.Point{Row: 0, Col: 0}, w.GetCursor())
	}
}

func TestSearchDirections(t *testing.T) {
	w := searchWindow("x one", "x two", "x three")
	s := NewSearch(w, Forward)

	// the first probe checks row 0 without moving
	require.True(t, s.Find("x", false))
	assert.Equal(t, 0, w.GetCursor().Row)
	require.True(t, s.Find("x", true))
	assert.Equal(t, 1, w.GetCursor().Row)

	s.SetDirection(Backward)
	require.True(t, s.Find("x", true))
	assert.Equal(t, 0, w.GetCursor().Row)
	require.True(t, s.Find("x", true))
	assert.Equal(t, 2, w.GetCursor().Row)
}

func TestSearchMatchOverlay(t *testing.T) {
	w := searchWindow("int x;", "\tfoo(1);")
	s := NewSearch(w, Forward)

	require.True(t, s.Find("foo", false))
	// the cursor is placed on the text column of the rendered match
	assert.Equal(t, kilo.Point{Row: 1, Col: 1}, w.GetCursor())
	assert.Equal(t, 1, w.GetOffset().Rows)

	colors := w.GetBuffer().GetRow(1).GetColors()
	assert.Equal(t, repeat(kilo.HighlightMatch, 3), colors[8:11])
	assert.Equal(t, kilo.HighlightNumber, colors[12])

	// a new query removes the previous overlay
	require.True(t, s.Find("int", false))
	assert.NotContains(t, w.GetBuffer().GetRow(1).GetColors(), kilo.HighlightMatch)
}

func TestSearchNotFound(t *testing.T) {
	w := searchWindow("alpha", "beta")
	w.SetCursor(kilo.Point{Row: 1, Col: 2})
	s := NewSearch(w, Forward)

	assert.False(t, s.Find("gamma", false))
	assert.False(t, s.Find("", false))
	assert.Equal(t, kilo.Point{Row: 1, Col: 2}, w.GetCursor())
	_, ok := s.LastMatch()
	assert.False(t, ok)
}

func TestSearchCancelRestoresEverything(t *testing.T) {
	w := searchWindow("/* a", "b */", "int x = 1;", "x", "y", "int y;")
	w.SetCursor(kilo.Point{Row: 3, Col: 1})
	w.Scroll()
	w.SetOffset(kilo.Size{Rows: 2, Cols: 0})
	cursor := w.GetCursor()
	offset := w.GetOffset()
	colors := w.GetBuffer().SaveColors()

	s := NewSearch(w, Forward)
	require.True(t, s.Find("int", false))
	require.True(t, s.Find("int", true))
	assert.Equal(t, 5, w.GetCursor().Row)

	s.Cancel()
	assert.Equal(t, cursor, w.GetCursor())
	assert.Equal(t, offset, w.GetOffset())
	assert.Equal(t, colors, w.GetBuffer().SaveColors())
}

func TestSearchConfirmKeepsCursor(t *testing.T) {
	w := searchWindow("a", "b", "target")
	colors := w.GetBuffer().SaveColors()

	s := NewSearch(w, Forward)
	require.True(t, s.Find("get", false))
	s.Confirm()

	assert.Equal(t, kilo.Point{Row: 2, Col: 3}, w.GetCursor())
	assert.Equal(t, colors, w.GetBuffer().SaveColors())
}

func TestIndexRunes(t *testing.T) {
	assert.Equal(t, 0, indexRunes([]rune("abc"), []rune("a")))
	assert.Equal(t, 2, indexRunes([]rune("héllo"), []rune("llo")))
	assert.Equal(t, -1, indexRunes([]rune("ab"), []rune("abc")))
}
