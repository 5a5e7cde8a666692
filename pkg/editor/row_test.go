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
)

func TestRowRender(t *testing.T) {
	tests := []struct {
		text   string
		render string
	}{
		{"", ""},
		{"abc", "abc"},
		{"\tx", "        x"},
		{"ab\tc", "ab      c"},
		{"abcdefgh\ti", "abcdefgh        i"},
		{"\t\t", "                "},
	}
	for _, tt := range tests {
		r := NewRow(tt.text)
		assert.Equal(t, tt.render, string(r.GetRender()), "text %q", tt.text)
		assert.Len(t, r.GetColors(), r.RenderLength())
	}
}

func TestCxToRx(t *testing.T) {
	r := NewRow("a\tb\tc")
	assert.Equal(t, 0, r.CxToRx(0))
	assert.Equal(t, 1, r.CxToRx(1))
	assert.Equal(t, 8, r.CxToRx(2))
	assert.Equal(t, 9, r.CxToRx(3))
	assert.Equal(t, 16, r.CxToRx(4))
	assert.Equal(t, 17, r.CxToRx(5))
}

func TestRxToCxRoundTrip(t *testing.T) {
	lines := []string{
		"",
		"plain text",
		"\tindented",
		"a\tb\tc",
		"\t\t\tdeep",
		"1234567\t8",
		"12345678\t9",
		"x\t\ty\tz\t",
		"héllo\twörld",
	}
	for _, line := range lines {
		r := NewRow(line)
		for cx := 0; cx <= r.Length(); cx++ {
			assert.Equal(t, cx, r.RxToCx(r.CxToRx(cx)), "line %q cx %d", line, cx)
		}
	}
}

func TestRxToCxInsideTab(t *testing.T) {
	r := NewRow("a\tb")
	// rendered columns 1 through 7 are padding of the tab at column 1
	for rx := 1; rx < 8; rx++ {
		assert.Equal(t, 1, r.RxToCx(rx), "rx %d", rx)
	}
	assert.Equal(t, 2, r.RxToCx(8))
	assert.Equal(t, 3, r.RxToCx(100))
}

func TestRowEdits(t *testing.T) {
	r := NewRow("hello")
	r.insertChar(5, '!')
	assert.Equal(t, "hello!", r.GetString())
	r.insertChar(0, '\t')
	assert.Equal(t, "        hello!", string(r.GetRender()))
	assert.Equal(t, '\t', r.deleteChar(0))
	assert.Equal(t, rune(0), r.deleteChar(99))

	tail := r.split(2)
	assert.Equal(t, "he", r.GetString())
	assert.Equal(t, "llo!", tail.GetString())

	r.appendText(tail.GetText())
	assert.Equal(t, "hello!", r.GetString())
	assert.Len(t, r.GetColors(), r.RenderLength())
}
