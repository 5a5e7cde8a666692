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
	"unicode"

	"github.com/timburks/kilo/pkg/syntax"
	kilo "github.com/timburks/kilo/pkg/types"
)

const separators = ",.()+-/*=~%<>[];"

func isSeparator(c rune) bool {
	return c == 0 || unicode.IsSpace(c) || strings.ContainsRune(separators, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// The Highlighter classifies the rendered characters of rows for one language.
// It keeps no state between rows: the state carried from one row to the
// next (an unterminated block comment) is passed in and returned.
type Highlighter struct {
	profile     *syntax.Profile
	lineComment []rune
	blockStart  []rune
	blockEnd    []rune
	keywords    [][]rune
}

func NewHighlighter(p *syntax.Profile) *Highlighter {
	h := &Highlighter{profile: p}
	if p == nil {
		return h
	}
	h.lineComment = []rune(p.LineComment)
	if p.HasBlockComments() {
		h.blockStart = []rune(p.BlockStart)
		h.blockEnd = []rune(p.BlockEnd)
	}
	for _, k := range p.Keywords {
		h.keywords = append(h.keywords, []rune(k.Word))
	}
	return h
}

func (h *Highlighter) Profile() *syntax.Profile {
	return h.profile
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) == 0 || len(prefix) > len(s) {
		return false
	}
	for i, c := range prefix {
		if s[i] != c {
			return false
		}
	}
	return true
}

func fill(colors []kilo.Highlight, from, n int, h kilo.Highlight) {
	for j := from; j < from+n && j < len(colors); j++ {
		colors[j] = h
	}
}

// Scan writes the classification of render into colors, starting in a block
// comment if inComment is set. It returns true if the row ends inside a block comment.
// colors must be as long as render.
func (h *Highlighter) Scan(render []rune, colors []kilo.Highlight, inComment bool) bool {
	for i := range colors {
		colors[i] = kilo.HighlightNormal
	}
	p := h.profile
	if p == nil {
		return false
	}

	prevSep := true
	var quote rune
	inBlock := inComment && len(h.blockStart) > 0

	i := 0
	for i < len(render) {
		c := render[i]
		prevHighlight := kilo.HighlightNormal
		if i > 0 {
			prevHighlight = colors[i-1]
		}

		if quote == 0 && !inBlock && hasPrefix(render[i:], h.lineComment) {
			fill(colors, i, len(render)-i, kilo.HighlightComment)
			break
		}

		if quote == 0 && len(h.blockStart) > 0 {
			if inBlock {
				if hasPrefix(render[i:], h.blockEnd) {
					fill(colors, i, len(h.blockEnd), kilo.HighlightBlockComment)
					i += len(h.blockEnd)
					inBlock = false
					prevSep = true
					continue
				}
				colors[i] = kilo.HighlightBlockComment
				i++
				continue
			}
			if hasPrefix(render[i:], h.blockStart) {
				fill(colors, i, len(h.blockStart), kilo.HighlightBlockComment)
				i += len(h.blockStart)
				inBlock = true
				continue
			}
		}

		if p.Has(syntax.HighlightStrings) {
			if quote != 0 {
				colors[i] = kilo.HighlightString
				if c == '\\' && i+1 < len(render) {
					colors[i+1] = kilo.HighlightString
					i += 2
					continue
				}
				if c == quote {
					quote = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				quote = c
				colors[i] = kilo.HighlightString
				i++
				continue
			}
		}

		if p.Has(syntax.HighlightNumbers) {
			if (isDigit(c) && (prevSep || prevHighlight == kilo.HighlightNumber)) ||
				(c == '.' && prevHighlight == kilo.HighlightNumber) {
				colors[i] = kilo.HighlightNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, alt := h.matchKeyword(render[i:]); n > 0 {
				class := kilo.HighlightKeyword
				if alt {
					class = kilo.HighlightKeywordAlt
				}
				fill(colors, i, n, class)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}
	return inBlock
}

// matchKeyword returns the length of the keyword at the start of s, if it
// is followed by a separator or the end of the row.
func (h *Highlighter) matchKeyword(s []rune) (int, bool) {
	for k, word := range h.keywords {
		n := len(word)
		if !hasPrefix(s, word) {
			continue
		}
		if n == len(s) || isSeparator(s[n]) {
			return n, h.profile.Keywords[k].Alt
		}
	}
	return 0, false
}
