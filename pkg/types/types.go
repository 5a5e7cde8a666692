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

// Package types contains the values shared by the editor, the commander
// and the screen.
package types

// A Point is a position in a document or on the screen.
type Point struct {
	Row int
	Col int
}

// A Size is an extent in rows and columns.
// Windows also use it for their scroll offsets.
type Size struct {
	Rows int
	Cols int
}

// Move directions
const (
	MoveUp = iota
	MoveDown
	MoveRight
	MoveLeft
)

// Highlight is the color class of a single rendered character.
type Highlight uint8

const (
	HighlightNormal Highlight = iota
	HighlightNumber
	HighlightString
	HighlightComment
	HighlightBlockComment
	HighlightKeyword
	HighlightKeywordAlt
	HighlightMatch
)

func (h Highlight) String() string {
	switch h {
	case HighlightNormal:
		return "normal"
	case HighlightNumber:
		return "number"
	case HighlightString:
		return "string"
	case HighlightComment:
		return "comment"
	case HighlightBlockComment:
		return "block-comment"
	case HighlightKeyword:
		return "keyword"
	case HighlightKeywordAlt:
		return "keyword-alt"
	case HighlightMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Style is what a display needs to draw one cell.
// Reverse is used for the status bar.
type Style struct {
	Highlight Highlight
	Reverse   bool
	Dim       bool
}

// A Display is anything that can receive a rendered frame.
type Display interface {
	SetCell(col, row int, c rune, style Style)
	SetCursor(p Point)
}

// Key identifies a decoded, non-character key or key combination.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEsc
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeySave
	KeyFind
	KeyFindBackward
	KeyQuit
	KeyRefresh
	KeyUnsupported
)

// Event types
const (
	EventKey = iota
	EventResize
	EventNone
)

// An Event is one decoded input event.
// Printable characters (including tab and space) arrive in Ch with Key == KeyNone.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Size Size
}
