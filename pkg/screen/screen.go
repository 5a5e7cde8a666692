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

// Package screen connects the editor to the terminal with termbox.
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	kilo "github.com/timburks/kilo/pkg/types"
)

// A Renderer draws a frame of a given size.
type Renderer interface {
	SetSize(size kilo.Size)
	Render(d kilo.Display)
}

// The Screen owns the terminal between NewScreen and Close.
type Screen struct {
	size kilo.Size // screen size
}

// NewScreen puts the terminal into raw mode. Callers must Close the screen
// on every exit path to give the terminal back.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initialize terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	s := &Screen{}
	s.size = s.Size()
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Size returns the current terminal size.
func (s *Screen) Size() kilo.Size {
	cols, rows := termbox.Size()
	return kilo.Size{Rows: rows, Cols: cols}
}

func (s *Screen) Render(r Renderer) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	s.size = s.Size()
	r.SetSize(s.size)
	r.Render(s)
	return termbox.Flush()
}

func (s *Screen) SetCell(col, row int, c rune, style kilo.Style) {
	fg, bg := attributes(style)
	termbox.SetCell(col, row, c, fg, bg)
}

func (s *Screen) SetCursor(p kilo.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func attributes(style kilo.Style) (termbox.Attribute, termbox.Attribute) {
	fg := color(style.Highlight)
	if style.Dim {
		fg = termbox.ColorBlue
	}
	if style.Reverse {
		fg |= termbox.AttrReverse
	}
	return fg, termbox.ColorDefault
}

func color(h kilo.Highlight) termbox.Attribute {
	switch h {
	case kilo.HighlightNumber:
		return termbox.ColorRed
	case kilo.HighlightString:
		return termbox.ColorMagenta
	case kilo.HighlightComment, kilo.HighlightBlockComment:
		return termbox.ColorCyan
	case kilo.HighlightKeyword:
		return termbox.ColorYellow
	case kilo.HighlightKeywordAlt:
		return termbox.ColorGreen
	case kilo.HighlightMatch:
		return termbox.ColorBlue
	default:
		return termbox.ColorDefault
	}
}

// GetNextEvent blocks until the terminal produces an event.
func (s *Screen) GetNextEvent() *kilo.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return decode(event)
}

func decode(event termbox.Event) *kilo.Event {
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return &kilo.Event{Type: kilo.EventKey, Ch: event.Ch}
		}
		switch event.Key {
		case termbox.KeySpace:
			return &kilo.Event{Type: kilo.EventKey, Ch: ' '}
		case termbox.KeyTab:
			return &kilo.Event{Type: kilo.EventKey, Ch: '\t'}
		}
		return &kilo.Event{Type: kilo.EventKey, Key: key(event.Key)}
	case termbox.EventResize:
		return &kilo.Event{Type: kilo.EventResize, Size: kilo.Size{Rows: event.Height, Cols: event.Width}}
	default:
		return &kilo.Event{Type: kilo.EventNone}
	}
}

func key(k termbox.Key) kilo.Key {
	switch k {
	case termbox.KeyArrowDown:
		return kilo.KeyArrowDown
	case termbox.KeyArrowLeft:
		return kilo.KeyArrowLeft
	case termbox.KeyArrowRight:
		return kilo.KeyArrowRight
	case termbox.KeyArrowUp:
		return kilo.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return kilo.KeyBackspace
	case termbox.KeyDelete:
		return kilo.KeyDelete
	case termbox.KeyEnter:
		return kilo.KeyEnter
	case termbox.KeyEsc:
		return kilo.KeyEsc
	case termbox.KeyCtrlA, termbox.KeyHome:
		return kilo.KeyHome
	case termbox.KeyCtrlE, termbox.KeyEnd:
		return kilo.KeyEnd
	case termbox.KeyPgup:
		return kilo.KeyPgup
	case termbox.KeyPgdn:
		return kilo.KeyPgdn
	case termbox.KeyCtrlS:
		return kilo.KeySave
	case termbox.KeyCtrlF:
		return kilo.KeyFind
	case termbox.KeyCtrlR:
		return kilo.KeyFindBackward
	case termbox.KeyCtrlQ:
		return kilo.KeyQuit
	case termbox.KeyCtrlL:
		return kilo.KeyRefresh
	default:
		return kilo.KeyUnsupported
	}
}
