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

package commander

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/timburks/kilo/internal/logging"
	"github.com/timburks/kilo/pkg/editor"
	kilo "github.com/timburks/kilo/pkg/types"
)

// Commander modes
const (
	ModeEdit = iota
	ModeSaveAs
	ModeSearch
	ModeQuit
)

const (
	HelpMessage    = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-R = find backward"
	saveAsPrompt   = "Save as: %s (ESC to cancel)"
	searchPrompt   = "Search: %s (Use ESC/Arrows/Enter)"
	saveAbortedMsg = "Save aborted"
)

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor     *editor.Editor
	batch      bool            // true if commander is running a lisp script
	mode       int             // editor mode
	debug      bool            // debug mode logs every event
	promptText string          // text typed at the current prompt
	snapshot   editor.Snapshot // window state when the save-as prompt opened
	search     *editor.Search  // search in progress
	logger     *log.Logger
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: ModeEdit, logger: logging.Default()}
}

func (c *Commander) SetLogger(logger *log.Logger) {
	c.logger = logger
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) GetModeName() string {
	switch c.mode {
	case ModeEdit:
		return "edit"
	case ModeSaveAs:
		return "save-as"
	case ModeSearch:
		return "search"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GetPromptText returns the text typed at the current prompt.
func (c *Commander) GetPromptText() string {
	return c.promptText
}

func (c *Commander) IsRunning() bool {
	return c.mode != ModeQuit
}

func (c *Commander) ProcessEvent(event *kilo.Event) error {
	if c.debug {
		c.logger.Debug("event", "type", event.Type, "key", event.Key, "ch", string(event.Ch), "mode", c.GetModeName())
	}
	switch event.Type {
	case kilo.EventKey:
		return c.processKey(event)
	case kilo.EventResize:
		return c.processResize(event)
	default:
		return nil
	}
}

func (c *Commander) processResize(event *kilo.Event) error {
	c.editor.SetSize(event.Size)
	return nil
}

func (c *Commander) processKey(event *kilo.Event) error {
	var err error
	switch c.mode {
	case ModeEdit:
		err = c.processKeyEditMode(event)
	case ModeSaveAs:
		err = c.processKeySaveAsMode(event)
	case ModeSearch:
		err = c.processKeySearchMode(event)
	}
	return err
}

func (c *Commander) processKeyEditMode(event *kilo.Event) error {
	key := event.Key
	ch := event.Ch

	// any other key rearms the unsaved-changes guard
	if key != kilo.KeyQuit {
		c.editor.ResetQuit()
	}
	if key != kilo.KeyNone {
		switch key {
		case kilo.KeyEnter:
			c.parseEval("(insert-newline)")
		case kilo.KeyBackspace:
			c.parseEval("(backspace)")
		case kilo.KeyDelete:
			c.parseEval("(delete)")
		case kilo.KeyArrowUp:
			c.parseEval("(up)")
		case kilo.KeyArrowDown:
			c.parseEval("(down)")
		case kilo.KeyArrowLeft:
			c.parseEval("(left)")
		case kilo.KeyArrowRight:
			c.parseEval("(right)")
		case kilo.KeyHome:
			c.parseEval("(home)")
		case kilo.KeyEnd:
			c.parseEval("(end)")
		case kilo.KeyPgup:
			c.parseEval("(page-up)")
		case kilo.KeyPgdn:
			c.parseEval("(page-down)")
		case kilo.KeySave:
			c.parseEval("(save)")
		case kilo.KeyFind:
			c.parseEval("(find)")
		case kilo.KeyFindBackward:
			c.parseEval("(find-backward)")
		case kilo.KeyQuit:
			c.parseEval("(quit)")
		case kilo.KeyEsc, kilo.KeyRefresh, kilo.KeyUnsupported:
		}
		return nil
	}
	if ch != 0 {
		c.editor.InsertChar(ch)
	}
	return nil
}

// save writes the buffer, asking for a name if it has none.
func (c *Commander) save() error {
	e := c.editor
	if e.GetFileName() != "" {
		return e.Save()
	}
	if c.batch {
		return editor.ErrNoFileName
	}
	c.beginPrompt(ModeSaveAs)
	return nil
}

func (c *Commander) quit() {
	if c.editor.RequestQuit() {
		c.mode = ModeQuit
	}
}

func (c *Commander) beginPrompt(mode int) {
	c.mode = mode
	c.promptText = ""
	c.logger.Debug("prompt started", logging.FieldPrompt, c.GetModeName())
	if mode == ModeSaveAs {
		c.snapshot = c.editor.Snapshot()
	}
	c.showPrompt()
}

func (c *Commander) endPrompt() {
	c.logger.Debug("prompt finished", logging.FieldPrompt, c.GetModeName())
	c.mode = ModeEdit
	c.promptText = ""
	c.search = nil
	c.editor.ClearPrompt()
}

func (c *Commander) showPrompt() {
	switch c.mode {
	case ModeSaveAs:
		c.editor.SetPrompt(saveAsPrompt, c.promptText)
	case ModeSearch:
		c.editor.SetPrompt(searchPrompt, c.promptText)
	}
}

// editPrompt applies a key to the prompt text and returns true if the text changed.
func (c *Commander) editPrompt(event *kilo.Event) bool {
	switch {
	case event.Key == kilo.KeyBackspace || event.Key == kilo.KeyDelete:
		if c.promptText == "" {
			return false
		}
		text := []rune(c.promptText)
		c.promptText = string(text[:len(text)-1])
		return true
	case event.Key == kilo.KeyNone && event.Ch != 0:
		c.promptText += string(event.Ch)
		return true
	}
	return false
}

func (c *Commander) processKeySaveAsMode(event *kilo.Event) error {
	e := c.editor
	switch event.Key {
	case kilo.KeyEsc:
		e.Restore(c.snapshot)
		c.endPrompt()
		e.SetStatusMessage(saveAbortedMsg)
		return nil
	case kilo.KeyEnter:
		if c.promptText == "" {
			return nil
		}
		name := c.promptText
		c.endPrompt()
		return e.SaveAs(name)
	}
	if c.editPrompt(event) {
		c.showPrompt()
	}
	return nil
}

func (c *Commander) beginSearch(direction editor.Direction) {
	c.search = c.editor.BeginSearch(direction)
	c.beginPrompt(ModeSearch)
}

func (c *Commander) processKeySearchMode(event *kilo.Event) error {
	e := c.editor
	s := c.search
	switch event.Key {
	case kilo.KeyEsc:
		s.Cancel()
		c.endPrompt()
		e.SetStatusMessage("")
		return nil
	case kilo.KeyEnter:
		s.Confirm()
		row, found := s.LastMatch()
		c.logger.Debug("search confirmed", logging.FieldQuery, c.promptText, "direction", s.GetDirection(), "found", found, "row", row)
		c.endPrompt()
		e.SetStatusMessage("")
		return nil
	case kilo.KeyArrowRight, kilo.KeyArrowDown:
		s.SetDirection(editor.Forward)
		s.Find(c.promptText, true)
	case kilo.KeyArrowLeft, kilo.KeyArrowUp:
		s.SetDirection(editor.Backward)
		s.Find(c.promptText, true)
	default:
		if c.editPrompt(event) {
			s.Find(c.promptText, false)
		}
	}
	c.showPrompt()
	return nil
}

// String describes the commander state for logs.
func (c *Commander) String() string {
	return fmt.Sprintf("mode=%s prompt=%q", c.GetModeName(), c.promptText)
}
