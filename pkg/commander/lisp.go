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
	"errors"
	"fmt"

	"github.com/steelseries/golisp"

	"github.com/timburks/kilo/internal/logging"
	"github.com/timburks/kilo/pkg/editor"
	kilo "github.com/timburks/kilo/pkg/types"
)

// ErrNoCommander is returned by editor primitives evaluated outside a commander.
var ErrNoCommander = errors.New("no active commander")

// current is the commander that evaluates lisp expressions.
// Primitives are registered once, globally, so they find the editor here.
var current *Commander

func init() {
	motion("up", func(e *editor.Editor, n int) { e.MoveCursor(kilo.MoveUp, n) })
	motion("down", func(e *editor.Editor, n int) { e.MoveCursor(kilo.MoveDown, n) })
	motion("left", func(e *editor.Editor, n int) { e.MoveCursor(kilo.MoveLeft, n) })
	motion("right", func(e *editor.Editor, n int) { e.MoveCursor(kilo.MoveRight, n) })
	motion("page-up", func(e *editor.Editor, n int) { repeat(n, e.PageUp) })
	motion("page-down", func(e *editor.Editor, n int) { repeat(n, e.PageDown) })
	motion("insert-newline", func(e *editor.Editor, n int) { repeat(n, e.InsertNewline) })
	motion("backspace", func(e *editor.Editor, n int) { repeat(n, e.Backspace) })
	motion("delete", func(e *editor.Editor, n int) { repeat(n, e.Delete) })

	command("home", func(c *Commander) error { c.editor.MoveToBeginningOfLine(); return nil })
	command("end", func(c *Commander) error { c.editor.MoveToEndOfLine(); return nil })
	command("save", func(c *Commander) error {
		err := c.save()
		if c.batch {
			return err
		}
		// the editor has already reported the failure in the message bar
		return nil
	})
	command("quit", func(c *Commander) error { c.quit(); return nil })

	golisp.MakePrimitiveFunction("find", "*", findImpl(editor.Forward))
	golisp.MakePrimitiveFunction("find-backward", "*", findImpl(editor.Backward))
	golisp.MakePrimitiveFunction("save-as", "1", SaveAsImpl)
	golisp.MakePrimitiveFunction("goto-line", "1", GotoLineImpl)
	golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	golisp.MakePrimitiveFunction("message", "1", MessageImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
}

func repeat(n int, f func()) {
	for i := 0; i < n; i++ {
		f()
	}
}

// motion registers a primitive that takes an optional repeat count.
func motion(name string, f func(e *editor.Editor, n int)) {
	golisp.MakePrimitiveFunction(name, "*", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, ErrNoCommander
		}
		n := 1
		if golisp.Length(args) > 0 {
			var err error
			if n, err = intArg(name, golisp.Car(args)); err != nil {
				return nil, err
			}
		}
		f(current.editor, n)
		return nil, nil
	})
}

// command registers a primitive without arguments.
func command(name string, f func(c *Commander) error) {
	golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, ErrNoCommander
		}
		return nil, f(current)
	})
}

func intArg(name string, val *golisp.Data) (int, error) {
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	default:
		return 0, fmt.Errorf("%s requires a number argument", name)
	}
}

func stringArg(name string, val *golisp.Data) (string, error) {
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

// findImpl opens the search prompt, or with an argument searches for it directly.
func findImpl(direction editor.Direction) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, ErrNoCommander
		}
		if golisp.Length(args) == 0 {
			if current.batch {
				return nil, errors.New("find requires a string argument in scripts")
			}
			current.beginSearch(direction)
			return nil, nil
		}
		query, err := stringArg("find", golisp.Car(args))
		if err != nil {
			return nil, err
		}
		s := current.editor.BeginSearch(direction)
		found := s.Find(query, false)
		s.Confirm()
		return golisp.BooleanWithValue(found), nil
	}
}

func SaveAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, ErrNoCommander
	}
	name, err := stringArg("save-as", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return nil, current.editor.SaveAs(name)
}

func GotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, ErrNoCommander
	}
	line, err := intArg("goto-line", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	current.editor.GotoLine(line)
	return nil, nil
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, ErrNoCommander
	}
	text, err := stringArg("insert-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	current.editor.InsertText(text)
	return nil, nil
}

func MessageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, ErrNoCommander
	}
	text, err := stringArg("message", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	current.editor.SetStatusMessage("%s", text)
	return nil, nil
}

// CursorImpl returns the cursor position as "row,col", counting from zero.
func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, ErrNoCommander
	}
	cursor := current.editor.GetCursor()
	return golisp.StringWithValue(fmt.Sprintf("%d,%d", cursor.Row, cursor.Col)), nil
}

// parseEval evaluates a command. Errors are shown in the message bar.
func (c *Commander) parseEval(command string) string {
	current = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		c.logger.Error("command failed", "command", command, logging.FieldError, err)
		c.editor.SetStatusMessage("%s", err.Error())
		return err.Error()
	}
	if value == nil {
		return ""
	}
	return golisp.String(value)
}

// EvalScript evaluates a script in batch mode, without prompts.
// It returns the printed value of the last expression.
func (c *Commander) EvalScript(script string) (string, error) {
	current = c
	c.batch = true
	defer func() { c.batch = false }()

	value, err := golisp.ParseAndEval("(begin " + script + "\n)")
	if err != nil {
		c.logger.Error("script failed", logging.FieldError, err)
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return golisp.String(value), nil
}
