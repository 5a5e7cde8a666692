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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/timburks/kilo/internal/logging"
	"github.com/timburks/kilo/pkg/commander"
	"github.com/timburks/kilo/pkg/config"
	"github.com/timburks/kilo/pkg/screen"
	kilo "github.com/timburks/kilo/pkg/types"
)

var (
	ErrNotTerminal  = errors.New("kilo must be run in a terminal")
	ErrNoWindowSize = errors.New("unable to get window size")
)

// checkTerminal verifies that stdin and stdout are terminals and returns the window size.
func checkTerminal() (kilo.Size, error) {
	out := os.Stdout.Fd()
	if !isatty.IsTerminal(out) && !isatty.IsCygwinTerminal(out) {
		return kilo.Size{}, ErrNotTerminal
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return kilo.Size{}, ErrNotTerminal
	}
	cols, rows, err := term.GetSize(int(out))
	if err != nil {
		return kilo.Size{}, fmt.Errorf("%w: %w", ErrNoWindowSize, err)
	}
	if cols <= 0 || rows <= 0 {
		return kilo.Size{}, ErrNoWindowSize
	}
	return kilo.Size{Rows: rows, Cols: cols}, nil
}

func runEditor(ctx context.Context, cfg *config.Config, path string) (err error) {
	logger := logging.FromContext(ctx)
	size, err := checkTerminal()
	if err != nil {
		return err
	}
	logger.Debug("terminal", logging.FieldSize, size)

	// The editor manages all text manipulation.
	e := newEditor(ctx, cfg, path)
	if e.GetStatusMessage() == "" {
		e.SetStatusMessage(commander.HelpMessage)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)
	c.SetLogger(logger)
	c.SetDebug(cfg.LogLevel == "debug")

	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()
	// runs before Close: an internal failure ends the session with an error
	defer func() {
		if r := recover(); r != nil {
			logger.Error("internal error", logging.FieldError, r, logging.FieldCursor, e.GetCursor())
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	for c.IsRunning() {
		if err := s.Render(e); err != nil {
			return err
		}
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			logger.Warn("command failed", logging.FieldError, err)
		}
	}
	return nil
}

// runScript edits the file with a lisp script. Nothing is saved unless the script saves.
func runScript(ctx context.Context, cfg *config.Config, path, script string, out io.Writer) error {
	source, err := os.ReadFile(script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	e := newEditor(ctx, cfg, path)
	c := commander.NewCommander(e)
	c.SetLogger(logging.FromContext(ctx))

	value, err := c.EvalScript(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", script, err)
	}
	if value != "" {
		fmt.Fprintln(out, value)
	}
	if msg := e.GetStatusMessage(); msg != "" {
		logging.FromContext(ctx).Info("script finished", "message", msg)
	}
	return nil
}
