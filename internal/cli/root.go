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

// Package cli provides the command line of kilo.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/timburks/kilo/internal/logging"
	"github.com/timburks/kilo/pkg/config"
	"github.com/timburks/kilo/pkg/editor"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the kilo command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var script string

	rootCmd := &cobra.Command{
		Use:   "kilo [file]",
		Short: "A small terminal text editor",
		Long: `kilo edits one text file in the terminal, with syntax highlighting
for C, Rust, Ruby and Go and incremental search.

Keys: Ctrl-S save, Ctrl-Q quit, Ctrl-F find, Ctrl-R find backward.
With --eval, the file is edited by a lisp script instead, for example
(goto-line 3) (end) (insert-text "x") (save).`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (%s, %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.LogLevel = "debug"
			}
			closer := setupLogging(cfg)
			defer closer.Close()

			ctx := logging.WithLogger(cmd.Context(), logging.Default())
			logging.FromContext(ctx).Info("starting", logging.FieldVersion, info.Version, logging.FieldConfig, configPath)

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if script != "" {
				return runScript(ctx, cfg, path, script, cmd.OutOrStdout())
			}
			return runEditor(ctx, cfg, path)
		},
	}

	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultConfigFile, "path to config file")
	rootCmd.Flags().StringVar(&script, "eval", "", "evaluate a lisp script file instead of starting the editor")

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging points the default logger at the configured file.
// If the file cannot be opened, logs are discarded.
func setupLogging(cfg *config.Config) io.Closer {
	if cfg.LogFile == "" {
		logging.SetLevel(cfg.LogLevel)
		return nopCloser{}
	}
	logger, closer, err := logging.Open(config.ExpandHome(cfg.LogFile), cfg.LogLevel)
	if err != nil {
		logging.SetLevel(cfg.LogLevel)
		return nopCloser{}
	}
	logging.SetDefault(logger)
	return closer
}

func newEditor(ctx context.Context, cfg *config.Config, path string) *editor.Editor {
	e := editor.NewEditor(
		editor.WithMessageTimeout(cfg.Timeout()),
		editor.WithQuitConfirmations(cfg.QuitConfirmations),
		editor.WithGoFormat(cfg.FormatGo),
		editor.WithLogger(logging.FromContext(ctx)),
	)
	if path != "" {
		// failures are shown in the message bar and leave an empty buffer
		if err := e.ReadFile(path); err != nil && !errors.Is(err, editor.ErrFileNotFound) {
			logging.FromContext(ctx).Warn("continuing without file", logging.FieldPath, path, logging.FieldError, err)
		}
	}
	return e
}
