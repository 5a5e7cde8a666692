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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrPermission    = errors.New("permission denied")
	ErrFileRead      = errors.New("read failed")
	ErrFileWrite     = errors.New("write failed")
	ErrInvalidCursor = errors.New("invalid cursor")
)

// DefaultFileMode is used for files that did not exist before they were saved.
const DefaultFileMode os.FileMode = 0644

func classify(kind error, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermission, path, err)
	default:
		return fmt.Errorf("%w: %s: %w", kind, path, err)
	}
}

// ReadLines reads a file into lines with the line endings removed.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify(ErrFileRead, path, err)
	}
	defer f.Close()

	lines := make([]string, 0)
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classify(ErrFileRead, path, err)
		}
	}
	return lines, nil
}

// WriteFile writes content through a temporary file in the same directory
// that is renamed over path. The mode of an existing file is kept.
func WriteFile(path string, content []byte) error {
	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrFileWrite, path)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return classify(ErrFileWrite, path, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return classify(ErrFileWrite, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return classify(ErrFileWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return classify(ErrFileWrite, path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return classify(ErrFileWrite, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return classify(ErrFileWrite, path, err)
	}
	success = true
	return nil
}
