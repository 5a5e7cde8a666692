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
	"bytes"
	"go/format"
	"strings"

	"github.com/timburks/kilo/internal/logging"
)

// gofmt formats Go source. Source with syntax errors is returned unchanged
// along with the error.
func gofmt(source []byte) ([]byte, error) {
	out, err := format.Source(source)
	if err != nil {
		return source, err
	}
	return out, nil
}

// formatBeforeSave formats Go buffers and reloads the formatted rows.
// It returns the bytes that should be written.
func (e *Editor) formatBeforeSave(content []byte) []byte {
	p := e.buffer.GetProfile()
	if !e.formatGo || p == nil || p.Name != "Go" {
		return content
	}
	out, err := gofmt(content)
	if err != nil {
		e.logger.Warn("not formatting", logging.FieldPath, e.buffer.GetFileName(), logging.FieldError, err)
		return content
	}
	if bytes.Equal(out, content) {
		return content
	}
	cursor := e.window.GetCursor()
	e.buffer.Open(strings.Split(strings.TrimSuffix(string(out), "\n"), "\n"))
	e.window.SetCursor(cursor)
	// clean again only once the write succeeds
	e.buffer.dirty = true
	return e.buffer.Bytes()
}
