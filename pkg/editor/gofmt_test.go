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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFormatsGo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\nfunc  main( ) {}\n"), 0o600))

	e := NewEditor(WithGoFormat(true))
	require.NoError(t, e.ReadFile(path))
	e.InsertChar(' ')
	require.NoError(t, e.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n\nfunc main() {}\n", string(data))
	assert.Equal(t, []string{"package main", "", "func main() {}"}, e.GetBuffer().Lines())
	assert.False(t, e.GetBuffer().IsDirty())
}

func TestSaveKeepsInvalidGo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\nfunc {\n"), 0o600))

	e := NewEditor(WithGoFormat(true))
	require.NoError(t, e.ReadFile(path))
	require.NoError(t, e.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\nfunc {\n", string(data))
}

func TestSaveWithoutFormatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\nfunc  main( ) {}\n"), 0o600))

	e := NewEditor()
	require.NoError(t, e.ReadFile(path))
	require.NoError(t, e.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\nfunc  main( ) {}\n", string(data))
}
