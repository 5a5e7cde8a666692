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

// Package syntax describes the languages that the editor can highlight.
// A Table is built once at startup and never modified; the editor
// asks it for the Profile that matches a file.
package syntax

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Flags select the optional parts of highlighting.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// A Keyword is highlighted as a primary keyword or, if Alt is set,
// with the alternate keyword color (typically used for types and constants).
type Keyword struct {
	Word string
	Alt  bool
}

// A Profile describes the lexical conventions of one language.
// Empty comment markers disable the corresponding comment style.
type Profile struct {
	Name        string
	Extensions  []string
	LineComment string
	BlockStart  string
	BlockEnd    string
	Keywords    []Keyword
	Flags       Flags
}

// Has returns true if all of the specified flags are set.
func (p *Profile) Has(f Flags) bool {
	return p != nil && p.Flags&f == f
}

// HasBlockComments returns true if the profile supports block comments.
func (p *Profile) HasBlockComments() bool {
	return p != nil && p.BlockStart != "" && p.BlockEnd != ""
}

// Keywords builds a keyword list from words; a trailing "|" marks an alternate keyword.
func Keywords(words ...string) []Keyword {
	keywords := make([]Keyword, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if strings.HasSuffix(w, "|") {
			keywords = append(keywords, Keyword{Word: strings.TrimSuffix(w, "|"), Alt: true})
		} else {
			keywords = append(keywords, Keyword{Word: w})
		}
	}
	return keywords
}

// A Table maps file extensions and language names to profiles.
type Table struct {
	byExtension map[string]*Profile
	byName      map[string]*Profile
}

// NewTable builds a table. When two profiles claim the same extension the first one wins.
func NewTable(profiles ...*Profile) *Table {
	t := &Table{
		byExtension: make(map[string]*Profile),
		byName:      make(map[string]*Profile),
	}
	for _, p := range profiles {
		t.byName[strings.ToLower(p.Name)] = p
		for _, ext := range p.Extensions {
			ext = strings.ToLower(strings.TrimPrefix(ext, "."))
			if _, ok := t.byExtension[ext]; !ok {
				t.byExtension[ext] = p
			}
		}
	}
	return t
}

// ForExtension returns the profile for an extension ("c" or ".c"), or nil.
func (t *Table) ForExtension(ext string) *Profile {
	return t.byExtension[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// ForName returns the profile with a language name, ignoring case, or nil.
func (t *Table) ForName(name string) *Profile {
	return t.byName[strings.ToLower(name)]
}

// ForFile selects a profile for a file.
// The extension is tried first. Files without a known extension fall back
// to language detection on well-known file names (Rakefile, Gemfile...)
// and on the shebang line of the content.
func (t *Table) ForFile(name string, content []byte) *Profile {
	if name == "" && len(content) == 0 {
		return nil
	}
	if ext := filepath.Ext(name); ext != "" {
		if p := t.ForExtension(ext); p != nil {
			return p
		}
	}
	if name != "" {
		if lang, safe := enry.GetLanguageByFilename(filepath.Base(name)); safe && lang != "" {
			if p := t.ForName(lang); p != nil {
				return p
			}
		}
	}
	if len(content) > 0 {
		if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
			if p := t.ForName(lang); p != nil {
				return p
			}
		}
	}
	return nil
}
