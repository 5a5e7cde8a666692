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

package syntax

// C returns the profile for C and C++.
func C() *Profile {
	return &Profile{
		Name:        "C",
		Extensions:  []string{"c", "h", "cpp"},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Keywords: Keywords(
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		),
		Flags: HighlightNumbers | HighlightStrings,
	}
}

// Rust returns the profile for Rust.
func Rust() *Profile {
	return &Profile{
		Name:        "Rust",
		Extensions:  []string{"rs"},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Keywords: Keywords(
			"as", "break", "const", "continue", "crate", "else", "enum", "extern", "false|", "fn", "for",
			"if", "impl", "in", "let", "loop", "match", "mod", "move", "mut", "pub", "ref|", "return",
			"self|", "Self|", "static", "struct", "super", "trait", "true|", "type", "unsafe", "use",
			"where", "while", "async", "await",
		),
		Flags: HighlightNumbers | HighlightStrings,
	}
}

// Ruby returns the profile for Ruby.
func Ruby() *Profile {
	return &Profile{
		Name:        "Ruby",
		Extensions:  []string{"rb"},
		LineComment: "#",
		BlockStart:  "=begin",
		BlockEnd:    "=end",
		Keywords: Keywords(
			"__ENCODING__|", "__LINE__|", "__FILE__|", "BEGIN|", "END|",
			"alias", "and", "begin", "break", "case", "class", "def", "defined?", "do",
			"else", "elsif", "end", "ensure", "false|", "for", "if", "in", "module",
			"next", "nil|", "not", "or", "redo", "rescue", "retry", "return", "self|",
			"super", "then", "true|", "undef", "unless", "until", "when", "while", "yield",
		),
		Flags: HighlightNumbers | HighlightStrings,
	}
}

// Go returns the profile for Go.
func Go() *Profile {
	return &Profile{
		Name:        "Go",
		Extensions:  []string{"go"},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Keywords: Keywords(
			"break", "default", "func", "interface", "select", "case", "defer", "go", "map",
			"struct", "chan", "else", "goto", "package", "switch", "const", "fallthrough",
			"if", "range", "type", "continue", "for", "import", "return", "var",
			"bool|", "byte|", "error|", "int|", "int64|", "rune|", "string|", "uint|",
			"float64|", "nil|", "true|", "false|", "iota|",
		),
		Flags: HighlightNumbers | HighlightStrings,
	}
}

// DefaultTable returns a table containing all of the built-in languages.
func DefaultTable() *Table {
	return NewTable(C(), Rust(), Ruby(), Go())
}
