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

// Package editor implements the core text editing functions of kilo.
// A buffer holds the rows of a document; each row keeps its text, the
// text with tabs expanded for display, and a highlight for every
// displayed character. A window shows part of a buffer and owns the
// cursor. The editor ties one buffer and one window to the status and
// message bars and to the file that is being edited.
package editor
