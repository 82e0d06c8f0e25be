// This file is part of mc6809.
//
// mc6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mc6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mc6809.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"github.com/jetsetilly/mc6809/debugger/terminal"
)

// editor is the line editing state for a single call to TermRead(). It is
// independent of the terminal so that editing can be tested.
type editor struct {
	line   []rune
	cursor int

	history []string

	// position in the history. equal to len(history) when the line is not a
	// history entry
	hidx int

	// the line as it was before browsing the history
	stash []rune
}

func newEditor(history []string) *editor {
	return &editor{
		history: history,
		hidx:    len(history),
	}
}

func (ed *editor) String() string {
	return string(ed.line)
}

// editing the line detaches it from the history
func (ed *editor) edited() {
	ed.hidx = len(ed.history)
}

func (ed *editor) insert(r rune) {
	ed.line = append(ed.line, 0)
	copy(ed.line[ed.cursor+1:], ed.line[ed.cursor:])
	ed.line[ed.cursor] = r
	ed.cursor++
	ed.edited()
}

func (ed *editor) backspace() {
	if ed.cursor == 0 {
		return
	}
	ed.line = append(ed.line[:ed.cursor-1], ed.line[ed.cursor:]...)
	ed.cursor--
	ed.edited()
}

func (ed *editor) delete() {
	if ed.cursor >= len(ed.line) {
		return
	}
	ed.line = append(ed.line[:ed.cursor], ed.line[ed.cursor+1:]...)
	ed.edited()
}

func (ed *editor) left() {
	if ed.cursor > 0 {
		ed.cursor--
	}
}

func (ed *editor) right() {
	if ed.cursor < len(ed.line) {
		ed.cursor++
	}
}

func (ed *editor) home() {
	ed.cursor = 0
}

func (ed *editor) end() {
	ed.cursor = len(ed.line)
}

func (ed *editor) set(s []rune) {
	ed.line = append(ed.line[:0], s...)
	ed.cursor = len(ed.line)
}

func (ed *editor) up() {
	if ed.hidx == 0 {
		return
	}
	if ed.hidx == len(ed.history) {
		ed.stash = append(ed.stash[:0], ed.line...)
	}
	ed.hidx--
	ed.set([]rune(ed.history[ed.hidx]))
}

func (ed *editor) down() {
	if ed.hidx >= len(ed.history) {
		return
	}
	ed.hidx++
	if ed.hidx == len(ed.history) {
		ed.set(ed.stash)
		return
	}
	ed.set([]rune(ed.history[ed.hidx]))
}

// complete the text up to the cursor. the text after the cursor is kept
func (ed *editor) complete(tc terminal.TabCompletion) {
	tail := append([]rune{}, ed.line[ed.cursor:]...)
	c := []rune(tc.Complete(string(ed.line[:ed.cursor])))
	ed.line = append(c, tail...)
	ed.cursor = len(c)
	ed.edited()
}

// commit the line to the history and return it. the history is not updated
// if the line is empty or a repeat of the most recent entry
func (ed *editor) commit() string {
	s := string(ed.line)
	if s == "" {
		return s
	}
	if len(ed.history) > 0 && ed.history[len(ed.history)-1] == s {
		return s
	}
	ed.history = append(ed.history, s)
	return s
}
