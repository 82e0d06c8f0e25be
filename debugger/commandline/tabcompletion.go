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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	// the input preceding the word being completed
	base string

	matches []string
	match   int

	// the most recent completion. calling Complete() with this value will
	// cycle through the matches
	last string
}

// NewTabCompletion initialises a new TabCompletion instance. Completion
// works best if Reset() is called whenever the input changes by means other
// than the tab key.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word is completed. The
// first call returns the first matching option. Subsequent calls with the
// returned value return the next option.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.last {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.last = tc.base + tc.matches[tc.match] + " "
		return tc.last
	}

	tc.Reset()

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return input
	}

	// the word being completed and its position in the input
	word := ""
	pos := len(fields)
	if !strings.HasSuffix(input, " ") {
		pos--
		word = fields[pos]
	}

	var candidates []string
	if pos == 0 {
		candidates = tc.cmds.Names()
	} else {
		c, ok := tc.cmds.lookup(fields[0])
		if !ok || pos > len(c.args) {
			return input
		}
		candidates = c.args[pos-1].keywords()
	}

	word = strings.ToUpper(word)
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.base = input[:len(input)-len(word)]
	tc.last = tc.base + tc.matches[0] + " "

	return tc.last
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.base = ""
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.last = ""
}
