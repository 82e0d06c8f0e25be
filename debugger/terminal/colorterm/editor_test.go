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
	"strings"
	"testing"

	"github.com/jetsetilly/mc6809/test"
)

type suffixCompletion struct {
	resets int
}

func (c *suffixCompletion) Complete(input string) string {
	if strings.HasPrefix("DISASM", strings.ToUpper(input)) {
		return "DISASM "
	}
	return input
}

func (c *suffixCompletion) Reset() {
	c.resets++
}

func TestEditing(t *testing.T) {
	ed := newEditor(nil)
	for _, r := range "MEMS" {
		ed.insert(r)
	}
	ed.backspace()
	test.ExpectEquality(t, ed.String(), "MEM")

	ed.home()
	ed.insert('X')
	test.ExpectEquality(t, ed.String(), "XMEM")
	ed.left()
	ed.delete()
	test.ExpectEquality(t, ed.String(), "MEM")
	test.ExpectEquality(t, ed.cursor, 0)

	ed.end()
	ed.right()
	test.ExpectEquality(t, ed.cursor, 3)

	// backspace at start of line does nothing
	ed.home()
	ed.backspace()
	test.ExpectEquality(t, ed.String(), "MEM")
}

func TestHistory(t *testing.T) {
	ed := newEditor([]string{"STEP", "RUN"})
	ed.insert('C')

	ed.up()
	test.ExpectEquality(t, ed.String(), "RUN")
	ed.up()
	test.ExpectEquality(t, ed.String(), "STEP")
	ed.up()
	test.ExpectEquality(t, ed.String(), "STEP")

	ed.down()
	ed.down()
	test.ExpectEquality(t, ed.String(), "C")
	ed.down()
	test.ExpectEquality(t, ed.String(), "C")

	test.ExpectEquality(t, ed.commit(), "C")
	test.ExpectEquality(t, len(ed.history), 3)

	// repeats are not added
	ed = newEditor(ed.history)
	ed.insert('C')
	ed.commit()
	test.ExpectEquality(t, len(ed.history), 3)
}

func TestCompletion(t *testing.T) {
	ed := newEditor(nil)
	for _, r := range "dis 10" {
		ed.insert(r)
	}

	// move the cursor to the end of the first word
	for range " 10" {
		ed.left()
	}

	ed.complete(&suffixCompletion{})
	test.ExpectEquality(t, ed.String(), "DISASM  10")
	test.ExpectEquality(t, ed.cursor, 7)
}
