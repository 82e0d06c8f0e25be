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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/debugger/terminal/plainterm"
	"github.com/jetsetilly/mc6809/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &strings.Builder{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\n"), out)

	buf := make([]byte, 32)
	n, err := pt.TermRead(buf, terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "step\n")
	test.ExpectFailure(t, pt.IsInteractive())

	pt.TermPrintLine(terminal.StyleEcho, "step")
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, out.String(), "ok\n* bad\n")

	out.Reset()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, out.String(), "* bad\n")
}
