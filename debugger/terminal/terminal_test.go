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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.NewPrompt(0x1000, "LDA", "#$42")
	test.ExpectEquality(t, p.String(), "[ 1000 LDA #$42 ] >> ")

	p = terminal.NewPrompt(0x1002, "NOP", "")
	test.ExpectEquality(t, p.String(), "[ 1002 NOP ] >> ")

	p = terminal.Prompt{Running: true}
	test.ExpectEquality(t, p.String(), "[ running ] > ")
}

func TestStyle(t *testing.T) {
	test.ExpectSuccess(t, terminal.StylePrompt.IsPrompt())
	test.ExpectFailure(t, terminal.StyleError.IsPrompt())
}
