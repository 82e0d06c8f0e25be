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

//go:build !windows

package colorterm

import (
	"strings"

	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the input line has already been drawn by TermRead()
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StylePrompt:
		ct.TermPrint(ansi.PenStyles["bold"])
	case terminal.StyleCPU:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleDisasm:
		ct.TermPrint(ansi.DimPens["yellow"])
	case terminal.StyleLog:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleHelp, terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleScript:
		ct.TermPrint(ansi.Pens["green"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	// multi-line output is possible and the terminal may be in raw mode
	ct.TermPrint(strings.ReplaceAll(s, "\n", "\r\n"))
	ct.TermPrint(ansi.NormalPen)

	if !style.IsPrompt() {
		ct.TermPrint("\r\n")
	}
}
