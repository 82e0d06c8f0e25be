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

// Package colorterm implements the Terminal interface for the monitor. It
// supports color output, history and tab completion.
package colorterm

import (
	"bufio"
	"os"
	"unicode"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/debugger/terminal"
	"github.com/jetsetilly/mc6809/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/mc6809/debugger/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements the monitor's terminal with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader        *bufio.Reader
	history       []string
	tabCompletion terminal.TabCompletion

	silenced bool
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	ed := newEditor(ct.history)

	for {
		// redraw the entire line and place the cursor
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrintLine(terminal.StylePrompt, prompt.String())
		ct.TermPrint(ed.String())
		ct.TermPrint(ansi.CursorMove(ed.cursor - len(ed.line)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return 0, err
		}

		if events != nil {
			select {
			case <-events.IntEvents:
				ct.TermPrint("\r\n")
				return 0, curated.Errorf(terminal.UserInterrupt)
			default:
			}
		}

		if ct.tabCompletion != nil {
			if r == easyterm.KeyTab {
				ed.complete(ct.tabCompletion)
				continue
			}
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(ed.line) == 0 {
				ct.TermPrint("\r\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}
			ed.delete()

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			_ = easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := ed.commit()
			ct.history = ed.history
			ct.TermPrint("\r\n")
			return copy(buffer, s), nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			ed.backspace()

		case easyterm.KeyEsc:
			if err := ct.escapeSequence(ed); err != nil {
				return 0, err
			}

		default:
			if unicode.IsPrint(r) {
				ed.insert(r)
			}
		}
	}
}

func (ct *ColorTerminal) escapeSequence(ed *editor) error {
	r, _, err := ct.reader.ReadRune()
	if err != nil {
		return err
	}
	if r != easyterm.EscCursor {
		return nil
	}

	r, _, err = ct.reader.ReadRune()
	if err != nil {
		return err
	}

	switch r {
	case easyterm.CursorUp:
		ed.up()
	case easyterm.CursorDown:
		ed.down()
	case easyterm.CursorForward:
		ed.right()
	case easyterm.CursorBackward:
		ed.left()
	case easyterm.CursorHome:
		ed.home()
	case easyterm.CursorEnd:
		ed.end()
	case easyterm.CursorDelete:
		// discard the trailing tilde
		if _, _, err := ct.reader.ReadRune(); err != nil {
			return err
		}
		ed.delete()
	}

	return nil
}
