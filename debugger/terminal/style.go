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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// the user input, echoed back to the terminal
	StyleEcho Style = iota

	// the prompt, including the current PC when the CPU is stopped
	StylePrompt

	// information about the CPU or its memory
	StyleCPU

	// disassembly listing
	StyleDisasm

	// entries from the central logger
	StyleLog

	// help messages
	StyleHelp

	// non-error information from a command
	StyleFeedback

	// output from a script
	StyleScript

	// errors
	StyleError
)

// IsPrompt returns true if the style is a prompt. Prompts are not followed by
// a newline.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
