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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyEOF            = 4  // end-of-transmission character
	KeyBackspace      = 8  // backspace
	KeyTab            = 9  // horizontal tab
	KeyLineFeed       = 10 // line feed
	KeyCarriageReturn = 13 // carriage return
	KeySuspend        = 26 // substitute character
	KeyEsc            = 27 // escape
	KeyDelete         = 127
)

// list of ASCII codes for characters that can follow KeyEsc
const (
	EscCursor = '['
)

// list of ASCII codes for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorEnd      = 'F'
	CursorHome     = 'H'

	// the delete key is sent as ESC [ 3 ~
	CursorDelete = '3'
)
