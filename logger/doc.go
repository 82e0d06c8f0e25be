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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string and are held in a bounded list. Consecutive
// identical entries are collapsed.
//
// Log requests are gated by the Permission interface. The CPU, for example,
// can be given a Permission value that prevents logging while it is being
// driven by the disassembler.
//
//	logger.Logf(logger.Allow, "cpu", "invalid instruction at $%04X", pc)
//
// The log can be echoed to an io.Writer as entries are added with SetEcho().
package logger
