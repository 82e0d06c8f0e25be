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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// A template is a list of strings, one for each command. The first word is
// the name of the command and each subsequent word is an argument group.
// Groups in square brackets are required and groups in parentheses are
// optional. The alternatives in a group are separated by a vertical bar. For
// example:
//
//	template := []string{
//		"RUN",
//		"MEM [%V] (%V)",
//		"UNDOC [ON|OFF]",
//		"TRACE [OFF|%F] (CSV)",
//	}
//
// Alternatives are either keywords or placeholders. Placeholders are:
//
//	%V	numeric value. decimal or hexadecimal with a leading $ or 0x
//	%I	floating-point value
//	%F	filename
//	%S	any string
//
// Validation is case-insensitive for command names and keywords.
//
//	cmds, _ := commandline.ParseCommandTemplate(template)
//	err := cmds.Validate("mem $1000 16")
//
// Once validated the tokens can be processed with the Get() function of the
// Tokens type, safe in the knowledge that the input has the expected shape.
package commandline
