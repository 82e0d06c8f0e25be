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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, arguments are given to NewArgs() and Parse() is called
// with no arguments. This allows the same argument list to be parsed in
// layers:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "REMOTE", "DISASM")
//	p, err := md.Parse()
//
// After a successful Parse() the Mode() function returns the selected
// sub-mode, or the first sub-mode in the list if none was given on the
// command line. Flags for the selected mode are then added after a call to
// NewMode() and parsed with another call to Parse():
//
//	md.NewMode()
//	freq := md.AddFloat64("freq", 1.0, "target frequency in MHz")
//	p, err = md.Parse()
//
// Arguments that are neither flags nor the mode selector are returned by
// RemainingArgs() and GetArg(). All sub-mode comparisons are case
// insensitive.
package modalflag
