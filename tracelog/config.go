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

package tracelog

import "strings"

// NoAddress is used for the StartAddr and StopAddr fields of the Config
// type to indicate that no address has been specified.
const NoAddress = 0x10000

// Format of the trace log.
type Format int

// List of valid formats.
const (
	Text Format = iota
	CSV
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case CSV:
		return "csv"
	}
	return "unknown format"
}

// Register is a set of registers to include in the log.
type Register int

// List of registers. The order is the order in which the registers are
// logged.
const (
	CC Register = 1 << iota
	A
	B
	DP
	X
	Y
	U
	S

	NoRegisters  Register = 0
	AllRegisters Register = CC | A | B | DP | X | Y | U | S
)

var registerNames = []string{"CC", "A", "B", "DP", "X", "Y", "U", "S"}

func (r Register) String() string {
	var s []string
	for i, n := range registerNames {
		if r&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	return strings.Join(s, ",")
}

// Config for the Logger type.
type Config struct {
	// only instructions in the window are logged
	MinAddr uint16
	MaxAddr uint16

	// logging starts when the PC reaches StartAddr and stops when it reaches
	// StopAddr. a value of NoAddress means logging is active from the start
	// and never stops
	StartAddr uint32
	StopAddr  uint32

	Format Format

	// prefix each line with the cycle count
	LogCycles bool

	Registers Register

	// separator for the CSV format
	Separator rune
}

// DefaultConfig logs every instruction as text, with all registers.
func DefaultConfig() Config {
	return Config{
		MinAddr:   0x0000,
		MaxAddr:   0xffff,
		StartAddr: NoAddress,
		StopAddr:  NoAddress,
		Format:    Text,
		Registers: AllRegisters,
		Separator: ',',
	}
}
