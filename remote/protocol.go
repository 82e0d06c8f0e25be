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

package remote

import (
	"github.com/jetsetilly/mc6809/hardware/cpu"
)

// Path is the URL path of the websocket endpoint.
const Path = "/mc6809"

// Sentinel error patterns.
const (
	RemoteError   = "remote: %v"
	ProtocolError = "remote: protocol: %v"
	PeerFail      = "remote: peer responded with fail"
)

// Opcode is the first byte of every message.
type Opcode uint8

// List of valid Opcode values.
const (
	Ack  Opcode = 0x00
	Fail Opcode = 0x01

	Bye      Opcode = 0x10
	TraceOn  Opcode = 0x11
	TraceOff Opcode = 0x12
	Step     Opcode = 0x1f

	IRQ   Opcode = 0x30
	FIRQ  Opcode = 0x31
	NMI   Opcode = 0x32
	Reset Opcode = 0x33

	SetBreak   Opcode = 0x40
	ClearBreak Opcode = 0x41
	Run        Opcode = 0x42

	EventReadBus   Opcode = 0x80
	EventWriteBus  Opcode = 0x81
	EventTraceExec Opcode = 0x82
)

// Register identifies a CPU register for the register read and write
// commands.
type Register int

// List of valid Register values.
const (
	RegA Register = iota
	RegB
	RegD
	RegX
	RegY
	RegU
	RegS
	RegPC
	RegDP
	RegCC
)

var registerNames = []string{"A", "B", "D", "X", "Y", "U", "S", "PC", "DP", "CC"}

func (r Register) String() string {
	if r < 0 || int(r) >= len(registerNames) {
		return "unknown register"
	}
	return registerNames[r]
}

// the write opcode for each register. the read opcode is always one more
var registerOpcodes = []Opcode{0x20, 0x22, 0x24, 0x26, 0x28, 0x2a, 0x2c, 0x2e, 0x50, 0x52}

// WriteOpcode returns the opcode that writes to the register.
func (r Register) WriteOpcode() Opcode {
	return registerOpcodes[r]
}

// ReadOpcode returns the opcode that reads the register.
func (r Register) ReadOpcode() Opcode {
	return registerOpcodes[r] + 1
}

// Wide returns true if the register is 16 bits.
func (r Register) Wide() bool {
	switch r {
	case RegD, RegX, RegY, RegU, RegS, RegPC:
		return true
	}
	return false
}

// decodeRegister returns the register for a read or write opcode
func decodeRegister(op Opcode) (reg Register, write bool, ok bool) {
	for i, w := range registerOpcodes {
		switch op {
		case w:
			return Register(i), true, true
		case w + 1:
			return Register(i), false, true
		}
	}
	return 0, false, false
}

// the register value as seen by the client
func getRegister(mc *cpu.CPU, r Register) uint16 {
	switch r {
	case RegA:
		return uint16(mc.A.Value())
	case RegB:
		return uint16(mc.B.Value())
	case RegD:
		return mc.D()
	case RegX:
		return mc.X.Value()
	case RegY:
		return mc.Y.Value()
	case RegU:
		return mc.U.Value()
	case RegS:
		return mc.S.Value()
	case RegPC:
		return mc.PC.Value()
	case RegDP:
		return uint16(mc.DP.Value())
	case RegCC:
		return uint16(mc.CC.Value())
	}
	return 0
}

func setRegister(mc *cpu.CPU, r Register, v uint16) {
	switch r {
	case RegA:
		mc.A.Load(uint8(v))
	case RegB:
		mc.B.Load(uint8(v))
	case RegD:
		mc.SetD(v)
	case RegX:
		mc.X.Load(v)
	case RegY:
		mc.Y.Load(v)
	case RegU:
		mc.U.Load(v)
	case RegS:
		mc.S.Load(v)
	case RegPC:
		mc.PC.Load(v)
	case RegDP:
		mc.DP.Load(uint8(v))
	case RegCC:
		mc.CC.FromValue(uint8(v))
	}
}

// Reasons for the end of a Step or Run command.
const (
	StopBreak   uint8 = 0x00
	StopInvalid uint8 = 0x01
	StopSuspend uint8 = 0x02
)

func stopReason(state cpu.State) uint8 {
	switch state {
	case cpu.StateInvalid:
		return StopInvalid
	case cpu.StateSuspend:
		return StopSuspend
	}
	return StopBreak
}

// StopState converts a stop reason to the equivalent CPU state.
func StopState(reason uint8) cpu.State {
	switch reason {
	case StopInvalid:
		return cpu.StateInvalid
	case StopSuspend:
		return cpu.StateSuspend
	}
	return cpu.StateStop
}
