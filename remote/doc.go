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

// Package remote implements a websocket harness for the CPU. A client
// connects to the server and drives a CPU of its own by sending commands.
// The client also supplies the memory for the CPU: every bus access is sent
// to the client as an event and the CPU waits for the client's reply.
//
// Every message starts with an opcode byte. Commands always come from the
// client and are answered with either Ack or Fail. The Ack may be followed
// by a payload. Words are sent most significant byte first.
//
//	Bye        0x10                     close the connection. no response
//	TraceOn    0x11                     send a trace event before every instruction
//	TraceOff   0x12
//	Step       0x1f                     Ack + stop reason
//	WriteA     0x20 byte                ReadA 0x21 -> Ack + byte
//	WriteB     0x22 byte                ReadB 0x23 -> Ack + byte
//	WriteD     0x24 word                ReadD 0x25 -> Ack + word
//	WriteX     0x26 word                ReadX 0x27 -> Ack + word
//	WriteY     0x28 word                ReadY 0x29 -> Ack + word
//	WriteU     0x2a word                ReadU 0x2b -> Ack + word
//	WriteS     0x2c word                ReadS 0x2d -> Ack + word
//	WritePC    0x2e word                ReadPC 0x2f -> Ack + word
//	IRQ        0x30
//	FIRQ       0x31
//	NMI        0x32
//	Reset      0x33                     the reset vector is read from the client
//	SetBreak   0x40 slot word
//	ClearBreak 0x41 slot
//	Run        0x42                     Ack + stop reason
//	WriteDP    0x50 byte                ReadDP 0x51 -> Ack + byte
//	WriteCC    0x52 byte                ReadCC 0x53 -> Ack + byte
//
// Events are sent by the server while a command is being processed. The
// client must answer each event before the command's response arrives.
//
//	ReadBus    0x80 word                client answers Ack + byte or Fail
//	WriteBus   0x81 word byte           client answers Ack or Fail
//	TraceExec  0x82 word byte string    client answers Ack. the string is length prefixed
//
// The stop reason is one of StopBreak (0x00), StopInvalid (0x01) or
// StopSuspend (0x02). A step that completes normally is reported as
// StopBreak.
package remote
