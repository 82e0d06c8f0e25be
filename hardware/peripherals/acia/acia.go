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

package acia

import (
	"io"

	"github.com/jetsetilly/mc6809/curated"
)

// AciaError is the sentinel error pattern for errors from the ACIA.
const AciaError = "acia: %v"

// Size is the number of addresses occupied by the device.
const Size = 2

// status register bits
const (
	statusRDRF = 0x01
	statusTDRE = 0x02
	statusIRQ  = 0x80
)

// control register bits
const (
	controlMasterReset   = 0x03
	controlTransmitMask  = 0x60
	controlTransmitIRQ   = 0x20
	controlReceiveEnable = 0x80
)

// size of the receive queue
const inputQueue = 256

// ACIA implements the memory.Device interface.
type ACIA struct {
	output io.Writer
	input  chan uint8
	irq    func()

	control uint8
	status  uint8
	rdr     uint8

	// whether rdr holds a character that has not been read
	full bool
}

// NewACIA is the preferred method of initialisation for the ACIA type. The
// irq function may be nil.
func NewACIA(output io.Writer, irq func()) *ACIA {
	return &ACIA{
		output: output,
		input:  make(chan uint8, inputQueue),
		irq:    irq,
		status: statusTDRE,
	}
}

// Label implements the memory.Device interface.
func (acia *ACIA) Label() string {
	return "MC6850"
}

// Reset implements the memory.Device interface.
func (acia *ACIA) Reset() {
	acia.control = 0
	acia.status = statusTDRE
	acia.rdr = 0
	acia.full = false
}

// Feed queues a character for the receive data register. Returns false if
// the queue is full. Safe to call from any goroutine.
func (acia *ACIA) Feed(v uint8) bool {
	select {
	case acia.input <- v:
		return true
	default:
		return false
	}
}

// poll the input queue and move the next character to the receive data
// register if the register is empty
func (acia *ACIA) poll() {
	if acia.full {
		return
	}
	select {
	case v := <-acia.input:
		acia.rdr = v
		acia.full = true
		acia.status |= statusRDRF
		if acia.control&controlReceiveEnable == controlReceiveEnable {
			acia.interrupt()
		}
	default:
	}
}

func (acia *ACIA) interrupt() {
	acia.status |= statusIRQ
	if acia.irq != nil {
		acia.irq()
	}
}

// Read implements the memory.Device interface.
func (acia *ACIA) Read(offset uint16) (uint8, error) {
	switch offset & 0x01 {
	case 0:
		acia.poll()
		return acia.status | statusTDRE, nil
	default:
		v := acia.rdr
		acia.full = false
		acia.status &^= statusRDRF | statusIRQ
		return v, nil
	}
}

// Write implements the memory.Device interface.
func (acia *ACIA) Write(offset uint16, data uint8) error {
	switch offset & 0x01 {
	case 0:
		if data&controlMasterReset == controlMasterReset {
			acia.Reset()
			return nil
		}
		acia.control = data
	default:
		acia.status &^= statusIRQ
		if _, err := acia.output.Write([]uint8{data}); err != nil {
			return curated.Errorf(AciaError, err)
		}
		if acia.control&controlTransmitMask == controlTransmitIRQ {
			acia.interrupt()
		}
	}
	return nil
}
