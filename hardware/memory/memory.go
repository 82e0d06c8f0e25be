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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mc6809/curated"
)

// Sentinal error patterns.
const (
	DeviceError  = "memory: device: %v"
	OverlapError = "memory: %s overlaps %s at $%04X"
)

// Memory is a flat 64K address space. Ranges of the address space can be
// marked as ROM or can be handed over to a memory mapped Device.
//
// Memory implements the cpubus.Memory interface.
type Memory struct {
	ram []uint8

	// one entry per address. true if address is read-only
	rom []bool

	// one entry per address. index into devices or -1 for plain RAM
	mapping []int
	devices []deviceMapping
}

type deviceMapping struct {
	dev  Device
	base uint16
	size int
}

// Device is a memory mapped peripheral. Addresses passed to Read() and
// Write() are offsets from the base address given to AddDevice().
type Device interface {
	Label() string
	Read(offset uint16) (uint8, error)
	Write(offset uint16, data uint8) error
	Reset()
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		ram:     make([]uint8, 0x10000),
		rom:     make([]bool, 0x10000),
		mapping: make([]int, 0x10000),
	}
	for i := range mem.mapping {
		mem.mapping[i] = -1
	}
	return mem
}

// Snapshot creates a copy of memory. Devices are shared with the original.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.ram = make([]uint8, len(mem.ram))
	copy(n.ram, mem.ram)
	return &n
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if d := mem.mapping[address]; d >= 0 {
		m := mem.devices[d]
		v, err := m.dev.Read(address - m.base)
		if err != nil {
			return 0, curated.Errorf(DeviceError, err)
		}
		return v, nil
	}
	return mem.ram[address], nil
}

// Write implements the cpubus.Memory interface. Writes to ROM are ignored.
func (mem *Memory) Write(address uint16, data uint8) error {
	if d := mem.mapping[address]; d >= 0 {
		m := mem.devices[d]
		if err := m.dev.Write(address-m.base, data); err != nil {
			return curated.Errorf(DeviceError, err)
		}
		return nil
	}
	if mem.rom[address] {
		return nil
	}
	mem.ram[address] = data
	return nil
}

// Peek returns the RAM value at address without side effects. Memory mapped
// devices are not consulted.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.ram[address]
}

// Poke writes directly to RAM, including areas marked as ROM. Memory mapped
// devices are not consulted.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.ram[address] = data
}

// PokeBlock copies data into RAM starting at address. The copy wraps at the
// top of memory.
func (mem *Memory) PokeBlock(address uint16, data []uint8) {
	for _, v := range data {
		mem.ram[address] = v
		address++
	}
}

// SetROM marks the range as read-only.
func (mem *Memory) SetROM(base uint16, size int) {
	for i := 0; i < size && int(base)+i < len(mem.rom); i++ {
		mem.rom[int(base)+i] = true
	}
}

// IsROM returns true if address has been marked as read-only.
func (mem *Memory) IsROM(address uint16) bool {
	return mem.rom[address]
}

// AddDevice maps a device into the address space. The range must not overlap
// any existing device.
func (mem *Memory) AddDevice(dev Device, base uint16, size int) error {
	if size <= 0 || int(base)+size > len(mem.mapping) {
		return curated.Errorf(DeviceError, fmt.Sprintf("%s does not fit at $%04X", dev.Label(), base))
	}

	for i := 0; i < size; i++ {
		if d := mem.mapping[int(base)+i]; d >= 0 {
			return curated.Errorf(OverlapError, dev.Label(), mem.devices[d].dev.Label(), int(base)+i)
		}
	}

	mem.devices = append(mem.devices, deviceMapping{dev: dev, base: base, size: size})
	idx := len(mem.devices) - 1
	for i := 0; i < size; i++ {
		mem.mapping[int(base)+i] = idx
	}

	return nil
}

// ResetDevices calls Reset() on every mapped device.
func (mem *Memory) ResetDevices() {
	for _, m := range mem.devices {
		m.dev.Reset()
	}
}

// Devices returns a summary of every mapped device.
func (mem *Memory) Devices() string {
	s := strings.Builder{}
	for _, m := range mem.devices {
		s.WriteString(fmt.Sprintf("$%04X-$%04X %s\n", m.base, int(m.base)+m.size-1, m.dev.Label()))
	}
	return s.String()
}

// Dump returns a hex dump of the RAM from address. The dump is rounded to
// whole lines of 16 bytes.
func (mem *Memory) Dump(address uint16, length int) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")

	start := int(address) &^ 0x0f
	for l := start; l < int(address)+length; l += 16 {
		s.WriteString(fmt.Sprintf("%04X | ", l&0xffff))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02X", mem.ram[(l+x)&0xffff]))
		}
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}
