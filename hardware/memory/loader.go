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
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/mc6809/curated"
)

// LoaderError is the sentinal error pattern for all loader errors.
const LoaderError = "memory: loader: %v"

// Target is anything that can receive the contents of a program image.
// Memory satisfies this interface.
type Target interface {
	Poke(address uint16, data uint8)
}

// Image formats recognised by Load().
type Format int

// List of valid Format values.
const (
	FormatUnknown Format = iota
	FormatIntelHex
	FormatSRecord
	FormatFlexBinary
)

func (f Format) String() string {
	switch f {
	case FormatIntelHex:
		return "intel hex"
	case FormatSRecord:
		return "s-record"
	case FormatFlexBinary:
		return "flex binary"
	}
	return "unknown"
}

// LoadResult summarises a successful Load().
type LoadResult struct {
	Format Format

	// number of data bytes written to the target
	Bytes int

	// the start address given in the image. only meaningful if HasStart is
	// true. a start address of zero is treated as no start address
	Start    uint16
	HasStart bool
}

// LoadFile opens the named file and calls Load().
func LoadFile(target Target, filename string) (LoadResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return LoadResult{}, curated.Errorf(LoaderError, err)
	}
	defer f.Close()
	return Load(target, f)
}

// Load reads a program image and writes it to the target. The format is
// decided by the first byte of the image:
//
//	':'      Intel hex
//	'S'/'s'  Motorola S-record
//	0x02     FLEX binary
func Load(target Target, r io.Reader) (LoadResult, error) {
	br := bufio.NewReader(r)

	b, err := br.Peek(1)
	if err != nil {
		return LoadResult{}, curated.Errorf(LoaderError, err)
	}

	switch {
	case b[0] == ':':
		return loadIntelHex(target, br)
	case b[0] == 'S' || b[0] == 's':
		return loadSRecord(target, br)
	case b[0] == 0x02:
		return loadFlexBinary(target, br)
	}

	return LoadResult{}, curated.Errorf(LoaderError, "unrecognised image format")
}

// LoadBinary copies a raw image to the target starting at address. Returns
// the number of bytes copied. The image must fit below the top of memory.
func LoadBinary(target Target, r io.Reader, address uint16) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, curated.Errorf(LoaderError, err)
	}
	if int(address)+len(data) > 0x10000 {
		return 0, curated.Errorf(LoaderError, fmt.Sprintf("%d bytes do not fit at $%04X", len(data), address))
	}
	for i, v := range data {
		target.Poke(address+uint16(i), v)
	}
	return len(data), nil
}

// decodeRecord returns the bytes of a hex encoded record. ln does not include
// the record mark or the S-record type character.
func decodeRecord(ln string, line int) ([]uint8, error) {
	if len(ln)%2 != 0 || len(ln) < 2 {
		return nil, curated.Errorf(LoaderError, fmt.Sprintf("line %d: malformed record", line))
	}
	b, err := hex.DecodeString(ln)
	if err != nil {
		return nil, curated.Errorf(LoaderError, fmt.Sprintf("line %d: %v", line, err))
	}
	return b, nil
}

func loadIntelHex(target Target, br *bufio.Reader) (LoadResult, error) {
	res := LoadResult{Format: FormatIntelHex}

	scanner := bufio.NewScanner(br)
	line := 0
	for scanner.Scan() {
		line++
		ln := strings.TrimSpace(scanner.Text())
		if ln == "" {
			continue
		}
		if ln[0] != ':' {
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: missing record mark", line))
		}

		b, err := decodeRecord(ln[1:], line)
		if err != nil {
			return res, err
		}

		// count, address (2), type, data..., checksum
		if len(b) < 5 || int(b[0]) != len(b)-5 {
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: record length mismatch", line))
		}

		var sum uint8
		for _, v := range b {
			sum += v
		}
		if sum != 0 {
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: checksum error", line))
		}

		address := uint16(b[1])<<8 | uint16(b[2])
		data := b[4 : len(b)-1]

		switch b[3] {
		case 0x00:
			for i, v := range data {
				target.Poke(address+uint16(i), v)
			}
			res.Bytes += len(data)
		case 0x01:
			// the address field of the end of file record is the start address
			if address != 0 {
				res.Start = address
				res.HasStart = true
			}
			return res, nil
		default:
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: unsupported record type %02X", line, b[3]))
		}
	}

	if err := scanner.Err(); err != nil {
		return res, curated.Errorf(LoaderError, err)
	}

	return res, curated.Errorf(LoaderError, "missing end of file record")
}

func loadSRecord(target Target, br *bufio.Reader) (LoadResult, error) {
	res := LoadResult{Format: FormatSRecord}

	scanner := bufio.NewScanner(br)
	line := 0
	for scanner.Scan() {
		line++
		ln := strings.TrimSpace(scanner.Text())
		if ln == "" {
			continue
		}
		if len(ln) < 2 || (ln[0] != 'S' && ln[0] != 's') {
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: missing record mark", line))
		}

		typ := ln[1]
		b, err := decodeRecord(ln[2:], line)
		if err != nil {
			return res, err
		}

		// count, address (2), data..., checksum. count includes address and
		// checksum but not itself
		if len(b) < 4 || int(b[0]) != len(b)-1 {
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: record length mismatch", line))
		}

		var sum uint8
		for _, v := range b[:len(b)-1] {
			sum += v
		}
		if ^sum != b[len(b)-1] {
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: checksum error", line))
		}

		address := uint16(b[1])<<8 | uint16(b[2])
		data := b[3 : len(b)-1]

		switch typ {
		case '0', '5':
			// header and record count
		case '1':
			for i, v := range data {
				target.Poke(address+uint16(i), v)
			}
			res.Bytes += len(data)
		case '9':
			if address != 0 {
				res.Start = address
				res.HasStart = true
			}
			return res, nil
		default:
			return res, curated.Errorf(LoaderError, fmt.Sprintf("line %d: unsupported record type S%c", line, typ))
		}
	}

	if err := scanner.Err(); err != nil {
		return res, curated.Errorf(LoaderError, err)
	}

	// S9 is optional
	return res, nil
}

// FLEX binary files are a sequence of records:
//
//	0x02 addrHi addrLo count data...   data record
//	0x16 addrHi addrLo                 start address
//	0x00                               padding to end of sector
func loadFlexBinary(target Target, br *bufio.Reader) (LoadResult, error) {
	res := LoadResult{Format: FormatFlexBinary}

	for {
		typ, err := br.ReadByte()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, curated.Errorf(LoaderError, err)
		}

		switch typ {
		case 0x02:
			var hdr [3]uint8
			if _, err := io.ReadFull(br, hdr[:]); err != nil {
				return res, curated.Errorf(LoaderError, err)
			}
			address := uint16(hdr[0])<<8 | uint16(hdr[1])
			data := make([]uint8, hdr[2])
			if _, err := io.ReadFull(br, data); err != nil {
				return res, curated.Errorf(LoaderError, err)
			}
			for i, v := range data {
				target.Poke(address+uint16(i), v)
			}
			res.Bytes += len(data)

		case 0x16:
			var hdr [2]uint8
			if _, err := io.ReadFull(br, hdr[:]); err != nil {
				return res, curated.Errorf(LoaderError, err)
			}
			res.Start = uint16(hdr[0])<<8 | uint16(hdr[1])
			res.HasStart = res.Start != 0
			return res, nil

		case 0x00:
			return res, nil

		default:
			return res, curated.Errorf(LoaderError, fmt.Sprintf("unexpected flex record type %02X", typ))
		}
	}
}
