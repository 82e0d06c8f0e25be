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

package test

import (
	"fmt"
)

// CappedWriter is an implementation of io.Writer that keeps the first bytes
// written to it and discards the rest. Writes always report success so that
// the writer can stand in for a terminal or file that must not fail.
type CappedWriter struct {
	buffer    []byte
	size      int
	discarded int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Discarded returns the number of bytes that did not fit.
func (c *CappedWriter) Discarded() int {
	return c.discarded
}

// Reset empties the buffer and the discard count.
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
	c.discarded = 0
}

// Write implements io.Writer.
func (c *CappedWriter) Write(p []byte) (n int, err error) {
	keep := min(c.size-len(c.buffer), len(p))
	c.buffer = append(c.buffer, p[:keep]...)
	c.discarded += len(p) - keep
	return len(p), nil
}
