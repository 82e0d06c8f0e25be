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

package test_test

import (
	"testing"

	"github.com/jetsetilly/mc6809/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	// testing that the ring writer starts off with the empty string
	test.ExpectEquality(t, r.String(), "")

	// writing a short string
	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")

	// writing another short string
	r.Write([]byte("fgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")

	// total written is now the same size as the buffer
	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	// beyond the size of the buffer
	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")
	r.Write([]byte("mn"))
	test.ExpectEquality(t, r.String(), "efghijklmn")

	// exactly the length of the buffer when there is already content
	r.Write([]byte("1234567890"))
	test.ExpectEquality(t, r.String(), "1234567890")

	// longer than the buffer
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestRingWriterLines(t *testing.T) {
	r, err := test.NewRingWriter(16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(r.Lines()), 0)

	r.Write([]byte("one\ntwo\nthr"))
	lines := r.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "one")
	test.ExpectEquality(t, lines[1], "two")

	// "one" and the start of "two" are lost. the broken line is dropped, as
	// is the unterminated "fi"
	r.Write([]byte("ee\nfour\nfi"))
	lines = r.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "three")
	test.ExpectEquality(t, lines[1], "four")
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)

	n, _ := c.Write([]byte("abcd"))
	test.ExpectEquality(t, n, 4)
	n, _ = c.Write([]byte("efghij"))
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, c.String(), "abcdefgh")
	test.ExpectEquality(t, c.Discarded(), 2)

	n, err = c.Write([]byte("k"))
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.String(), "abcdefgh")
	test.ExpectEquality(t, c.Discarded(), 3)

	c.Reset()
	test.ExpectEquality(t, c.String(), "")
	test.ExpectEquality(t, c.Discarded(), 0)

	_, err = test.NewCappedWriter(-1)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("hello "))
	w.Write([]byte("world"))
	test.ExpectSuccess(t, w.Compare("hello world"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
