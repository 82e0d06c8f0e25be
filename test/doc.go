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

// Package test bundles a small number of helper functions for use with the
// standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the rest of the test depends on the result.
//
// ExpectSuccess() and ExpectFailure() test for success under generic
// conditions. A bool is a success if it is true and an error is a success if
// it is nil. The untyped nil value is considered a success, which is how
// errors usually work.
//
// All functions accept an optional list of tags. The tags are printed at the
// start of any failure message and are useful for identifying an iteration
// when a test is run over a table of values.
//
// The CappedWriter, CompareWriter and RingWriter types implement io.Writer
// and are used to capture output for comparison.
package test
