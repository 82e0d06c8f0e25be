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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/mc6809/version.number=v0.1.0"
//
// Without a version number the build information embedded by the Go
// toolchain is used to describe the source revision.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "mc6809"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	// the version number. "unreleased" if there is VCS information but no
	// version number and "local" if there is neither
	Number string

	// VCS revision. suffixed with "+dirty" if the source had been modified
	Revision string
}

func (inf Info) String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, inf.Revision)
}

// Release returns true if the build has a version number.
func (inf Info) Release() bool {
	return number != "" && inf.Number == number
}

// Version returns the Info for the running program.
func Version() Info {
	return fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(bi *debug.BuildInfo, ok bool) Info {
	var inf Info
	var vcs, modified bool

	if ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case inf.Revision == "":
		inf.Revision = "no revision information"
	case modified:
		inf.Revision += "+dirty"
	}

	switch {
	case number != "":
		inf.Number = number
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}
