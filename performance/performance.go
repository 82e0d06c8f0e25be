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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu"
)

// CalcMHz takes the number of cycles and the duration (in seconds) and
// returns the effective clock frequency in MHz.
func CalcMHz(cycles uint64, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(cycles) / duration / 1000000
}

// Check the performance of the CPU by running it unthrottled for the
// specified duration. The CPU should have been reset and have a program to
// run. The result is written to output.
//
// A profile of the run will be created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, mc *cpu.CPU, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var cycles uint64
	var elapsed time.Duration

	runner := func() error {
		timesUp := time.AfterFunc(dur, mc.ExitRun)
		defer timesUp.Stop()

		start := time.Now()
		startCycles := mc.Cycles(false)

		state, err := mc.Run(cpu.RunStart)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}

		elapsed = time.Since(start)
		cycles = mc.Cycles(false) - startCycles

		if state != cpu.StateSchedule {
			return curated.Errorf(PerformanceError, fmt.Sprintf("run ended early (%s)", state))
		}

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds)\n", CalcMHz(cycles, elapsed.Seconds()), cycles, elapsed.Seconds())
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	return nil
}
