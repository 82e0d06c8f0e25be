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

package scheduler

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/mc6809/curated"
	"github.com/jetsetilly/mc6809/hardware/cpu"
	"github.com/jetsetilly/mc6809/logger"
	"github.com/jetsetilly/mc6809/performance"
	"github.com/jetsetilly/mc6809/performance/limiter"
)

// Finished is returned by Sync() once the scheduler has exited.
const Finished = "scheduler: finished"

// SchedulerError is the general error pattern for the package.
const SchedulerError = "scheduler: %v"

// number of timer ticks per second
const ticksPerSecond = 100

// Status is the most recent status of the CPU, together with the state and
// speed of the scheduler.
type Status struct {
	cpu.Status

	State cpu.State

	// measured and target frequency in MHz. a target of zero means the CPU is
	// running unthrottled
	Frequency float64
	Target    float64
}

type command struct {
	fn   func(*cpu.CPU)
	done chan bool
}

// Scheduler runs the CPU on its own goroutine.
type Scheduler struct {
	mc *cpu.CPU

	// OnReset is called before the CPU is reset by the RESET or RESET_RUN
	// states. Used to reset memory mapped devices.
	OnReset func() error

	// state requested by SetState(). StateNone if there is no request
	userInput atomic.Int32

	// wakes the scheduler from the idle loop or from a suspended run
	wake chan bool

	// set by the timer goroutine
	timer atomic.Bool

	// target frequency as float64 bits
	target      atomic.Uint64
	freqChanged atomic.Bool

	commandsLock sync.Mutex
	commands     []command

	// closed when the state machine ends
	done   chan bool
	exited atomic.Bool

	statusLock sync.Mutex
	status     Status

	// closed and replaced every time the scheduler enters a stopped state
	stoppedLock sync.Mutex
	stopped     chan bool

	// the fields below are only accessed by the scheduler goroutine
	state cpu.State

	// time of the previous frequency control tick
	time0 time.Time

	// time and cycle count of the previous frequency measurement
	time1sec   time.Time
	cycles1sec uint64
	frequency  float64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The CPU should not be accessed directly once the scheduler has been
// started.
func NewScheduler(mc *cpu.CPU) *Scheduler {
	return &Scheduler{
		mc:      mc,
		wake:    make(chan bool, 1),
		done:    make(chan bool),
		stopped: make(chan bool),
	}
}

// Run the scheduler, starting in the initial state. Returns when the context
// is cancelled or when the EXIT state is requested.
func (s *Scheduler) Run(ctx context.Context, initial cpu.State) error {
	if s.exited.Load() {
		return curated.Errorf(Finished)
	}
	defer close(s.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lim := limiter.NewLimiter(ctx, ticksPerSecond)
	go func() {
		for lim.Wait() {
			s.timer.Store(true)
			s.mc.ExitRun()
			s.wakeUp()
		}
	}()

	go func() {
		<-ctx.Done()
		s.SetState(cpu.StateExit)
	}()

	now := time.Now()
	s.time0 = now
	s.time1sec = now
	s.cycles1sec = s.mc.Cycles(false)

	return s.statemachine(initial)
}

func (s *Scheduler) statemachine(state cpu.State) error {
	var err error

	for {
		s.setState(state)

		switch state {
		case cpu.StateRun:
			state = s.runloop(cpu.RunStart)
		case cpu.StateNext:
			state = s.runloop(cpu.StepOver)
		case cpu.StateStep:
			state = s.runloop(cpu.StepInto)
		case cpu.StateStop, cpu.StateInvalid:
			state = s.idleloop()
		case cpu.StateReset:
			err = s.reset()
			state = cpu.StateStop
		case cpu.StateResetRun:
			err = s.reset()
			state = cpu.StateRun
		case cpu.StateExit:
			s.exited.Store(true)
			s.execCommands()
			logger.Log(logger.Allow, "scheduler", "exit")
			return nil
		default:
			logger.Logf(logger.Allow, "scheduler", "unexpected state: %s", state)
			state = cpu.StateStop
		}

		if err != nil {
			logger.Log(logger.Allow, "scheduler", err)
			err = nil
			state = cpu.StateStop
		}
	}
}

func (s *Scheduler) setState(state cpu.State) {
	if state != s.state {
		switch state {
		case cpu.StateRun, cpu.StateInvalid, cpu.StateReset, cpu.StateResetRun:
			logger.Logf(logger.Allow, "scheduler", "state: %s", state)
		}
	}
	s.state = state
	s.updateStatus()

	if state == cpu.StateStop || state == cpu.StateInvalid {
		s.stoppedLock.Lock()
		close(s.stopped)
		s.stopped = make(chan bool)
		s.stoppedLock.Unlock()
	}
}

// runloop calls the CPU's Run() function until the CPU stops or until there
// is a request for a new state.
func (s *Scheduler) runloop(mode cpu.RunMode) cpu.State {
	s.restartClock(time.Now())

	for {
		state, err := s.mc.Run(mode)
		if err != nil {
			logger.Log(logger.Allow, "scheduler", err)
			state = cpu.StateStop
		}

		// the run mode only applies to the first call to Run()
		mode = cpu.RunResume

		s.processEvents()
		if input := s.takeInput(); input != cpu.StateNone {
			return input
		}

		switch state {
		case cpu.StateStop, cpu.StateInvalid:
			return state
		case cpu.StateSuspend:
			// waiting for an interrupt or for the next timer tick
			<-s.wake
		}
	}
}

// idleloop waits for a request to change state.
func (s *Scheduler) idleloop() cpu.State {
	for {
		<-s.wake
		s.processEvents()
		if input := s.takeInput(); input != cpu.StateNone {
			return input
		}
		s.updateStatus()
	}
}

func (s *Scheduler) reset() error {
	if s.OnReset != nil {
		if err := s.OnReset(); err != nil {
			return curated.Errorf(SchedulerError, err)
		}
	}
	if err := s.mc.Reset(); err != nil {
		return curated.Errorf(SchedulerError, err)
	}
	return nil
}

func (s *Scheduler) processEvents() {
	now := time.Now()

	if s.freqChanged.Swap(false) {
		s.applyFrequency(now)
	}

	if s.timer.Swap(false) {
		s.mc.Cycles(true)

		if s.targetFrequency() > 0 {
			s.frequencyControl(now)
		}

		if now.Sub(s.time1sec) >= time.Second {
			s.updateFrequency(now)
			s.updateStatus()
		}
	}

	s.execCommands()
}

func (s *Scheduler) execCommands() {
	s.commandsLock.Lock()
	cmds := s.commands
	s.commands = nil
	s.commandsLock.Unlock()

	for _, c := range cmds {
		c.fn(s.mc)
		close(c.done)
	}

	if len(cmds) > 0 {
		s.updateStatus()
	}
}

// frequencyControl allows the CPU to run the number of cycles that fit into
// the time since the previous tick.
func (s *Scheduler) frequencyControl(now time.Time) {
	elapsed := now.Sub(s.time0).Microseconds()
	s.time0 = now
	s.mc.SetRequiredCycles(uint64(float64(elapsed) * s.targetFrequency()))
}

func (s *Scheduler) updateFrequency(now time.Time) {
	cycles := s.mc.Cycles(false)
	s.frequency = performance.CalcMHz(cycles-s.cycles1sec, now.Sub(s.time1sec).Seconds())
	s.cycles1sec = cycles
	s.time1sec = now
}

func (s *Scheduler) applyFrequency(now time.Time) {
	target := s.targetFrequency()
	if target <= 0 {
		s.mc.SetRequiredCycles(math.MaxUint64)
		logger.Log(logger.Allow, "scheduler", "frequency control off")
		return
	}
	s.restartClock(now)
	logger.Logf(logger.Allow, "scheduler", "frequency control %.2f MHz", target)
}

// restartClock makes sure that time spent not running does not count
// towards the next frequency control allowance. The CPU is allowed one tick's
// worth of cycles to begin with.
func (s *Scheduler) restartClock(now time.Time) {
	target := s.targetFrequency()
	if target <= 0 {
		return
	}
	s.mc.Cycles(true)
	s.time0 = now
	tick := time.Second / ticksPerSecond
	s.mc.SetRequiredCycles(uint64(float64(tick.Microseconds()) * target))
}

func (s *Scheduler) updateStatus() {
	st, err := s.mc.Status()
	if err != nil {
		logger.Log(logger.Allow, "scheduler", err)
	}

	s.statusLock.Lock()
	defer s.statusLock.Unlock()
	s.status = Status{
		Status:    st,
		State:     s.state,
		Frequency: s.frequency,
		Target:    s.targetFrequency(),
	}
}

func (s *Scheduler) targetFrequency() float64 {
	return math.Float64frombits(s.target.Load())
}

// the status is updated with the new state at the same time the request is
// taken. see State()
func (s *Scheduler) takeInput() cpu.State {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()
	state := cpu.State(s.userInput.Swap(int32(cpu.StateNone)))
	if state != cpu.StateNone {
		s.status.State = state
	}
	return state
}

func (s *Scheduler) wakeUp() {
	select {
	case s.wake <- true:
	default:
	}
}

// SetState requests a change of state. The request is acted upon at the next
// instruction boundary. Safe to call from any goroutine.
func (s *Scheduler) SetState(state cpu.State) {
	s.userInput.Store(int32(state))
	s.mc.ExitRun()
	s.wakeUp()
}

// SetFrequency sets the target frequency in MHz. A value of zero (or less)
// runs the CPU unthrottled. Safe to call from any goroutine.
func (s *Scheduler) SetFrequency(mhz float64) {
	if mhz < 0 {
		mhz = 0
	}
	s.target.Store(math.Float64bits(mhz))
	s.freqChanged.Store(true)
	s.mc.ExitRun()
	s.wakeUp()
}

// Sync runs the function on the scheduler goroutine and waits for it to
// complete. The CPU should only be accessed from outside the scheduler
// through this function. Returns an error if the scheduler has finished.
func (s *Scheduler) Sync(fn func(mc *cpu.CPU)) error {
	if s.exited.Load() {
		return curated.Errorf(Finished)
	}

	c := command{fn: fn, done: make(chan bool)}

	s.commandsLock.Lock()
	s.commands = append(s.commands, c)
	s.commandsLock.Unlock()

	s.mc.ExitRun()
	s.wakeUp()

	select {
	case <-c.done:
		return nil
	case <-s.done:
		// the function may have been run as part of the exit state
		select {
		case <-c.done:
			return nil
		default:
		}
		return curated.Errorf(Finished)
	}
}

// Status returns the most recent status. Safe to call from any goroutine.
func (s *Scheduler) Status() Status {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()
	return s.status
}

// State returns the state most recently requested with SetState() if the
// request has not yet been acted upon, otherwise it returns the current
// state. Safe to call from any goroutine.
func (s *Scheduler) State() cpu.State {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()
	if state := cpu.State(s.userInput.Load()); state != cpu.StateNone {
		return state
	}
	return s.status.State
}

// Stopped returns a channel that will be closed the next time the scheduler
// enters the STOP or INVALID state. Take the channel before requesting a
// change of state with SetState().
func (s *Scheduler) Stopped() <-chan bool {
	s.stoppedLock.Lock()
	defer s.stoppedLock.Unlock()
	return s.stopped
}

// Done returns a channel that is closed when Run() returns.
func (s *Scheduler) Done() <-chan bool {
	return s.done
}

// Finished returns true once the scheduler has reached the EXIT state.
func (s *Scheduler) Finished() bool {
	return s.exited.Load()
}
