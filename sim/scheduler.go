// Package sim drives systems on a fixed timestep. Frame time is accumulated and
// consumed in whole steps, so a visual frame may run zero, one or several ticks.
package sim

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// DefaultMaxTicksPerAdvance bounds how many ticks one Advance call may run.
const DefaultMaxTicksPerAdvance = 8

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Ticks           uint64
	DroppedTime     float64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type Option func(*Scheduler)

// WithMaxTicksPerAdvance caps the ticks a single Advance may run. Accumulated time
// beyond the cap is dropped instead of being carried into later frames.
func WithMaxTicksPerAdvance(n int) Option {
	return func(s *Scheduler) {
		s.maxTicks = n
	}
}

// Scheduler manages and executes systems in order on a fixed step.
type Scheduler struct {
	step        float64
	maxTicks    int
	accumulator float64
	dropped     float64
	tick        uint64

	systems     []System
	systemStats []*systemStatsInternal
	commands    *Commands
}

// NewScheduler creates a scheduler that ticks every step seconds.
// It panics if step is not positive.
func NewScheduler(step float64, options ...Option) *Scheduler {
	if !(step > 0) {
		panic(fmt.Sprintf("sim: step must be positive, got %v", step))
	}

	s := &Scheduler{
		step:     step,
		maxTicks: DefaultMaxTicksPerAdvance,
		systems:  make([]System, 0),
		commands: newCommands(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Register appends a system. Systems run in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	systemName := systemType.Name()

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Step returns the fixed tick duration in seconds.
func (s *Scheduler) Step() float64 {
	return s.step
}

// Ticks returns the number of ticks executed so far.
func (s *Scheduler) Ticks() uint64 {
	return s.tick
}

// Once executes all registered systems once with the given delta time and then
// flushes deferred commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.tick, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.tick++
	s.commands.Flush()
}

// Advance adds frameDelta seconds of real time and runs as many fixed ticks as fit.
// It returns the number of ticks run. Negative or non-finite deltas are ignored.
func (s *Scheduler) Advance(frameDelta float64) int {
	if !(frameDelta > 0) || frameDelta > 1e9 {
		return 0
	}

	s.accumulator += frameDelta
	ticks := 0
	for s.accumulator >= s.step {
		if s.maxTicks > 0 && ticks >= s.maxTicks {
			s.dropped += s.accumulator
			s.accumulator = 0
			break
		}
		s.Once(s.step)
		s.accumulator -= s.step
		ticks++
	}
	return ticks
}

// Alpha returns how far the accumulator is into the next tick, in [0,1). Renderers
// use it to interpolate between the last two simulated states.
func (s *Scheduler) Alpha() float64 {
	return s.accumulator / s.step
}

// Run advances the scheduler by wall-clock time every interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Advance(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.tick,
		DroppedTime: s.dropped,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
