package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/stride/sim"
	"github.com/stretchr/testify/assert"
)

type CounterSystem struct {
	ExecuteCount int
	Elapsed      float64
	LastTick     uint64
}

func (s *CounterSystem) Execute(frame *sim.UpdateFrame) {
	s.ExecuteCount++
	s.Elapsed += frame.DeltaTime
	s.LastTick = frame.Tick
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(frame *sim.UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var log []string
		scheduler := sim.NewScheduler(0.25)
		scheduler.Register(&orderSystem{name: "input", log: &log})
		scheduler.Register(&orderSystem{name: "motion", log: &log})
		scheduler.Register(&orderSystem{name: "move", log: &log})

		scheduler.Once(0.25)
		scheduler.Once(0.25)

		assert.Equal(t, []string{"input", "motion", "move", "input", "motion", "move"}, log)
		assert.Equal(t, uint64(2), scheduler.Ticks())
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := sim.NewScheduler(0.25)
		counter := &CounterSystem{}
		scheduler.Register(counter)

		scheduler.Once(0.5)
		scheduler.Once(1.0)

		assert.Equal(t, 2, counter.ExecuteCount)
		assert.Equal(t, 1.5, counter.Elapsed)
		assert.Equal(t, uint64(1), counter.LastTick)
	})

	t.Run("advance runs whole steps", func(t *testing.T) {
		scheduler := sim.NewScheduler(0.25)
		counter := &CounterSystem{}
		scheduler.Register(counter)

		assert.Equal(t, 0, scheduler.Advance(0.125))
		assert.Equal(t, 0.5, scheduler.Alpha())

		assert.Equal(t, 1, scheduler.Advance(0.125))
		assert.Equal(t, 0.0, scheduler.Alpha())

		assert.Equal(t, 4, scheduler.Advance(1.0))
		assert.Equal(t, 5, counter.ExecuteCount)
		assert.Equal(t, 1.25, counter.Elapsed, "every tick sees the fixed step")
	})

	t.Run("advance ignores bad deltas", func(t *testing.T) {
		scheduler := sim.NewScheduler(0.25)
		counter := &CounterSystem{}
		scheduler.Register(counter)

		assert.Equal(t, 0, scheduler.Advance(0))
		assert.Equal(t, 0, scheduler.Advance(-1))
		assert.Equal(t, 0, counter.ExecuteCount)
	})

	t.Run("advance caps ticks and drops the rest", func(t *testing.T) {
		scheduler := sim.NewScheduler(0.25, sim.WithMaxTicksPerAdvance(2))
		counter := &CounterSystem{}
		scheduler.Register(counter)

		assert.Equal(t, 2, scheduler.Advance(2.0))
		assert.Equal(t, 0.0, scheduler.Alpha())
		assert.Equal(t, 1.5, scheduler.GetStats().DroppedTime)

		assert.Equal(t, 1, scheduler.Advance(0.25))
		assert.Equal(t, 3, counter.ExecuteCount)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := sim.NewScheduler(0.001)
		counter := &CounterSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("commands flush after every tick", func(t *testing.T) {
		scheduler := sim.NewScheduler(0.25)

		var flushed []uint64
		scheduler.Register(sim.SystemFunc(func(frame *sim.UpdateFrame) {
			tick := frame.Tick
			frame.Commands.Defer(func() {
				flushed = append(flushed, tick)
			})
			assert.Equal(t, 1, frame.Commands.Len())
		}))

		scheduler.Advance(0.75)
		assert.Equal(t, []uint64{0, 1, 2}, flushed)
	})

	t.Run("invalid step panics", func(t *testing.T) {
		assert.Panics(t, func() { sim.NewScheduler(0) })
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := sim.NewScheduler(0.25)
	scheduler.Register(&CounterSystem{})
	scheduler.Register(sim.SystemFunc(func(*sim.UpdateFrame) {}))

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	scheduler.Advance(1.0)

	stats = scheduler.GetStats()
	assert.Equal(t, int64(8), stats.TotalExecutions)
	assert.Equal(t, uint64(4), stats.Ticks)
	assert.Equal(t, "CounterSystem", stats.Systems[0].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)
	assert.Equal(t, int64(4), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
}

func TestCommandsDeferDuringFlush(t *testing.T) {
	scheduler := sim.NewScheduler(0.25)

	var order []string
	scheduler.Register(sim.SystemFunc(func(frame *sim.UpdateFrame) {
		frame.Commands.Defer(func() {
			order = append(order, "outer")
			frame.Commands.Defer(func() {
				order = append(order, "inner")
			})
		})
	}))

	scheduler.Once(0.25)
	assert.Equal(t, []string{"outer", "inner"}, order)
}
