package debugui

import (
	"errors"
	"testing"

	"github.com/plus3/stride/motion"
	"github.com/plus3/stride/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	assert.Equal(t, float32(0), h.Mean())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float32{0, 1, 2}, h.Ordered())
	assert.Equal(t, float32(1.5), h.Mean())

	h.Push(3)
	h.Push(4)
	assert.Equal(t, []float32{2, 3, 4}, h.Ordered())
	assert.Equal(t, float32(3), h.Mean())
	assert.Equal(t, float32(4), h.Max())
	assert.Equal(t, 3, h.Len())

	assert.Equal(t, 1, NewHistory(0).Len())
}

func TestImguiSystemDefersRenders(t *testing.T) {
	var order []string
	system := &ImguiSystem{}
	system.Add(func() { order = append(order, "motion") })
	system.Add(func() { order = append(order, "tuning") })

	scheduler := sim.NewScheduler(1.0 / 60.0)
	scheduler.Register(sim.SystemFunc(func(*sim.UpdateFrame) { order = append(order, "tick") }))
	scheduler.Register(system)
	scheduler.Register(sim.SystemFunc(func(*sim.UpdateFrame) { order = append(order, "after") }))

	scheduler.Once(scheduler.Step())
	assert.Equal(t, []string{"tick", "after", "motion", "tuning"}, order)
}

type fakeTunable struct {
	cfg motion.Config
}

func (f *fakeTunable) Config() motion.Config { return f.cfg }

func (f *fakeTunable) Reconfigure(cfg motion.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	return nil
}

func TestTuningPanel(t *testing.T) {
	target := &fakeTunable{cfg: motion.Config{Acceleration: 40, Drag: 5, MaxXZSpeed: 8, JumpHeight: 1.5}}
	p := NewTuningPanel(target)
	assert.Equal(t, target.cfg, p.form)

	p.form.Drag = 2
	p.setExponential(true)
	p.apply()
	assert.NoError(t, p.err)
	assert.Equal(t, 2.0, target.cfg.Drag)
	assert.Equal(t, motion.DragExponential, target.cfg.DragMode)

	p.form.JumpHeight = -1
	p.apply()
	assert.True(t, errors.Is(p.err, motion.ErrInvalidConfig))
	assert.Equal(t, 1.5, target.cfg.JumpHeight)

	p.reset()
	assert.NoError(t, p.err)
	assert.Equal(t, 1.5, p.form.JumpHeight)
}

func TestTuningPanelApplyKeepsPrecision(t *testing.T) {
	target := &fakeTunable{cfg: motion.DefaultConfig()}
	p := NewTuningPanel(target)

	p.apply()
	require.NoError(t, p.err)
	assert.Equal(t, motion.DefaultMaxXZSpeed, target.cfg.MaxXZSpeed)
	assert.Equal(t, motion.DefaultConfig(), target.cfg)

	p.form.Drag = 2
	p.apply()
	require.NoError(t, p.err)
	assert.Equal(t, motion.DefaultMaxXZSpeed, target.cfg.MaxXZSpeed, "editing one field leaves the others exact")
}
