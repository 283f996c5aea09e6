package sim

// UpdateFrame is passed to every system during a tick.
type UpdateFrame struct {
	// DeltaTime is the tick duration in seconds.
	DeltaTime float64
	// Tick counts completed ticks before this one.
	Tick     uint64
	Commands *Commands
}

func newUpdateFrame(dt float64, tick uint64, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  commands,
	}
}
