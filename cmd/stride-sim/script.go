package main

import "sort"

// segment holds the movement axes for [Start, End) seconds.
type segment struct {
	Start, End float64
	H, V       float64
}

type eventKind int

const (
	eventJump eventKind = iota
	eventAimToggle
)

type event struct {
	At   float64
	Kind eventKind
}

// script is a timed InputSource. advance moves its clock; button events whose time
// has passed are reported once each.
type script struct {
	segments []segment
	events   []event

	now         float64
	next        int
	pendingJump bool
	pendingAim  bool
}

func newScript(segments []segment, events []event) *script {
	sort.Slice(events, func(i, j int) bool { return events[i].At < events[j].At })
	return &script{segments: segments, events: events}
}

// defaultScript walks onto a step, jumps, strafes, toggles aim and runs diagonally
// into the wall at the far end of the course.
func defaultScript() *script {
	return newScript(
		[]segment{
			{Start: 0, End: 3, V: 1},
			{Start: 3, End: 5, H: 1},
			{Start: 6, End: 9, H: -1, V: 1},
		},
		[]event{
			{At: 1, Kind: eventJump},
			{At: 5.5, Kind: eventAimToggle},
			{At: 7, Kind: eventJump},
		},
	)
}

func (s *script) advance(now float64) {
	s.now = now
	for s.next < len(s.events) && s.events[s.next].At <= now {
		switch s.events[s.next].Kind {
		case eventJump:
			s.pendingJump = true
		case eventAimToggle:
			s.pendingAim = true
		}
		s.next++
	}
}

func (s *script) Axes() (float64, float64) {
	for _, seg := range s.segments {
		if s.now >= seg.Start && s.now < seg.End {
			return seg.H, seg.V
		}
	}
	return 0, 0
}

func (s *script) JumpPressed() bool {
	pressed := s.pendingJump
	s.pendingJump = false
	return pressed
}

func (s *script) AimTogglePressed() bool {
	pressed := s.pendingAim
	s.pendingAim = false
	return pressed
}
