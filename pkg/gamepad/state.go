package gamepad

import (
	"math"
	"sync"
)

// axisMax is the full-scale magnitude of a joystick axis value.
const axisMax = 32767.0

// State accumulates joystick events into current controller state.
// Safe for concurrent use: a reader goroutine applies events while the
// render loop polls sticks and buttons.
type State struct {
	// Deadzone is the normalized stick magnitude below which axis
	// values read as zero. Default 0.08.
	Deadzone float64

	mu      sync.Mutex
	mapping Mapping
	axes    map[uint8]int16
	buttons map[uint8]bool
	clicked map[uint8]bool
}

// NewState creates an empty state using the given mapping.
func NewState(m Mapping) *State {
	return &State{
		Deadzone: 0.08,
		mapping:  m,
		axes:     make(map[uint8]int16),
		buttons:  make(map[uint8]bool),
		clicked:  make(map[uint8]bool),
	}
}

// Apply folds one event into the state. Init events update state like
// regular ones but never register clicks.
func (s *State) Apply(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch e.Kind() {
	case EventAxis:
		s.axes[e.Number] = e.Value
	case EventButton:
		down := e.Value != 0
		if down && !s.buttons[e.Number] && !e.IsInit() {
			s.clicked[e.Number] = true
		}
		s.buttons[e.Number] = down
	}
}

// Axis returns the raw axis value normalized to [-1, 1], without
// deadzone filtering.
func (s *State) Axis(number uint8) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.axes[number]) / axisMax
}

// Button reports whether the button is currently held.
func (s *State) Button(number uint8) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons[number]
}

// ButtonClicked reports whether the button was pressed since the last
// call for that button. Each press is reported exactly once.
func (s *State) ButtonClicked(number uint8) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clicked[number] {
		delete(s.clicked, number)
		return true
	}
	return false
}

// LeftStick returns the left stick position in [-1, 1] per axis with
// the deadzone applied.
func (s *State) LeftStick() (x, y float64) {
	return s.stick(s.mapping.LeftStickX, s.mapping.LeftStickY)
}

// RightStick returns the right stick position in [-1, 1] per axis with
// the deadzone applied.
func (s *State) RightStick() (x, y float64) {
	return s.stick(s.mapping.RightStickX, s.mapping.RightStickY)
}

func (s *State) stick(xAxis, yAxis uint8) (x, y float64) {
	x = s.Axis(xAxis)
	y = s.Axis(yAxis)
	if math.Hypot(x, y) < s.Deadzone {
		return 0, 0
	}
	return x, y
}

// LeftTrigger returns the left trigger position in [0, 1].
func (s *State) LeftTrigger() float64 {
	return triggerScale(s.Axis(s.mapping.LeftTrigger))
}

// RightTrigger returns the right trigger position in [0, 1].
func (s *State) RightTrigger() float64 {
	return triggerScale(s.Axis(s.mapping.RightTrigger))
}

// triggerScale maps the trigger's resting -1 to 0 and full pull 1 to 1.
func triggerScale(v float64) float64 {
	return (v + 1) / 2
}
