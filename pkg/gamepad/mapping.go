package gamepad

// Mapping assigns meaning to raw axis and button numbers. Numbers vary
// by controller model; XboxMapping covers the common xpad layout.
type Mapping struct {
	LeftStickX   uint8
	LeftStickY   uint8
	RightStickX  uint8
	RightStickY  uint8
	LeftTrigger  uint8
	RightTrigger uint8

	ButtonA     uint8
	ButtonB     uint8
	ButtonX     uint8
	ButtonY     uint8
	LeftBumper  uint8
	RightBumper uint8
	Back        uint8
	Start       uint8
}

// XboxMapping returns the layout the kernel xpad driver exposes for
// Xbox controllers.
func XboxMapping() Mapping {
	return Mapping{
		LeftStickX:   0,
		LeftStickY:   1,
		LeftTrigger:  2,
		RightStickX:  3,
		RightStickY:  4,
		RightTrigger: 5,

		ButtonA:     0,
		ButtonB:     1,
		ButtonX:     2,
		ButtonY:     3,
		LeftBumper:  4,
		RightBumper: 5,
		Back:        6,
		Start:       7,
	}
}
