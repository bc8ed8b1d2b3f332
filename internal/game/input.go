package game

// ButtonEvent is a debounced press from the input layer. Short press is a
// release under one second of hold; long press fires at one second held.
type ButtonEvent int

const (
	ButtonNone ButtonEvent = iota
	ButtonShortPress
	ButtonLongPress
)

func (e ButtonEvent) String() string {
	switch e {
	case ButtonNone:
		return "none"
	case ButtonShortPress:
		return "short_press"
	case ButtonLongPress:
		return "long_press"
	default:
		return "unknown"
	}
}
