package input

import "github.com/gogpu/ink/geom"

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button; it draws strokes and rectangles.
	ButtonLeft
	// ButtonMiddle is the middle button. The interpreter ignores it.
	ButtonMiddle
	// ButtonRight is the secondary button; it drives text annotation flows.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// PointerEvent is a button press or release at a device-pixel position.
type PointerEvent struct {
	Position geom.Point
	Button   Button
	Pressed  bool
}

// Code is the logical identity of a key, independent of its text payload.
type Code uint8

const (
	// CodeUnknown is a key the interpreter has no use for.
	CodeUnknown Code = iota
	// CodeChar is a character-producing key; Rune and Text carry the payload.
	CodeChar
	// CodeEnter confirms and commits the pending text annotation.
	CodeEnter
	// CodeBackspace deletes the last grapheme of the pending text.
	CodeBackspace
	// CodeDelete is treated like CodeBackspace while editing.
	CodeDelete
	// CodeEscape exits text editing, committing the pending annotation.
	CodeEscape
	// CodeControl is the control modifier, half of the undo chord.
	CodeControl
)

// String returns a string representation of the key code.
func (c Code) String() string {
	switch c {
	case CodeChar:
		return "char"
	case CodeEnter:
		return "enter"
	case CodeBackspace:
		return "backspace"
	case CodeDelete:
		return "delete"
	case CodeEscape:
		return "escape"
	case CodeControl:
		return "control"
	default:
		return "unknown"
	}
}

// KeyEvent is a key press or release.
//
// For CodeChar presses, Rune identifies the logical character (used for
// held-key chord checks) and Text carries the literal payload to insert,
// which may differ from Rune under IME composition or dead keys.
type KeyEvent struct {
	Code    Code
	Rune    rune
	Text    string
	Pressed bool
}

// State identifies the interpreter's current mode.
type State uint8

const (
	// StateIdle means no gesture is in progress.
	StateIdle State = iota
	// StateDrawing means a freehand stroke is being dragged.
	StateDrawing
	// StateShapeDrag means a rectangle is being dragged.
	StateShapeDrag
	// StateTextEdit means a text annotation is receiving keystrokes.
	StateTextEdit
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateShapeDrag:
		return "shape-drag"
	case StateTextEdit:
		return "text-edit"
	default:
		return "invalid"
	}
}
