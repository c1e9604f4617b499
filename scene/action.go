package scene

// ActionKind identifies which annotation collection a logged action refers to.
type ActionKind uint8

const (
	// ActionStroke marks a committed freehand stroke.
	ActionStroke ActionKind = iota + 1
	// ActionShape marks a committed rectangle.
	ActionShape
	// ActionText marks a committed text annotation.
	ActionText
)

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionStroke:
		return "stroke"
	case ActionShape:
		return "shape"
	case ActionText:
		return "text"
	default:
		return "unknown"
	}
}

// Action is one entry in the document's action log: a tagged snapshot of a
// committed annotation, sufficient to reverse its effect. Only the payload
// field matching Kind is populated.
type Action struct {
	Kind   ActionKind
	Stroke Stroke
	Shape  Rectangle
	Text   TextAnnotation
}

func strokeAction(s Stroke) Action {
	return Action{Kind: ActionStroke, Stroke: s}
}

func shapeAction(r Rectangle) Action {
	return Action{Kind: ActionShape, Shape: r}
}

func textAction(t TextAnnotation) Action {
	return Action{Kind: ActionText, Text: t}
}
