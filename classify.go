package cursor

import "strings"

// Element is the part of a page element the classifier inspects.
type Element interface {
	// HasClass reports whether the element carries the given CSS class.
	HasClass(name string) bool
	// Tag returns the element's tag name. Case is ignored.
	Tag() string
}

// interactiveTags are picked up as StateHoverSmall without a marker class.
var interactiveTags = [...]string{"a", "button", "input", "textarea", "select"}

func isInteractive(el Element) bool {
	tag := el.Tag()
	for _, t := range interactiveTags {
		if strings.EqualFold(tag, t) {
			return true
		}
	}
	return false
}

// Classify derives the next state from a pointer event. prev is consulted only
// for EventDown, which becomes StateHoverTap when pressing inside StateHover.
// Event kinds that carry no state change (move, resize) return prev.
func Classify(kind EventKind, target Element, prev State) State {
	switch kind {
	case EventHover:
		return classifyHover(target)
	case EventDown:
		if prev == StateHover {
			return StateHoverTap
		}
		return StateTap
	case EventUp, EventUnhover:
		return StateDefault
	default:
		return prev
	}
}

// classifyHover applies the marker-class rules in priority order:
// disabled, hover, hover-link, then interactive elements and hover-small.
func classifyHover(el Element) State {
	if el == nil {
		return StateDefault
	}
	switch {
	case el.HasClass(ClassDisabled):
		return StateDisabled
	case el.HasClass(ClassHover):
		return StateHover
	case el.HasClass(ClassHoverLink):
		return StateHoverLink
	case isInteractive(el) || el.HasClass(ClassHoverSmall):
		return StateHoverSmall
	default:
		return StateDefault
	}
}
