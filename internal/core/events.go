package core

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventMove EventKind = iota
	EventEat
	EventLevelUp
	EventGameOver
	EventPause
	EventResume
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventEat:
		return "eat"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a single game event. Value carries the event payload:
// points for EventEat, the new level for EventLevelUp, final score for
// EventGameOver, zero otherwise.
type Event struct {
	Kind  EventKind
	Value int
}
