package answercache

// EventKind identifies the change an Event reports.
type EventKind int

const (
	EventPut EventKind = iota + 1
	EventInvalidate
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventPut:
		return "put"
	case EventInvalidate:
		return "invalidate"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event reports one change to a Cache. Key is empty for EventClear.
type Event struct {
	Kind EventKind
	Key  string
}
