package game

// EventKind names something that happened while resolving a move.
type EventKind string

const (
	EventRoll          EventKind = "roll"
	EventOvershoot     EventKind = "overshoot"
	EventHazard        EventKind = "hazard"
	EventHazardIgnored EventKind = "hazard_ignored"
	EventBoost         EventKind = "boost"
	EventPowerUp       EventKind = "power_up"
	EventTeleport      EventKind = "teleport"
	EventExtraRoll     EventKind = "extra_roll"
	EventImmunity      EventKind = "immunity"
)

// Event is a notification produced during move resolution. Square is where
// the event happened; Target is where it sends the agent, if anywhere.
type Event struct {
	Kind   EventKind `json:"kind"`
	Agent  Agent     `json:"agent"`
	Square int       `json:"square"`
	Target int       `json:"target,omitempty"`
	Roll   int       `json:"roll,omitempty"` // Die value used for the move (roll events)
	Raw    int       `json:"raw,omitempty"`  // Die value before any AI adjustment (roll events)
	Detail string    `json:"detail,omitempty"`
}

// Adjusted reports whether the AI strategy changed the value of a roll event.
func (e Event) Adjusted() bool {
	return e.Kind == EventRoll && e.Raw != e.Roll
}

// Notifier receives events in the order they happen.
type Notifier interface {
	Notify(Event)
}

// EventLog collects events in order.
type EventLog []Event

func (l *EventLog) Notify(e Event) {
	*l = append(*l, e)
}

// Kinds lists the kind of every event in order.
func (l EventLog) Kinds() []EventKind {
	kinds := make([]EventKind, len(l))
	for i, e := range l {
		kinds[i] = e.Kind
	}
	return kinds
}

// Count returns how many events of the given kind were logged.
func (l EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
