package game

// EventKind identifies something that happened during a tick
type EventKind int

const (
	EventLaserFired EventKind = iota
	EventSmallExplosion
	EventLargeExplosion
	EventGameOver
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventLaserFired:
		return "laser-fired"
	case EventSmallExplosion:
		return "small-explosion"
	case EventLargeExplosion:
		return "large-explosion"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is queued by the simulation for collaborators such as audio
type Event struct {
	Kind   EventKind
	Pos    Vec2
	Source EntityID
}

// maxPendingEvents bounds the queue when nobody drains it
const maxPendingEvents = 1024

func (s *Simulation) emit(e Event) {
	if len(s.events) >= maxPendingEvents {
		return
	}
	s.events = append(s.events, e)
}

// DrainEvents returns and clears the queued events
func (s *Simulation) DrainEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}
