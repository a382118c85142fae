package domain

// Intent is the closed set of actions the bot understands.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentEnterAdventure
	IntentDraw
)

func (i Intent) String() string {
	switch i {
	case IntentEnterAdventure:
		return "enter_adventure"
	case IntentDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// CanonicalEvent is the normalized (user, room, command) triple derived from a
// raw webhook payload. MessageID is the inbound message or action id, kept for
// dedup and diagnostics.
type CanonicalEvent struct {
	UserID    string
	RoomID    string
	Command   string
	MessageID string
}
