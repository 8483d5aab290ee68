package core

import (
	"fmt"
	"strings"
)

// Event is something that happened on the board. Every command returns the
// events it produced, in order, and pushes them to registered listeners.
type Event interface {
	boardEvent()
	String() string
}

// PieceMoved is raised when a piece walks from one square to another.
type PieceMoved struct {
	From Position
	To   Position
}

func (PieceMoved) boardEvent() {}

func (e PieceMoved) String() string {
	return fmt.Sprintf("piece moved %s -> %s", e.From, e.To)
}

// PieceRotated is raised when a piece turns 45 degrees.
type PieceRotated struct {
	At       Position
	Rotation Rotation
}

func (PieceRotated) boardEvent() {}

func (e PieceRotated) String() string {
	return fmt.Sprintf("piece rotated %s at %s", e.Rotation, e.At)
}

// ProjectileFired is raised before the projectile's effect is applied, so a
// renderer can play the flight first. Path starts at the firer; Directions[i]
// is the heading of the step into Path[i+1].
type ProjectileFired struct {
	Path       []Position
	Directions []Direction
	Kind       Projectile
}

func (ProjectileFired) boardEvent() {}

func (e ProjectileFired) String() string {
	parts := make([]string, len(e.Path))
	for i, p := range e.Path {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s fired along %s", e.Kind, strings.Join(parts, " "))
}

// FireLit is raised when a torch is lit.
type FireLit struct{ At Position }

func (FireLit) boardEvent()      {}
func (e FireLit) String() string { return fmt.Sprintf("torch lit at %s", e.At) }

// FireUnlit is raised when a torch goes out.
type FireUnlit struct{ At Position }

func (FireUnlit) boardEvent()      {}
func (e FireUnlit) String() string { return fmt.Sprintf("torch put out at %s", e.At) }

// PieceRooted is raised when a piece becomes rooted.
type PieceRooted struct{ At Position }

func (PieceRooted) boardEvent()      {}
func (e PieceRooted) String() string { return fmt.Sprintf("piece rooted at %s", e.At) }

// PieceUnrooted is raised when roots are cleared.
type PieceUnrooted struct{ At Position }

func (PieceUnrooted) boardEvent()      {}
func (e PieceUnrooted) String() string { return fmt.Sprintf("piece unrooted at %s", e.At) }

// PieceStunned is raised every time a stun lands, including re-stuns.
type PieceStunned struct{ At Position }

func (PieceStunned) boardEvent()      {}
func (e PieceStunned) String() string { return fmt.Sprintf("piece stunned at %s", e.At) }

// PieceUnstunned is raised when a stun is healed or wears off.
type PieceUnstunned struct{ At Position }

func (PieceUnstunned) boardEvent()      {}
func (e PieceUnstunned) String() string { return fmt.Sprintf("piece no longer stunned at %s", e.At) }

// PieceShielded is raised when a shield goes up.
type PieceShielded struct{ At Position }

func (PieceShielded) boardEvent()      {}
func (e PieceShielded) String() string { return fmt.Sprintf("piece shielded at %s", e.At) }

// PieceUnshielded is raised when a shield wears off.
type PieceUnshielded struct{ At Position }

func (PieceUnshielded) boardEvent()      {}
func (e PieceUnshielded) String() string { return fmt.Sprintf("shield dropped at %s", e.At) }

// PieceBurned is raised when fire reduces a piece to rubble.
type PieceBurned struct{ At Position }

func (PieceBurned) boardEvent()      {}
func (e PieceBurned) String() string { return fmt.Sprintf("piece burned at %s", e.At) }

// PieceUnburned pairs with PieceBurned. No current rule clears a burn,
// so the board never raises it.
type PieceUnburned struct{ At Position }

func (PieceUnburned) boardEvent()      {}
func (e PieceUnburned) String() string { return fmt.Sprintf("burn cleared at %s", e.At) }

// TurnPassed is raised when the move budget runs out and control changes hands.
type TurnPassed struct {
	Player Player // the player now active
}

func (TurnPassed) boardEvent() {}

func (e TurnPassed) String() string {
	return fmt.Sprintf("%s to move", e.Player.Name())
}

// Listener receives board events synchronously, in registration order.
// A listener must not call back into the board while handling an event.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e Event)

// HandleEvent calls f(e).
func (f ListenerFunc) HandleEvent(e Event) {
	f(e)
}

// Recorder is a Listener that buffers events until drained.
type Recorder struct {
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleEvent appends the event to the buffer.
func (r *Recorder) HandleEvent(e Event) {
	r.events = append(r.events, e)
}

// Len returns the number of buffered events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Drain returns the buffered events and empties the buffer.
func (r *Recorder) Drain() []Event {
	events := r.events
	r.events = nil
	return events
}
