// Package confirm implements the two-step guard in front of destructive
// actions: opening the gate never touches anything, only an explicit
// Confirm runs the pending action, and it runs at most once.
package confirm

import "errors"

var ErrNotOpen = errors.New("no pending action to confirm")

type state int

const (
	closed state = iota
	open
)

type Gate struct {
	state   state
	pending any
	action  func() error
}

func New() *Gate {
	return &Gate{}
}

// Open arms the gate with the record under deletion and the action to run
// on confirmation. No remote call happens here.
func (g *Gate) Open(record any, action func() error) {
	g.state = open
	g.pending = record
	g.action = action
}

// Pending reports the record the gate was opened on, nil when closed.
func (g *Gate) Pending() any {
	if g.state != open {
		return nil
	}
	return g.pending
}

// Cancel closes the gate without running anything.
func (g *Gate) Cancel() {
	g.reset()
}

// Confirm runs the pending action exactly once and closes the gate.
func (g *Gate) Confirm() error {
	if g.state != open {
		return ErrNotOpen
	}
	action := g.action
	g.reset()
	return action()
}

func (g *Gate) reset() {
	g.state = closed
	g.pending = nil
	g.action = nil
}
