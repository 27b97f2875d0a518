package coffee

import (
	"fmt"
	"sync"
)

// LifecycleState is the user-visible state of the current donation.
type LifecycleState uint8

const (
	StateNotSent LifecycleState = iota
	StatePending
	StateSuccess
	StateReverted
)

func (s LifecycleState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateReverted:
		return "reverted"
	default:
		return "not_sent"
	}
}

// Lifecycle enforces the legal state transitions: NotSent -> Pending and
// Pending -> Success or Reverted. Terminal states only reset back to NotSent
// when a new donation starts.
type Lifecycle struct {
	mu    sync.Mutex
	state LifecycleState
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateNotSent}
}

func (l *Lifecycle) State() LifecycleState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Reset returns to NotSent ahead of a new donation attempt.
func (l *Lifecycle) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = StateNotSent
}

// Transition moves to the target state, rejecting illegal edges.
func (l *Lifecycle) Transition(to LifecycleState) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	legal := false
	switch to {
	case StatePending:
		legal = l.state == StateNotSent
	case StateSuccess, StateReverted:
		legal = l.state == StatePending
	case StateNotSent:
		legal = true
	}
	if !legal {
		return fmt.Errorf("illegal donation state transition %s -> %s", l.state, to)
	}
	l.state = to
	return nil
}
