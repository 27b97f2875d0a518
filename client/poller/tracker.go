package poller

import "sync"

// Tracker remembers which transaction the UI currently cares about. Late
// receipts for an older transaction must not clobber the state of a newer
// one, so every confirmation result is checked against the tracked id
// before it is applied.
type Tracker struct {
	mu      sync.Mutex
	current string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Track makes txID the transaction of record, superseding any previous one.
func (t *Tracker) Track(txID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = txID
}

// IsCurrent reports whether txID is still the transaction of record.
func (t *Tracker) IsCurrent(txID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return txID != "" && t.current == txID
}

// Clear forgets txID, but only if it was not superseded in the meantime.
func (t *Tracker) Clear(txID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == txID {
		t.current = ""
	}
}
