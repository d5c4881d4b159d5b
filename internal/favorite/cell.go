package favorite

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// State is a point-in-time copy of a Cell, safe to hand to encoders.
type State struct {
	UpdatedAt *time.Time `json:"updated_at,omitempty"` // When the color was last set, nil while unset
	Color     string     `json:"color,omitempty"`      // Stored color, empty when unset
	Set       bool       `json:"set"`                  // Whether a color has been set
	Updates   uint64     `json:"updates"`              // Number of Set calls since start
	Reads     uint64     `json:"reads"`                // Number of Get calls since start
}

// Cell stores at most one favorite color.
// Uses sync.RWMutex for thread-safe concurrent access.
type Cell struct {
	updatedAt time.Time    // Time of the last Set
	color     *string      // nil while unset
	updates   uint64       // Set counter, accessed atomically
	reads     uint64       // Get counter, accessed atomically
	mu        sync.RWMutex // Protects color and updatedAt
}

// NewCell creates an unset cell.
func NewCell() *Cell {
	return &Cell{}
}

// Set stores color, replacing any previous value.
// The cell keeps its own copy of the string.
func (c *Cell) Set(color string) {
	stored := strings.Clone(color)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.color = &stored
	c.updatedAt = time.Now().UTC()
	atomic.AddUint64(&c.updates, 1)
}

// Get returns the stored color and true, or "" and false if the cell is unset.
func (c *Cell) Get() (string, bool) {
	atomic.AddUint64(&c.reads, 1)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.color == nil {
		return "", false
	}
	return *c.color, true
}

// Reset clears the cell back to unset. Counters are kept.
func (c *Cell) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.color = nil
	c.updatedAt = time.Time{}
}

// Snapshot returns a copy of the current state.
func (c *Cell) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := State{
		Updates: atomic.LoadUint64(&c.updates),
		Reads:   atomic.LoadUint64(&c.reads),
	}
	if c.color != nil {
		updatedAt := c.updatedAt
		st.UpdatedAt = &updatedAt
		st.Color = *c.color
		st.Set = true
	}
	return st
}
