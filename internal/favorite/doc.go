// Package favorite holds the process-wide favorite color: a single optional
// string that one visitor can set and any visitor can read.
//
// # Overview
//
// The Cell is the only piece of mutable state in swatch. It is created once
// per server, starts out unset, and lives for as long as the process does.
// Nothing is persisted; a restart clears it.
//
// # State Machine
//
// A Cell is always in one of two states:
//
//	┌────────┐   Set(c)    ┌─────────┐
//	│ Unset  │────────────▶│ Set(c)  │──┐
//	└────────┘             └─────────┘  │ Set(c')
//	                            ▲       │
//	                            └───────┘
//
// Get is accepted in both states and never transitions. Reset returns the
// cell to Unset.
//
// # Concurrency and Thread Safety
//
// Locking Strategy:
//   - Get and Snapshot take a shared lock (RLock)
//   - Set and Reset take an exclusive lock (Lock)
//   - Every lock is released before the caller does any I/O or rendering
//
// Consistency Guarantees:
//   - Individual reads and writes are atomic: no torn values, no lost updates
//   - Last write wins; there is no merge and no history
//   - No ordering between concurrent Set and Get calls from different requests
//
// # Usage Examples
//
//	cell := favorite.NewCell()
//
//	if _, ok := cell.Get(); !ok {
//	    fmt.Println("Favorite color not set yet.")
//	}
//
//	cell.Set("red")
//	color, _ := cell.Get() // "red"
//
// # Validation
//
// There is none. Any string, including the empty string, is a valid color and
// is stored as given.
package favorite
