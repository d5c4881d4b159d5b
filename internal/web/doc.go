// Package web serves the swatch HTML pages and owns the favorite color cell.
//
// # Routes
//
//	GET  /                        index page
//	GET  /color/{color}           color block for {color}
//	POST /color/favorite/{color}  set the favorite color
//	GET  /color/favorite          favorite color block, or a "not set" message
//	GET  /api/favorite            favorite color state as JSON
//	GET  /health                  liveness probe
//
// /color/favorite is registered before /color/{color}, so the literal path
// always wins. Routes match on the escaped path, so {color} may carry an
// encoded slash ("rgb(0 0 0 %2F 50%)"); handlers unescape it. Unknown paths
// get 404 and a known path with the wrong method gets 405.
//
// # Request Flow
//
//	request ─▶ RequestID ─▶ Logging ─▶ Recovery ─▶ router ─▶ handler
//	                                                          │
//	                                    favorite.Cell ◀───────┤ (lock held for one read or write)
//	                                                          │
//	                                    Renderer     ◀────────┘ (no lock held)
//
// Handlers render into a buffer before writing, so a template failure turns
// into a 500 instead of a half-written 200.
//
// # State
//
// A Server holds exactly one favorite.Cell. Tests build a fresh Server per
// case and therefore start from an unset favorite color.
//
// A handler that panics is answered with 500 by the recovery middleware.
// The cell releases its lock with defer and each write is a single pointer
// swap, so a panicking request never leaves the cell locked or half written.
package web
