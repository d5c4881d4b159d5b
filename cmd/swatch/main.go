// Package main implements the swatch command: a small web server that renders
// colored blocks and remembers one favorite color, plus client subcommands
// that talk to a running server.
//
// HTTP API:
//
//	GET  /                        - Index page
//	GET  /color/{color}           - Colored block for {color}
//	POST /color/favorite/{color}  - Set the favorite color
//	GET  /color/favorite          - Favorite color block (or "not set" message)
//	GET  /api/favorite            - Favorite color state as JSON
//	GET  /health                  - Health check
//
// Configuration (flag / env / config key, default):
//   - --addr / SWATCH_ADDR / addr (":8080")
//   - --templates / SWATCH_TEMPLATES_DIR / templates.dir (embedded templates)
//   - --log-level / SWATCH_LOG_LEVEL / log.level ("info")
//   - --log-format / SWATCH_LOG_FORMAT / log.format ("text")
//   - --server / SWATCH_SERVER / server ("http://127.0.0.1:8080")
//   - SWATCH_SHUTDOWN_TIMEOUT / shutdown_timeout ("5s")
//   - SWATCH_CLIENT_TIMEOUT / client.timeout ("5s")
//
// Example usage:
//
//	# Start the server
//	swatch serve --addr :8080
//
//	# Set and read the favorite color
//	swatch favorite set red
//	swatch favorite get
//
//	# Or with curl
//	curl -X POST localhost:8080/color/favorite/red
//	curl localhost:8080/color/favorite
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
