// Package driving defines the interfaces the CLI, the HTTP upload server,
// the MCP server and the inbox watcher call into.
//
// Implementations live in internal/core/services.
package driving
