package x402check

// Version is the library release version, reported by the CLI and the
// MCP server.
const Version = "0.3.0"
