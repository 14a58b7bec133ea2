// Package senor holds metadata shared by the CLI and the MCP server.
package senor

// Version is the current senor release.
const Version = "0.2.0"
