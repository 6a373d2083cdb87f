// Package logging provides structured logging for confspect using zap.
//
// Logging is silent by default so the CLI and the MCP stdio transport produce
// no unexpected output. Set CONFSPECT_LOG_LEVEL (debug, info, warn, error) to
// enable console-encoded logs on stderr.
package logging
