// Package registry maintains the table of known applications and their
// candidate configuration locations.
//
// The registry is seeded with a built-in set of well-known developer
// applications (editors, shells, terminal tools). Each application maps a
// case-insensitive key to a display name, an optional bundle identifier, and
// an ordered list of candidate locations. A location is a path template
// (possibly starting with "~/"), an expected filesystem kind (file or
// directory), a parse format, and a human-readable description.
//
// Resolution expands the home-directory placeholder, stats the target, and
// keeps only candidates that exist and match their declared kind. Resolution
// is deliberately uncached: config files change between calls and this is not
// a hot path, so every call re-stats the filesystem.
//
// # Mutation
//
// The table is extended at runtime in two ways: AppendLocation adds a
// candidate to an existing application (a no-op for unknown keys), and
// RegisterApp adds a whole new application at startup from the user overlay
// file. Neither is safe for concurrent use with readers; callers serialize
// access (the MCP stdio loop handles one request at a time).
package registry
