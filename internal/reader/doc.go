// Package reader loads and interprets resolved configuration locations.
//
// Read returns a ConfigContent for any location: directories are listed
// (hidden entries excluded, names sorted), files are read in full and then
// parsed according to the location's declared format (JSON, property list,
// YAML, TOML; plain text is left as-is). Failures never surface as Go errors:
// an I/O failure yields empty content with an inline error string, and a
// parse failure keeps the raw content readable alongside the error. Search
// and FormatForDisplay build on Read with the same total-function contract.
package reader
