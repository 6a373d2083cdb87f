// Package userconfig loads the optional user overlay file that extends the
// built-in application table.
//
// The overlay lives in the platform config directory
// ($XDG_CONFIG_HOME/confspect/config.yaml on Unix-like systems,
// %LOCALAPPDATA%\confspect\config.yaml on Windows) and can define whole new
// applications or append extra candidate locations to existing ones. It is
// read once at startup; a missing file means no overlay.
package userconfig
