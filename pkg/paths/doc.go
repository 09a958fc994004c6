// Package paths provides centralized path handling for svgmacro.
//
// It follows the XDG Base Directory specification for the two locations
// the tool uses outside of the files it is asked to render:
//
//   - Config: $XDG_CONFIG_HOME/svgmacro (user configuration, config.toml)
//   - State: $XDG_STATE_HOME/svgmacro (log file)
//
// # Environment Variables
//
//   - SVGMACRO_CONFIG_DIR: Override the config directory
//   - SVGMACRO_STATE_DIR: Override the state directory
//   - XDG_CONFIG_HOME, XDG_STATE_HOME: Standard XDG overrides
//
// Project configuration is looked up in a working directory as
// .svgmacro.toml first and svgmacro.toml second.
package paths
