// Package config loads the service configuration.
//
// Values come from, in increasing order of precedence: built-in defaults,
// the process environment, a dotenv file (which overrides the process
// environment, as the service has always done), and explicitly set
// command-line flags.
//
// Recognized keys:
//
//	APP_ENV        environment name; NODE_ENV is read when unset
//	PORT           listen port, 1..65535 (default 3000)
//	HOST           listen host (default localhost)
//	LOG_COLOR      auto, always or never (default auto)
//	CLEAR_CONSOLE  clear the terminal on start (default true)
package config
