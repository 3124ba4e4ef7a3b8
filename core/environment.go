package core

import "strings"

// Environment is the deployment environment a process runs in.
type Environment uint8

const (
	// EnvUnknown is the zero value; formatters emit no environment tag for it.
	EnvUnknown Environment = iota
	// Development is any environment that is neither production nor test.
	Development
	// Production enables suppression of info and debug output.
	Production
	// Test marks test runs.
	Test
)

// String returns the canonical environment name
func (e Environment) String() string {
	switch e {
	case Development:
		return "development"
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "unknown"
	}
}

// ParseEnvironment derives an Environment from a raw environment name.
// A name containing "prod" is Production, one containing "test" is Test,
// everything else (including the empty string) is Development.
func ParseEnvironment(raw string) Environment {
	name := strings.ToLower(raw)
	switch {
	case strings.Contains(name, "prod"):
		return Production
	case strings.Contains(name, "test"):
		return Test
	default:
		return Development
	}
}
