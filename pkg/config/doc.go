// Package config assembles and validates the service configuration from
// environment variables. Configuration is explicit: FromEnv returns an owned
// Config instance that callers pass down at startup, there is no ambient
// global state.
package config
