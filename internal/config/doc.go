// Package config loads and validates the optional TOML configuration file.
//
// Every value has a default, so a missing file is not an error. The CLI
// layers flag values over the loaded configuration before a run starts;
// config never reads flags itself.
package config
