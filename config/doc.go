// Package config builds drain stacks from declarative configuration.
//
// A Config describes the usual deployment knobs - minimum level,
// output format, destination, file rotation, async queueing - and
// Build assembles the matching drain chain. Configuration is loaded
// from YAML or JSON with koanf; Load reads a file and picks the
// parser from the extension, LoadBytes takes raw bytes with an
// explicit format.
package config
