// Package logging provides the structured logging interface used by the
// integer engine. It abstracts the underlying implementation so the engine
// can log through zerolog in production, through the standard library
// logger, or through a generated mock in tests.
package logging
