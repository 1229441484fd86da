// Package logging provides structured logging for the randomizer core and
// its CLI/server entry points, wrapping zerolog the same way the reference
// reporting package does: a small Logger type carrying fields, a package
// config struct, and global convenience functions backed by a shared
// default logger.
package logging
