// Package spoiler builds the human- and tool-readable record of a finished
// placement attempt: per-step summaries, full obtain/return routes
// reconstructed by walking traversal back-pointer trails, per-tile
// reachability timestamps, and an externally supplied escape-sequence
// spoiler this module does not compute itself.
package spoiler
