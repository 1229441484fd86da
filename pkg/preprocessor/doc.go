// Package preprocessor synthesizes the cross-room links the traversal
// engine searches over. For every door pair in a Map, it matches the exit
// condition attached to the source node against the entrance condition
// attached to the destination node and, where a combination is physically
// meaningful, emits a model.Link carrying a model.Requirement built from the
// numeric sub-models in this package: run-frame cost, shinecharge timing,
// blue-speed bounds, and heat-frame accounting.
package preprocessor
