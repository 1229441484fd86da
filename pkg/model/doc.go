// Package model defines the shared vocabulary of the item randomizer's core:
// interned vertices, the recursive Requirement tree, and the two resource
// snapshots (GlobalState and LocalState) that traversal threads through a
// path. None of these types know how to search a graph — that lives in
// pkg/traversal — they only describe what a position and a resource budget
// look like.
package model
