// Package traversal implements the multi-metric weighted reachability
// search the placement engine drives every step: given a GlobalState and a
// set of links, find the cheapest LocalState reaching each vertex along
// each of model.NumCostMetrics independent cost lanes, and let callers pair
// a forward search from the hub with a reverse search into the hub to
// identify bireachable vertices — locations a path can both reach and
// return from under one consistent resource budget.
package traversal
