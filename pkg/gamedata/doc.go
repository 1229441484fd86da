// Package gamedata holds the static, pre-parsed tables describing a game's
// rooms, nodes, items, techs, strats and flags. A GameData value is
// assembled once, either via Load from a JSON document or built up
// directly from Go struct literals in tests, and handed to the
// preprocessor and placement packages as plain read-only data.
package gamedata
