// Package cards implements the playing card model shared by the Go Fish
// engine: cards, their canonical ordering, and hands that keep themselves
// sorted.
//
// # Core Types
//
// Card: An immutable value and suit pair. Cards are comparable with ==.
//
// Hand: An ordered collection of cards. A Hand is always sorted by its
// SortMode; AddCard performs an ordered insertion and only ChangeSortMode
// rebuilds the order.
//
// # Ordering
//
// Values are ranked ace (lowest) to king (highest). Suits follow the
// canonical order spades, hearts, diamonds, clubs. Compare sorts by value
// first and suit second.
package cards
